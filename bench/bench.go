// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.


package bench

import (
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/clocks"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/hostbus"
	"github.com/jetsetilly/zube/logger"
)

// Sentinal error patterns.
const (
	AckTimeout        = "bench: fabric: no acknowledge after %d clocks (%#08x)"
	BusDirNotAsserted = "bench: host: bus direction not asserted for read (%#04x)"
	BusDirHeld        = "bench: host: bus direction still asserted after read (%#04x)"
	FifoUnderflow     = "bench: fifo: pop while empty"
	ProbeError        = "bench: probe: %v"
)

// DefaultAckTimeout is the number of fast clocks a fabric cycle waits for the
// acknowledge.
const DefaultAckTimeout = 10

// Probe is sampled after every fast clock.
type Probe interface {
	Sample(b *hardware.Bridge) error
}

// Bench drives a bridge.
type Bench struct {
	Bridge *hardware.Bridge

	// number of fast clocks a fabric cycle waits for the acknowledge
	AckTimeout int

	probes []Probe
}

// NewBench is the preferred method of initialisation for the Bench type. A new
// bridge is created with the environment.
func NewBench(env *environment.Environment) *Bench {
	bn := &Bench{
		Bridge:     hardware.NewBridge(env),
		AckTimeout: DefaultAckTimeout,
	}
	bn.idle()
	return bn
}

// AddProbe attaches a probe to the bench.
func (bn *Bench) AddProbe(p Probe) {
	bn.probes = append(bn.probes, p)
}

func (bn *Bench) idle() {
	bn.Bridge.Host.Pins = hostbus.Idle()
	bn.Bridge.Fabric.Pins = fabric.Pins{}
	bn.Bridge.FIFO.Pins.WriteStrobe = false
	bn.Bridge.FIFO.Pins.ReadStrobe = false
}

// Clock steps the bridge n fast clocks. Probes are sampled after every clock.
func (bn *Bench) Clock(n int) error {
	for i := 0; i < n; i++ {
		bn.Bridge.Step()
		for _, p := range bn.probes {
			if err := p.Sample(bn.Bridge); err != nil {
				return curated.Errorf(ProbeError, err)
			}
		}
	}
	return nil
}

// Reset returns all pins to their idle state and holds the reset pin for two
// slow clocks, followed by two slow clocks with reset released.
func (bn *Bench) Reset() error {
	bn.idle()
	bn.Bridge.ResetPin = true
	if err := bn.Clock(clocks.FastPerSlow * 2); err != nil {
		return err
	}
	bn.Bridge.ResetPin = false
	return bn.Clock(clocks.FastPerSlow * 2)
}

// HostWrite performs a host bus write cycle.
func (bn *Bench) HostWrite(addr uint16, v uint8) error {
	pins := &bn.Bridge.Host.Pins
	pins.Address = addr
	pins.DataIn = v
	pins.IORQB = false
	pins.WriteStrobeB = false
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return err
	}
	pins.WriteStrobeB = true
	pins.IORQB = true
	pins.DataIn = 0
	return bn.Clock(clocks.FastPerSlow)
}

// HostRead performs a host bus read cycle. The data bus is sampled at the end
// of the strobe. The bus direction must be asserted at that point and must be
// deasserted one slow clock after the strobe is released.
//
// A read from an address outside of the window returns an error because the
// bridge never drives the bus for it.
func (bn *Bench) HostRead(addr uint16) (uint8, error) {
	pins := &bn.Bridge.Host.Pins
	pins.Address = addr
	pins.IORQB = false
	pins.ReadStrobeB = false
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return 0, err
	}

	if !bn.Bridge.Host.BusDir() {
		pins.ReadStrobeB = true
		pins.IORQB = true
		_ = bn.Clock(clocks.FastPerSlow)
		return 0, curated.Errorf(BusDirNotAsserted, addr)
	}
	v := bn.Bridge.Host.Data.Value

	pins.ReadStrobeB = true
	pins.IORQB = true
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return 0, err
	}

	if bn.Bridge.Host.BusDir() {
		return 0, curated.Errorf(BusDirHeld, addr)
	}

	return v, nil
}

// fabricCycle holds the request until it is acknowledged and then releases it
// for one clock.
func (bn *Bench) fabricCycle(we bool, addr uint32, v uint32) (uint32, error) {
	bn.Bridge.Fabric.Pins = fabric.Pins{
		Cyc:   true,
		Stb:   true,
		We:    we,
		Addr:  addr,
		DatWr: v,
	}

	for i := 0; i < bn.AckTimeout; i++ {
		if err := bn.Clock(1); err != nil {
			return 0, err
		}
		if bn.Bridge.Fabric.Ack {
			d := bn.Bridge.Fabric.DatRd
			bn.Bridge.Fabric.Pins = fabric.Pins{}
			return d, bn.Clock(1)
		}
	}

	bn.Bridge.Fabric.Pins = fabric.Pins{}
	logger.Logf(bn.Bridge.Env, "bench", "fabric cycle timed out (%#08x)", addr)
	return 0, curated.Errorf(AckTimeout, bn.AckTimeout, addr)
}

// FabricWrite performs a fabric bus write cycle.
func (bn *Bench) FabricWrite(addr uint32, v uint32) error {
	_, err := bn.fabricCycle(true, addr, v)
	return err
}

// FabricRead performs a fabric bus read cycle.
func (bn *Bench) FabricRead(addr uint32) (uint32, error) {
	return bn.fabricCycle(false, addr, 0)
}

// FifoPush strobes a value into the FIFO data register.
func (bn *Bench) FifoPush(v uint8) error {
	pins := &bn.Bridge.FIFO.Pins
	pins.DataIn = v
	pins.WriteStrobe = true
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return err
	}
	pins.WriteStrobe = false
	pins.DataIn = 0
	return bn.Clock(clocks.FastPerSlow)
}

// FifoPop strobes a value out of the FIFO data register. The value is sampled
// before the strobe is asserted. Popping an empty FIFO is an error but the
// strobe is still driven.
func (bn *Bench) FifoPop() (uint8, error) {
	empty := !bn.Bridge.FIFO.NotEmpty()
	v := bn.Bridge.FIFO.DataOut()

	pins := &bn.Bridge.FIFO.Pins
	pins.ReadStrobe = true
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return 0, err
	}
	pins.ReadStrobe = false
	if err := bn.Clock(clocks.FastPerSlow); err != nil {
		return 0, err
	}

	if empty {
		return v, curated.Errorf(FifoUnderflow)
	}
	return v, nil
}

// SimultaneousWrite starts a host write cycle and a fabric write cycle on the
// same clock.
func (bn *Bench) SimultaneousWrite(hostAddr uint16, hv uint8, fabricAddr uint32, fv uint32) error {
	pins := &bn.Bridge.Host.Pins
	pins.Address = hostAddr
	pins.DataIn = hv
	pins.IORQB = false
	pins.WriteStrobeB = false

	bn.Bridge.Fabric.Pins = fabric.Pins{
		Cyc:   true,
		Stb:   true,
		We:    true,
		Addr:  fabricAddr,
		DatWr: fv,
	}

	if err := bn.Clock(1); err != nil {
		return err
	}
	if !bn.Bridge.Fabric.Ack {
		bn.Bridge.Fabric.Pins = fabric.Pins{}
		return curated.Errorf(AckTimeout, 1, fabricAddr)
	}
	bn.Bridge.Fabric.Pins = fabric.Pins{}

	if err := bn.Clock(clocks.FastPerSlow - 1); err != nil {
		return err
	}
	pins.WriteStrobeB = true
	pins.IORQB = true
	pins.DataIn = 0
	return bn.Clock(clocks.FastPerSlow)
}
