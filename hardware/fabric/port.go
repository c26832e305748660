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

package fabric

import (
	"fmt"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/logger"
)

// Offsets of the fabric bus window for the two register variant.
const (
	OffsetBase    = 0x0
	OffsetData    = 0x4
	OffsetControl = 0x8
	OffsetFlags   = 0xc
)

// WindowSize is the size in bytes of the decode window.
const WindowSize = 0x10

// Pins are the inputs from the fabric bus master.
type Pins struct {
	Cyc   bool
	Stb   bool
	We    bool
	Addr  uint32
	DatWr uint32
}

// State of the port.
type State int

// List of valid states.
const (
	StateIdle State = iota
	StateAck
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAck:
		return "ack"
	}
	return "unknown"
}

// Config is the elaboration time configuration of the port.
type Config struct {
	Base      uint32
	Registers int
}

// Port is the fabric bus port of the bridge.
type Port struct {
	env *environment.Environment
	cfg Config

	// inputs sampled on every call to Step()
	Pins Pins

	// outputs
	Ack   bool
	DatRd uint32

	State State
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort(env *environment.Environment, cfg Config) *Port {
	return &Port{
		env: env,
		cfg: cfg,
	}
}

// Snapshot creates a copy of the Port in its current state.
func (p *Port) Snapshot() *Port {
	n := *p
	return &n
}

// Plumb a new environment into the port.
func (p *Port) Plumb(env *environment.Environment) {
	p.env = env
}

func (p *Port) String() string {
	return fmt.Sprintf("fabric: %s ack=%v data=%#08x", p.State, p.Ack, p.DatRd)
}

// Reset the port to the idle state.
func (p *Port) Reset() {
	p.State = StateIdle
	p.Ack = false
	p.DatRd = 0
}

// Offset returns the offset of a register in the fabric window.
func (p *Port) Offset(r registers.Register) uint32 {
	return OffsetData + uint32(r)*4
}

// FlagsOffset returns the offset of the flag word in the fabric window.
func (p *Port) FlagsOffset() uint32 {
	return OffsetData + uint32(p.cfg.Registers)*4
}

// Decode an address into a target. Addresses that are not 32-bit aligned are
// outside of the window.
func (p *Port) Decode(addr uint32) bus.Target {
	if addr < p.cfg.Base || addr-p.cfg.Base >= WindowSize || addr&0x03 != 0 {
		return bus.Target{Kind: bus.None}
	}

	off := addr - p.cfg.Base
	switch {
	case off == OffsetBase:
		return bus.Target{Kind: bus.BaseAddress}
	case off == p.FlagsOffset():
		return bus.Target{Kind: bus.Flags}
	case off < p.FlagsOffset():
		return bus.Target{Kind: bus.Register, Register: registers.Register((off - OffsetData) / 4)}
	}

	return bus.Target{Kind: bus.None}
}

// Step samples the pins and advances the state machine by one clock. Returns a
// transaction if a request has been seen on this clock. Every transaction must
// be completed by calling Respond() before the next Step(), including writes
// and accesses outside of the window.
func (p *Port) Step() *bus.Transaction {
	switch p.State {
	case StateAck:
		p.Ack = false
		p.State = StateIdle
		return nil

	case StateIdle:
		p.Ack = false
		if !(p.Pins.Cyc && p.Pins.Stb) {
			return nil
		}

		tx := &bus.Transaction{
			Side:    registers.Fabric,
			Address: p.Pins.Addr,
			Target:  p.Decode(p.Pins.Addr),
		}
		if p.Pins.We {
			tx.Direction = bus.Write
			tx.Data = uint8(p.Pins.DatWr)
		} else {
			tx.Direction = bus.Read
		}

		if tx.Target.Kind == bus.None {
			logger.Logf(p.env, "fabric", "access outside of window (%#08x)", p.Pins.Addr)
		}

		p.State = StateAck
		return tx
	}

	return nil
}

// Respond completes a transaction. ACK is asserted and, for reads, the value
// is placed on the read data lines.
func (p *Port) Respond(v uint32) {
	if p.State != StateAck {
		return
	}
	p.Ack = true
	p.DatRd = v
}
