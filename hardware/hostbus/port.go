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

package hostbus

import (
	"fmt"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/hardware/signal"
	"github.com/jetsetilly/zube/logger"
)

// Pins are the inputs from the host bus. Signals ending in B are active low.
type Pins struct {
	Address      uint16
	WriteStrobeB bool
	ReadStrobeB  bool
	IORQB        bool
	DataIn       uint8
}

// Idle returns the pin state of a host bus with no cycle in progress.
func Idle() Pins {
	return Pins{
		WriteStrobeB: true,
		ReadStrobeB:  true,
		IORQB:        true,
	}
}

// State of the port.
type State int

// List of valid states.
const (
	StateIdle State = iota

	// the write has been committed on the clock that entered this state
	StateWriteCommit

	// the write strobe is still asserted after the commit
	StateWriteWait

	// the port is driving the data bus
	StateDrive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWriteCommit:
		return "write commit"
	case StateWriteWait:
		return "write wait"
	case StateDrive:
		return "drive"
	}
	return "unknown"
}

// Config is the elaboration time configuration of the port.
type Config struct {
	Base      uint16
	Registers int
	IORQ      bool
}

// Port is the host bus port of the bridge.
type Port struct {
	env *environment.Environment
	cfg Config

	// inputs sampled on every call to Step()
	Pins Pins

	// the bridge side of the shared data bus. Data.Enable is the bus
	// direction output
	Data bus.Tristate

	State State

	// the qualified strobes. a strobe is qualified by the address window and,
	// if configured, by IORQ
	write signal.Line
	read  signal.Line
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort(env *environment.Environment, cfg Config) *Port {
	return &Port{
		env:   env,
		cfg:   cfg,
		Pins:  Idle(),
		write: signal.NewLine("host write"),
		read:  signal.NewLine("host read"),
	}
}

// Snapshot creates a copy of the Port in its current state.
func (p *Port) Snapshot() *Port {
	n := *p
	n.write = *p.write.Snapshot()
	n.read = *p.read.Snapshot()
	return &n
}

// Plumb a new environment into the port.
func (p *Port) Plumb(env *environment.Environment) {
	p.env = env
}

func (p *Port) String() string {
	return fmt.Sprintf("host: %s dir=%v data=%#02x", p.State, p.BusDir(), p.Data.Value)
}

// Reset the port to the idle state. The data bus is released.
func (p *Port) Reset() {
	p.State = StateIdle
	p.Data = bus.Tristate{}
	p.write.Reset()
	p.read.Reset()
}

// BusDir is true while the bridge is driving the data bus.
func (p *Port) BusDir() bool {
	return p.Data.Enable
}

// Window returns the first and last address decoded by the port.
func (p *Port) Window() (uint16, uint16) {
	return p.cfg.Base, p.cfg.Base + uint16(p.cfg.Registers)
}

// Decode an address into a target.
func (p *Port) Decode(address uint16) bus.Target {
	if address < p.cfg.Base {
		return bus.Target{Kind: bus.None}
	}
	idx := int(address - p.cfg.Base)
	switch {
	case idx < p.cfg.Registers:
		return bus.Target{Kind: bus.Register, Register: registers.Register(idx)}
	case idx == p.cfg.Registers:
		return bus.Target{Kind: bus.Flags}
	}
	return bus.Target{Kind: bus.None}
}

// Trace returns the sampled write and read strobes. Useful for displaying
// activity.
func (p *Port) Trace() (write *signal.Line, read *signal.Line) {
	return &p.write, &p.read
}

// Step samples the pins and advances the state machine by one clock. Returns a
// transaction if a new access has been qualified on this clock. A read
// transaction must be completed by calling Respond() before the next Step().
func (p *Port) Step() *bus.Transaction {
	target := p.Decode(p.Pins.Address)
	qualified := target.Kind != bus.None && (!p.cfg.IORQ || !p.Pins.IORQB)

	p.write.Tick(qualified && !p.Pins.WriteStrobeB)
	p.read.Tick(qualified && !p.Pins.ReadStrobeB)

	switch p.State {
	case StateWriteCommit:
		if p.write.Hi() {
			p.State = StateWriteWait
		} else {
			p.State = StateIdle
		}

	case StateWriteWait:
		if p.write.Lo() {
			p.State = StateIdle
		}

	case StateDrive:
		// the direction output changes on the clock after the strobe has been
		// seen to be released. the strobe is therefore always released before
		// the bridge stops driving the bus
		if p.read.Lo() {
			p.Data.Release()
			p.State = StateIdle
		}
	}

	// a port that has just returned to the idle state can accept a new access
	// on the same clock
	if p.State != StateIdle {
		return nil
	}

	if p.write.Rising() {
		if p.read.Hi() {
			logger.Logf(p.env, "hostbus", "read and write strobes asserted together (%#04x)", p.Pins.Address)
		}
		p.State = StateWriteCommit
		return &bus.Transaction{
			Side:      registers.Host,
			Direction: bus.Write,
			Address:   uint32(p.Pins.Address),
			Target:    target,
			Data:      p.Pins.DataIn,
		}
	}

	if p.read.Rising() {
		p.State = StateDrive
		return &bus.Transaction{
			Side:      registers.Host,
			Direction: bus.Read,
			Address:   uint32(p.Pins.Address),
			Target:    target,
		}
	}

	if (!p.Pins.WriteStrobeB || !p.Pins.ReadStrobeB) && !qualified {
		logger.Logf(p.env, "hostbus", "ignoring access outside of window (%#04x)", p.Pins.Address)
	}

	return nil
}

// Respond completes a read transaction by driving the data bus. The value is
// held until the read strobe is released.
func (p *Port) Respond(v uint8) {
	if p.State != StateDrive {
		return
	}
	p.Data.Drive(v)
}
