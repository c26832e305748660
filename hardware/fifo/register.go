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

package fifo

import (
	"fmt"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/signal"
)

// Pins are the inputs to the DataRegister. They are sampled by Step().
type Pins struct {
	// synchronous reset. takes priority over the strobes
	Reset bool

	// both strobes are active high
	WriteStrobe bool
	ReadStrobe  bool

	DataIn uint8
}

// DataRegister presents a Queue to a bus with a pair of edge qualified
// strobes.
type DataRegister struct {
	Pins Pins

	queue *Queue

	writeStrobe signal.Line
	readStrobe  signal.Line
}

// NewDataRegister is the preferred method of initialisation for the
// DataRegister type.
func NewDataRegister(env *environment.Environment, depth int) *DataRegister {
	return &DataRegister{
		queue:       NewQueue(env, depth),
		writeStrobe: signal.NewLine("write strobe"),
		readStrobe:  signal.NewLine("read strobe"),
	}
}

// Snapshot creates a copy of the DataRegister in its current state.
func (reg *DataRegister) Snapshot() *DataRegister {
	n := *reg
	n.queue = reg.queue.Snapshot()
	n.writeStrobe = *reg.writeStrobe.Snapshot()
	n.readStrobe = *reg.readStrobe.Snapshot()
	return &n
}

// Plumb a new environment into the register.
func (reg *DataRegister) Plumb(env *environment.Environment) {
	reg.queue.Plumb(env)
}

func (reg *DataRegister) String() string {
	return fmt.Sprintf("%s ne=%v", reg.queue, reg.NotEmpty())
}

// Reset the register and empty the queue.
func (reg *DataRegister) Reset() {
	reg.queue.Reset()
	reg.writeStrobe.Reset()
	reg.readStrobe.Reset()
}

// Queue returns the underlying queue. Should only be used for inspection.
func (reg *DataRegister) Queue() *Queue {
	return reg.queue
}

// DataOut is the value at the head of the queue. It is valid before the read
// strobe and changes to the next value only after the strobe has been seen.
func (reg *DataRegister) DataOut() uint8 {
	return reg.queue.Head()
}

// NotEmpty is true if the queue contains at least one value.
func (reg *DataRegister) NotEmpty() bool {
	return reg.queue.NotEmpty()
}

// Step advances the register by one clock.
func (reg *DataRegister) Step() {
	if reg.Pins.Reset {
		reg.Reset()
		return
	}

	reg.writeStrobe.Tick(reg.Pins.WriteStrobe)
	reg.readStrobe.Tick(reg.Pins.ReadStrobe)

	reg.queue.Step(reg.writeStrobe.Rising(), reg.Pins.DataIn, reg.readStrobe.Rising())
}
