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


package hardware

import (
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/fifo"
	"github.com/jetsetilly/zube/hardware/hostbus"
	"github.com/jetsetilly/zube/hardware/registers"
)

// State stores the bridge sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	Registers *registers.File
	Host      *hostbus.Port
	Fabric    *fabric.Port
	FIFO      *fifo.DataRegister
	Cycles    uint64
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		Registers: s.Registers.Snapshot(),
		Host:      s.Host.Snapshot(),
		Fabric:    s.Fabric.Snapshot(),
		FIFO:      s.FIFO.Snapshot(),
		Cycles:    s.Cycles,
	}
}

// Snapshot the state of the bridge sub-systems.
func (b *Bridge) Snapshot() *State {
	return &State{
		Registers: b.Registers.Snapshot(),
		Host:      b.Host.Snapshot(),
		Fabric:    b.Fabric.Snapshot(),
		FIFO:      b.FIFO.Snapshot(),
		Cycles:    b.cycles,
	}
}

// Plumb a previously snapshotted state into the bridge. The state is copied
// so that the bridge does not change what is stored in the state.
func (b *Bridge) Plumb(state *State) {
	if state == nil {
		panic("bridge: cannot plumb in a nil state")
	}

	b.Registers = state.Registers.Snapshot()
	b.Host = state.Host.Snapshot()
	b.Fabric = state.Fabric.Snapshot()
	b.FIFO = state.FIFO.Snapshot()
	b.cycles = state.Cycles

	b.Registers.Plumb(b.Env)
	b.Host.Plumb(b.Env)
	b.Fabric.Plumb(b.Env)
	b.FIFO.Plumb(b.Env)

	b.LastHost = nil
	b.LastFabric = nil
	b.Dropped = b.Dropped[:0]
}
