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
	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/logger"
)

// Step the bridge forward one fast clock.
//
// The order of operation on every clock is:
//
//  1. sample the pins of both ports and the FIFO
//  2. resolve reads (including flag word reads, which clear the flag word)
//  3. commit writes from both sides together, host wins a tie
//  4. complete the transactions on both ports
//
// Reads being resolved before writes means that a flag word read on the same
// clock as a write from the opposite side returns the flag word as it was
// before the clock, and the new notification survives for the next read.
func (b *Bridge) Step() {
	b.cycles++

	if b.ResetPin {
		b.Reset()
		return
	}

	b.Dropped = b.Dropped[:0]
	b.LastHost = b.Host.Step()
	b.LastFabric = b.Fabric.Step()
	b.FIFO.Step()

	var hostData uint8
	var fabricData uint32

	if b.LastHost != nil && b.LastHost.Direction == bus.Read {
		hostData = uint8(b.read(b.LastHost))
	}
	if b.LastFabric != nil && b.LastFabric.Direction == bus.Read {
		fabricData = b.read(b.LastFabric)
	}

	var writes []registers.Write
	for _, tx := range []*bus.Transaction{b.LastHost, b.LastFabric} {
		if tx == nil || tx.Direction != bus.Write {
			continue
		}
		if tx.Target.Kind != bus.Register {
			logger.Logf(b.Env, "bridge", "ignoring %s", tx)
			continue
		}
		writes = append(writes, registers.Write{
			Register: tx.Target.Register,
			Value:    tx.Data,
			Side:     tx.Side,
		})
	}
	b.Dropped = append(b.Dropped, b.Registers.Commit(writes...)...)

	if b.LastHost != nil {
		b.Host.Respond(hostData)
	}
	if b.LastFabric != nil {
		b.Fabric.Respond(fabricData)
	}
}

// read resolves a read transaction.
func (b *Bridge) read(tx *bus.Transaction) uint32 {
	switch tx.Target.Kind {
	case bus.Register:
		return uint32(b.Registers.Read(tx.Target.Register, tx.Side))
	case bus.Flags:
		return uint32(b.Registers.ReadFlags(tx.Side))
	case bus.BaseAddress:
		return uint32(b.Config.HostBase)
	}
	return 0
}
