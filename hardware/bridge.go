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
	"fmt"
	"strings"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/fifo"
	"github.com/jetsetilly/zube/hardware/hostbus"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/hardware/registers"
)

// Bridge is the main container for the sub-systems of the bridge.
type Bridge struct {
	Env *environment.Environment

	// configuration is read from the preferences once when the bridge is
	// created and does not change afterwards
	Config preferences.Config

	Registers *registers.File
	Host      *hostbus.Port
	Fabric    *fabric.Port
	FIFO      *fifo.DataRegister

	// synchronous reset. active high
	ResetPin bool

	// the transactions seen on the most recent clock. nil if there was no
	// transaction on that side
	LastHost   *bus.Transaction
	LastFabric *bus.Transaction

	// writes discarded by the tie-break on the most recent clock
	Dropped []registers.Write

	cycles uint64
}

// NewBridge creates a new Bridge and everything associated with the hardware.
// The environment's random number generator is plumbed to the bridge clock.
func NewBridge(env *environment.Environment) *Bridge {
	cfg := env.Prefs.Config()

	b := &Bridge{
		Env:       env,
		Config:    cfg,
		Registers: registers.NewFile(env, cfg.Registers),
		Host: hostbus.NewPort(env, hostbus.Config{
			Base:      cfg.HostBase,
			Registers: cfg.Registers,
			IORQ:      cfg.IORQ,
		}),
		Fabric: fabric.NewPort(env, fabric.Config{
			Base:      cfg.FabricBase,
			Registers: cfg.Registers,
		}),
		FIFO: fifo.NewDataRegister(env, cfg.FifoDepth),
	}
	b.Host.Pins = hostbus.Idle()

	env.Random.Plumb(b)

	return b
}

// Cycles returns the number of fast clocks since the bridge was created.
// Reset does not change the count. Implements the random.Clock interface.
func (b *Bridge) Cycles() uint64 {
	return b.cycles
}

func (b *Bridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycle %d\n", b.cycles))
	s.WriteString(fmt.Sprintf("registers: %s\n", b.Registers))
	s.WriteString(fmt.Sprintf("%s\n", b.Host))
	s.WriteString(fmt.Sprintf("%s\n", b.Fabric))
	s.WriteString(fmt.Sprintf("fifo: %s", b.FIFO))
	return s.String()
}

// Reset all sub-systems to their power-on state. The pins are not changed.
func (b *Bridge) Reset() {
	b.Registers.Reset()
	b.Host.Reset()
	b.Fabric.Reset()
	b.FIFO.Reset()
	b.LastHost = nil
	b.LastFabric = nil
	b.Dropped = b.Dropped[:0]
}
