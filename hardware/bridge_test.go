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


package hardware_test

import (
	"testing"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/govern"
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/clocks"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/hostbus"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/test"
)

func newBridge(t *testing.T) *hardware.Bridge {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	return hardware.NewBridge(env)
}

func hostWrite(b *hardware.Bridge, addr uint16, v uint8) {
	b.Host.Pins = hostbus.Idle()
	b.Host.Pins.Address = addr
	b.Host.Pins.DataIn = v
	b.Host.Pins.WriteStrobeB = false
	for i := 0; i < clocks.FastPerSlow; i++ {
		b.Step()
	}
	b.Host.Pins.WriteStrobeB = true
	for i := 0; i < clocks.FastPerSlow; i++ {
		b.Step()
	}
}

func hostRead(b *hardware.Bridge, addr uint16) uint8 {
	b.Host.Pins = hostbus.Idle()
	b.Host.Pins.Address = addr
	b.Host.Pins.ReadStrobeB = false
	var v uint8
	for i := 0; i < clocks.FastPerSlow; i++ {
		b.Step()
		if b.Host.BusDir() {
			v = b.Host.Data.Value
		}
	}
	b.Host.Pins.ReadStrobeB = true
	for i := 0; i < clocks.FastPerSlow; i++ {
		b.Step()
	}
	return v
}

func fabricCycle(b *hardware.Bridge, we bool, offset uint32, v uint32) uint32 {
	b.Fabric.Pins = fabric.Pins{Cyc: true, Stb: true, We: we, Addr: b.Config.FabricBase + offset, DatWr: v}
	for !b.Fabric.Ack {
		b.Step()
	}
	d := b.Fabric.DatRd
	b.Fabric.Pins = fabric.Pins{}
	b.Step()
	return d
}

func fabricRead(b *hardware.Bridge, offset uint32) uint32 {
	return fabricCycle(b, false, offset, 0)
}

func fabricWrite(b *hardware.Bridge, offset uint32, v uint32) {
	fabricCycle(b, true, offset, v)
}

func TestPowerOn(t *testing.T) {
	b := newBridge(t)
	test.ExpectEquality(t, b.Config.HostBase, uint16(0x40))
	test.ExpectEquality(t, b.Config.FabricBase, uint32(0x30000000))
	test.ExpectEquality(t, b.Registers.Count(), 2)
	test.ExpectEquality(t, b.FIFO.Queue().Depth(), 4)
	test.ExpectEquality(t, b.Host.BusDir(), false)
	test.ExpectEquality(t, b.Fabric.Ack, false)
}

func TestScenario(t *testing.T) {
	b := newBridge(t)

	hostWrite(b, 0x40, 0x10)
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x01))
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetData), uint32(0x10))
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetControl), uint32(0x00))

	// the flag word was cleared by the first read
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x00))

	hostWrite(b, 0x40, 0x10)
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x01))
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x00))

	// the host flags were never touched by the host writes
	test.ExpectEquality(t, hostRead(b, 0x42), uint8(0x00))
}

func TestFlagAccumulation(t *testing.T) {
	b := newBridge(t)

	fabricWrite(b, fabric.OffsetData, 0xaa)
	fabricWrite(b, fabric.OffsetControl, 0x55)
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x00))

	test.ExpectEquality(t, hostRead(b, 0x42), uint8(0x03))
	test.ExpectEquality(t, hostRead(b, 0x42), uint8(0x00))
	test.ExpectEquality(t, hostRead(b, 0x40), uint8(0xaa))
	test.ExpectEquality(t, hostRead(b, 0x41), uint8(0x55))
}

func TestHeldStrobe(t *testing.T) {
	b := newBridge(t)

	b.Host.Pins = hostbus.Idle()
	b.Host.Pins.Address = 0x40
	b.Host.Pins.DataIn = 0x77
	b.Host.Pins.WriteStrobeB = false
	b.Step()

	// clear the flag while the strobe is still asserted. a held strobe must not
	// commit again and so must not raise the flag again
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x01))
	for i := 0; i < 30; i++ {
		b.Step()
	}
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetFlags), uint32(0x00))
}

func TestTieBreak(t *testing.T) {
	b := newBridge(t)

	b.Host.Pins = hostbus.Idle()
	b.Host.Pins.Address = 0x40
	b.Host.Pins.DataIn = 0x11
	b.Host.Pins.WriteStrobeB = false
	b.Fabric.Pins = fabric.Pins{Cyc: true, Stb: true, We: true, Addr: 0x30000004, DatWr: 0x22}
	b.Step()

	test.ExpectEquality(t, len(b.Dropped), 1)
	test.ExpectEquality(t, b.Dropped[0].Side, registers.Fabric)
	v, _ := b.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0x11))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Fabric), registers.DATA.Bit())

	// the losing write is still acknowledged
	test.ExpectEquality(t, b.Fabric.Ack, true)
}

func TestSameEdgeFlagRead(t *testing.T) {
	b := newBridge(t)

	// host reads its flag word on the same clock as a fabric write
	b.Host.Pins = hostbus.Idle()
	b.Host.Pins.Address = 0x42
	b.Host.Pins.ReadStrobeB = false
	b.Fabric.Pins = fabric.Pins{Cyc: true, Stb: true, We: true, Addr: 0x30000008, DatWr: 0x01}
	b.Step()
	test.ExpectEquality(t, b.Host.BusDir(), true)
	test.ExpectEquality(t, b.Host.Data.Value, uint8(0x00))

	b.Fabric.Pins = fabric.Pins{}
	b.Host.Pins.ReadStrobeB = true
	for i := 0; i < clocks.FastPerSlow; i++ {
		b.Step()
	}

	// the notification survived the clear
	test.ExpectEquality(t, hostRead(b, 0x42), uint8(0x02))
}

func TestBaseAddress(t *testing.T) {
	b := newBridge(t)
	fabricWrite(b, fabric.OffsetData, 0x01)

	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, fabricRead(b, fabric.OffsetBase), uint32(0x40))
	}
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.DATA.Bit())

	// writes to the base address are acknowledged and ignored
	fabricWrite(b, fabric.OffsetBase, 0xff)
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetBase), uint32(0x40))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.DATA.Bit())
}

func TestFlagWritesIgnored(t *testing.T) {
	b := newBridge(t)
	hostWrite(b, 0x42, 0xff)
	fabricWrite(b, fabric.OffsetFlags, 0xff)
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Fabric), registers.FlagWord(0))
}

func TestOutOfWindow(t *testing.T) {
	b := newBridge(t)
	hostWrite(b, 0x43, 0xff)
	hostWrite(b, 0x3f, 0xff)
	test.ExpectEquality(t, fabricCycle(b, true, 0x100, 0xff), uint32(0))
	test.ExpectEquality(t, fabricCycle(b, false, 0x100, 0), uint32(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Fabric), registers.FlagWord(0))
	v, _ := b.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0))
}

func TestResetPin(t *testing.T) {
	b := newBridge(t)
	hostWrite(b, 0x40, 0x10)
	fabricWrite(b, fabric.OffsetControl, 0x20)
	b.FIFO.Queue().Push(0xa0)

	b.ResetPin = true
	b.Step()
	b.ResetPin = false

	v, _ := b.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0))
	v, _ = b.Registers.Peek(registers.CONTROL)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, b.Registers.Status.Peek(registers.Fabric), registers.FlagWord(0))
	test.ExpectEquality(t, b.FIFO.Queue().Count(), 0)
	test.ExpectEquality(t, b.Host.BusDir(), false)
}

func TestSingleRegister(t *testing.T) {
	prefs := preferences.NewDefaults()
	test.DemandSuccess(t, prefs.Registers.Set(1))
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, prefs)
	test.DemandSuccess(t, err)
	b := hardware.NewBridge(env)

	fabricWrite(b, fabric.OffsetData, 0x33)
	test.ExpectEquality(t, hostRead(b, 0x41), uint8(0x01))
	hostWrite(b, 0x40, 0x44)
	test.ExpectEquality(t, fabricRead(b, 0x8), uint32(0x01))
	test.ExpectEquality(t, fabricRead(b, fabric.OffsetData), uint32(0x44))
}

func TestSnapshot(t *testing.T) {
	b := newBridge(t)
	hostWrite(b, 0x40, 0x10)
	s := b.Snapshot()

	hostWrite(b, 0x40, 0x20)
	v, _ := b.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0x20))

	b.Plumb(s)
	v, _ = b.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0x10))
	test.ExpectEquality(t, b.Cycles(), s.Cycles)

	// the stored state is not changed by the plumbed bridge
	hostWrite(b, 0x40, 0x30)
	v, _ = s.Registers.Peek(registers.DATA)
	test.ExpectEquality(t, v, uint8(0x10))
}

func TestRun(t *testing.T) {
	b := newBridge(t)

	err := b.RunForCycles(100, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Cycles(), uint64(100))

	n := 0
	err = b.Run(func() (govern.State, error) {
		n++
		if n >= 50 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Cycles(), uint64(150))

	err = b.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)
}
