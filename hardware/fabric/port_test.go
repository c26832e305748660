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


package fabric_test

import (
	"testing"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/test"
)

const base = 0x30000000

func newPort(t *testing.T, regs int) *fabric.Port {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	return fabric.NewPort(env, fabric.Config{Base: base, Registers: regs})
}

func TestDecode(t *testing.T) {
	p := newPort(t, 2)
	test.ExpectEquality(t, p.Decode(base+fabric.OffsetBase).Kind, bus.BaseAddress)
	test.ExpectEquality(t, p.Decode(base+fabric.OffsetData), bus.Target{Kind: bus.Register, Register: registers.DATA})
	test.ExpectEquality(t, p.Decode(base+fabric.OffsetControl), bus.Target{Kind: bus.Register, Register: registers.CONTROL})
	test.ExpectEquality(t, p.Decode(base+fabric.OffsetFlags).Kind, bus.Flags)
	test.ExpectEquality(t, p.Decode(base+0x10).Kind, bus.None)
	test.ExpectEquality(t, p.Decode(base+0x5).Kind, bus.None)
	test.ExpectEquality(t, p.Decode(base-4).Kind, bus.None)

	// single register variant moves the flags down
	p = newPort(t, 1)
	test.ExpectEquality(t, p.Decode(base+0x8).Kind, bus.Flags)
	test.ExpectEquality(t, p.Decode(base+0xc).Kind, bus.None)
}

func TestWriteAck(t *testing.T) {
	p := newPort(t, 2)
	p.Pins = fabric.Pins{Cyc: true, Stb: true, We: true, Addr: base + fabric.OffsetData, DatWr: 0x1234}

	tx := p.Step()
	test.DemandInequality(t, tx, (*bus.Transaction)(nil))
	test.ExpectEquality(t, tx.Direction, bus.Write)
	test.ExpectEquality(t, tx.Data, uint8(0x34))
	test.ExpectEquality(t, tx.Target.Register, registers.DATA)
	p.Respond(0)
	test.ExpectEquality(t, p.Ack, true)

	// request still held on the ack clock. the port must not commit again
	tx = p.Step()
	test.ExpectEquality(t, tx, (*bus.Transaction)(nil))
	test.ExpectEquality(t, p.Ack, false)

	// a master that continues to hold the request starts a new cycle
	tx = p.Step()
	test.ExpectInequality(t, tx, (*bus.Transaction)(nil))
}

func TestReadAck(t *testing.T) {
	p := newPort(t, 2)
	p.Pins = fabric.Pins{Cyc: true, Stb: true, Addr: base + fabric.OffsetFlags}

	tx := p.Step()
	test.DemandInequality(t, tx, (*bus.Transaction)(nil))
	test.ExpectEquality(t, tx.Direction, bus.Read)
	test.ExpectEquality(t, tx.Target.Kind, bus.Flags)
	p.Respond(0x03)
	test.ExpectEquality(t, p.Ack, true)
	test.ExpectEquality(t, p.DatRd, uint32(0x03))

	p.Pins = fabric.Pins{}
	test.ExpectEquality(t, p.Step(), (*bus.Transaction)(nil))
	test.ExpectEquality(t, p.Ack, false)
}

func TestNoStrobe(t *testing.T) {
	p := newPort(t, 2)
	p.Pins = fabric.Pins{Cyc: true, Addr: base + fabric.OffsetData}
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, p.Step(), (*bus.Transaction)(nil))
	}
	test.ExpectEquality(t, p.Ack, false)
}

func TestOutOfWindow(t *testing.T) {
	p := newPort(t, 2)
	p.Pins = fabric.Pins{Cyc: true, Stb: true, We: true, Addr: 0x40000000, DatWr: 0xff}

	// out of window accesses still complete the handshake
	tx := p.Step()
	test.DemandInequality(t, tx, (*bus.Transaction)(nil))
	test.ExpectEquality(t, tx.Target.Kind, bus.None)
	p.Respond(0)
	test.ExpectEquality(t, p.Ack, true)
}

func TestRespondWhenIdle(t *testing.T) {
	p := newPort(t, 2)
	p.Respond(0xff)
	test.ExpectEquality(t, p.Ack, false)
	test.ExpectEquality(t, p.DatRd, uint32(0))
}
