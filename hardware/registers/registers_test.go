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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/test"
)

func newFile(t *testing.T, count int) *registers.File {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	return registers.NewFile(env, count)
}

func TestReset(t *testing.T) {
	f := newFile(t, 2)
	f.Write(registers.DATA, 0x10, registers.Host)
	f.Write(registers.CONTROL, 0x20, registers.Fabric)
	f.Reset()

	test.ExpectEquality(t, f.Read(registers.DATA, registers.Host), uint8(0))
	test.ExpectEquality(t, f.Read(registers.CONTROL, registers.Fabric), uint8(0))
	test.ExpectEquality(t, f.ReadFlags(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0))
}

func TestReadWrite(t *testing.T) {
	f := newFile(t, 2)
	for _, side := range []registers.Side{registers.Host, registers.Fabric} {
		for _, r := range []registers.Register{registers.DATA, registers.CONTROL} {
			f.Write(r, 0x5a, side)
			test.ExpectEquality(t, f.Read(r, side), uint8(0x5a), side, r)
			test.ExpectEquality(t, f.Read(r, side.Opposite()), uint8(0x5a), side, r)

			// reads do not change the value
			test.ExpectEquality(t, f.Read(r, side), uint8(0x5a), side, r)
		}
	}
}

func TestFlagOwnership(t *testing.T) {
	f := newFile(t, 2)

	f.Write(registers.CONTROL, 0x01, registers.Host)

	// writer's own flag word is unchanged
	test.ExpectEquality(t, f.Status.Peek(registers.Host), registers.FlagWord(0))

	// opposite flag word has exactly the bit for the register
	test.ExpectEquality(t, f.Status.Peek(registers.Fabric), registers.CONTROL.Bit())

	// read returns the flags and then clears them
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0x02))
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0x00))
}

func TestFlagAccumulation(t *testing.T) {
	f := newFile(t, 2)

	f.Write(registers.DATA, 0x01, registers.Fabric)
	f.Write(registers.DATA, 0x02, registers.Fabric)
	f.Write(registers.CONTROL, 0x03, registers.Fabric)

	flags := f.ReadFlags(registers.Host)
	test.ExpectEquality(t, flags, registers.FlagWord(0x03))
	test.ExpectSuccess(t, flags.Has(registers.DATA))
	test.ExpectSuccess(t, flags.Has(registers.CONTROL))
	test.ExpectEquality(t, f.ReadFlags(registers.Host), registers.FlagWord(0x00))

	// reading the host flags does not disturb the fabric flags
	f.Write(registers.DATA, 0x04, registers.Host)
	f.ReadFlags(registers.Host)
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0x01))
}

func TestCommitTieBreak(t *testing.T) {
	f := newFile(t, 2)

	dropped := f.Commit(
		registers.Write{Register: registers.DATA, Value: 0xaa, Side: registers.Fabric},
		registers.Write{Register: registers.DATA, Value: 0x55, Side: registers.Host},
	)

	// host wins and the fabric write is discarded without raising host flags
	test.ExpectEquality(t, len(dropped), 1)
	test.ExpectEquality(t, dropped[0].Side, registers.Fabric)
	test.ExpectEquality(t, f.Read(registers.DATA, registers.Host), uint8(0x55))
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0x01))
	test.ExpectEquality(t, f.ReadFlags(registers.Host), registers.FlagWord(0x00))

	// different registers on the same clock are both applied
	dropped = f.Commit(
		registers.Write{Register: registers.DATA, Value: 0x11, Side: registers.Fabric},
		registers.Write{Register: registers.CONTROL, Value: 0x22, Side: registers.Host},
	)
	test.ExpectEquality(t, len(dropped), 0)
	test.ExpectEquality(t, f.Read(registers.DATA, registers.Host), uint8(0x11))
	test.ExpectEquality(t, f.Read(registers.CONTROL, registers.Host), uint8(0x22))
	test.ExpectEquality(t, f.ReadFlags(registers.Host), registers.FlagWord(0x01))
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0x02))
}

func TestSingleRegisterVariant(t *testing.T) {
	f := newFile(t, 1)
	test.ExpectEquality(t, f.Count(), 1)
	test.ExpectFailure(t, f.Valid(registers.CONTROL))

	// writes to a missing register are ignored
	f.Write(registers.CONTROL, 0xff, registers.Host)
	test.ExpectEquality(t, f.ReadFlags(registers.Fabric), registers.FlagWord(0))
	test.ExpectEquality(t, f.Read(registers.CONTROL, registers.Fabric), uint8(0))
}

func TestPeekPoke(t *testing.T) {
	f := newFile(t, 2)
	test.ExpectSuccess(t, f.Poke(registers.DATA, 0x77))
	v, ok := f.Peek(registers.DATA)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x77))

	// debug access raises no flags
	test.ExpectEquality(t, f.Status.Peek(registers.Host), registers.FlagWord(0))
	test.ExpectEquality(t, f.Status.Peek(registers.Fabric), registers.FlagWord(0))

	_, ok = f.Peek(registers.Register(5))
	test.ExpectFailure(t, ok)
}

func TestSnapshot(t *testing.T) {
	f := newFile(t, 2)
	f.Write(registers.DATA, 0x10, registers.Host)
	s := f.Snapshot()
	f.Write(registers.DATA, 0x20, registers.Host)
	f.ReadFlags(registers.Fabric)

	test.ExpectEquality(t, s.Read(registers.DATA, registers.Host), uint8(0x10))
	test.ExpectEquality(t, s.Status.Peek(registers.Fabric), registers.FlagWord(0x01))
}
