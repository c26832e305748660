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


package rewind_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/prefs"
	"github.com/jetsetilly/zube/rewind"
	"github.com/jetsetilly/zube/script"
	"github.com/jetsetilly/zube/test"
)

const src = `host write 0x40 0x01
host write 0x40 0x02
host write 0x40 0x03
host write 0x40 0x04
`

func setup(t *testing.T, pth string) (*rewind.Rewind, *script.Script, *bench.Bench) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	bn := bench.NewBench(env)
	scr, err := script.NewScript("rewind", strings.NewReader(src), bn, nil)
	test.DemandSuccess(t, err)
	rw, err := rewind.NewRewind(bn.Bridge, scr, pth)
	test.DemandSuccess(t, err)
	return rw, scr, bn
}

func data(bn *bench.Bench) uint8 {
	v, _ := bn.Bridge.Registers.Peek(registers.DATA)
	return v
}

func TestBack(t *testing.T) {
	rw, scr, bn := setup(t, filepath.Join(t.TempDir(), "prefs"))
	test.ExpectEquality(t, rw.Prefs.MaxEntries.Get().(int), rewind.DefaultMaxEntries)
	test.ExpectEquality(t, rw.Back(), false)

	for !scr.Done() {
		rw.Record()
		test.ExpectSuccess(t, scr.Step())
	}
	test.ExpectEquality(t, rw.Len(), 4)
	test.ExpectEquality(t, data(bn), uint8(0x04))
	cycles := bn.Bridge.Cycles()

	test.ExpectEquality(t, rw.Back(), true)
	test.ExpectEquality(t, data(bn), uint8(0x03))
	test.ExpectEquality(t, scr.Line(), 4)
	test.ExpectEquality(t, bn.Bridge.Cycles() < cycles, true)

	// going forward again from a restored state
	test.ExpectSuccess(t, scr.Step())
	test.ExpectEquality(t, data(bn), uint8(0x04))
	test.ExpectEquality(t, bn.Bridge.Cycles(), cycles)

	for rw.Back() {
	}
	test.ExpectEquality(t, rw.Len(), 0)
	test.ExpectEquality(t, data(bn), uint8(0x00))
	test.ExpectEquality(t, scr.Line(), 1)
}

func TestLimit(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	prefs.PushCommandLineStack("rewind.maxentries::2")
	rw, scr, bn := setup(t, pth)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, rw.Prefs.MaxEntries.Get().(int), 2)

	for !scr.Done() {
		rw.Record()
		test.ExpectSuccess(t, scr.Step())
	}
	test.ExpectEquality(t, rw.Len(), 2)

	// the oldest entries have been forgotten
	test.ExpectEquality(t, rw.Back(), true)
	test.ExpectEquality(t, data(bn), uint8(0x03))
	test.ExpectEquality(t, rw.Back(), true)
	test.ExpectEquality(t, data(bn), uint8(0x02))
	test.ExpectEquality(t, rw.Back(), false)
	test.ExpectEquality(t, scr.Line(), 3)

	// changing the size empties the history
	rw.Record()
	test.ExpectEquality(t, rw.Len(), 1)
	test.ExpectSuccess(t, rw.Prefs.MaxEntries.Set(10))
	test.ExpectEquality(t, rw.Len(), 0)
	test.ExpectFailure(t, rw.Prefs.MaxEntries.Set(0))
}

func TestPreferencesFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	rw, _, _ := setup(t, pth)
	test.ExpectSuccess(t, rw.Prefs.MaxEntries.Set(5))
	test.ExpectSuccess(t, rw.Prefs.Save())

	_, err := os.Stat(pth)
	test.ExpectSuccess(t, err)

	rw, _, _ = setup(t, pth)
	test.ExpectEquality(t, rw.Prefs.MaxEntries.Get().(int), 5)
}
