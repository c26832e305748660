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


package script_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/script"
	"github.com/jetsetilly/zube/test"
)

func newScript(t *testing.T, src string, output *test.Writer) *script.Script {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	bn := bench.NewBench(env)

	var scr *script.Script
	if output == nil {
		scr, err = script.NewScript("test", strings.NewReader(src), bn, nil)
	} else {
		scr, err = script.NewScript("test", strings.NewReader(src), bn, output)
	}
	test.DemandSuccess(t, err)
	return scr
}

func TestScenario(t *testing.T) {
	scr := newScript(t, `
# two register scenario
reset
host write 0x40 0x10
fabric read 0x3000000c expect 0x01
fabric read 0x30000004 expect 0x10
fabric read 0x30000008 expect 0x00
fabric read 0x3000000c expect 0x00
fabric read 0x30000000 expect $40
`, nil)
	test.ExpectSuccess(t, scr.Run())
	test.ExpectEquality(t, scr.Done(), true)
}

func TestOutput(t *testing.T) {
	w := &test.Writer{}
	scr := newScript(t, "host write 0x40 0x10\nhost read 0x40\nfifo push 7\nfifo pop\n", w)
	test.ExpectSuccess(t, scr.Run())
	test.ExpectEquality(t, w.String(), "host read 0x0040 = 0x10\nfifo pop = 0x07\n")
}

func TestExpectFailure(t *testing.T) {
	scr := newScript(t, "host write 0x40 0x10\n\nhost read 0x40 expect 0x11\nhost read 0x40\n", nil)
	err := scr.Run()
	test.ExpectEquality(t, curated.Is(err, script.ExpectFailed), true)
	test.ExpectEquality(t, err.Error(), "script: test: 3: host read: expected 0x11 got 0x10")

	// the failing line has been consumed. the next line is the last one
	test.ExpectEquality(t, scr.Line(), 4)
	test.ExpectEquality(t, scr.Done(), false)
}

func TestUnknownCommand(t *testing.T) {
	scr := newScript(t, "reset\npoke 0x40 0x10\n", nil)
	err := scr.Run()
	test.ExpectEquality(t, curated.Is(err, script.UnknownCommand), true)
}

func TestArguments(t *testing.T) {
	for _, src := range []string{
		"clock",
		"clock many",
		"host write 0x40",
		"host write 0x40 0x100",
		"host read 0x40 expect",
		"host read 0x40 want 0x10",
		"host poke 0x40 0x10",
		"fabric write 0x30000004",
		"fifo",
		"fifo push",
		"fifo peek",
		"loop",
		"do",
		"fifo push %i",
	} {
		scr := newScript(t, src, nil)
		err := scr.Run()
		test.ExpectEquality(t, curated.Is(err, script.ArgumentError), true, src)
	}
}

func TestCommandError(t *testing.T) {
	scr := newScript(t, "fifo pop\n", nil)
	err := scr.Run()
	test.ExpectEquality(t, curated.Is(err, script.CommandError), true)
	test.ExpectEquality(t, curated.Has(err, bench.FifoUnderflow), true)
}

func TestLoops(t *testing.T) {
	scr := newScript(t, `
do 4 i
	fifo push %i
loop
do 4 i
	fifo pop expect %i
loop
do 2
	do 3 j
		host write 0x40 %j
		host read 0x40 expect %j
	loop
loop
`, nil)
	test.ExpectSuccess(t, scr.Run())
}

func TestStep(t *testing.T) {
	scr := newScript(t, "# comment\n\nclock 6\nclock 6\n", nil)
	test.ExpectEquality(t, scr.Line(), 1)
	test.ExpectSuccess(t, scr.Step())
	test.ExpectEquality(t, scr.Line(), 4)
	test.ExpectSuccess(t, scr.Step())
	test.ExpectEquality(t, scr.Done(), true)

	// stepping a finished script does nothing
	test.ExpectSuccess(t, scr.Step())

	scr.Rewind()
	test.ExpectEquality(t, scr.Line(), 1)
	test.ExpectEquality(t, scr.Done(), false)
}

func TestLoadScript(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	_, err = script.LoadScript("does_not_exist.zs", bench.NewBench(env), nil)
	test.ExpectEquality(t, curated.Is(err, script.FileError), true)
}

func TestSeek(t *testing.T) {
	scr := newScript(t, `do 3 i
host write 0x40 %i
host read 0x40 expect %i
loop
`, nil)
	test.ExpectSuccess(t, scr.Step())
	test.ExpectSuccess(t, scr.Step())
	pos := scr.Position()
	test.ExpectEquality(t, scr.Line(), 3)

	test.ExpectSuccess(t, scr.Run())
	test.ExpectEquality(t, scr.Done(), true)

	// the loop variable is restored to zero but the register still holds the
	// value from the final iteration
	scr.Seek(pos)
	test.ExpectEquality(t, scr.Line(), 3)
	test.ExpectEquality(t, scr.Done(), false)
	err := scr.Step()
	test.ExpectEquality(t, curated.Is(err, script.ExpectFailed), true)
}
