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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/prefs"
	"github.com/jetsetilly/zube/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check (partially) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// value is removed once it has been retrieved
	prefs.PushCommandLineStack("foo::bar;baz::qux")
	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestIntParsing(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set("0x40"))
	test.ExpectEquality(t, v.Get().(int), 0x40)
	test.ExpectSuccess(t, v.Set("12"))
	test.ExpectEquality(t, v.String(), "12")
	v.SetHex(true)
	test.ExpectEquality(t, v.String(), "0xc")
	test.ExpectFailure(t, v.Set("twelve"))
	test.ExpectFailure(t, v.Set(1.5))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 {
			return fmt.Errorf("too small")
		}
		return nil
	})
	test.ExpectSuccess(t, v.Set(4))
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 4)

	var b prefs.Bool
	var called bool
	b.SetHookPost(func(nv prefs.Value) error {
		called = nv.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectSuccess(t, called)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var depth prefs.Int
	var iorq prefs.Bool
	test.DemandSuccess(t, dsk.Add("fifo.depth", &depth))
	test.DemandSuccess(t, dsk.Add("bridge.iorq", &iorq))
	test.ExpectFailure(t, dsk.Add("fifo.depth", &depth))

	// missing file is reported with a specific error
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.DemandSuccess(t, depth.Set(8))
	test.DemandSuccess(t, iorq.Set(true))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "bridge.iorq :: true\nfifo.depth :: 8\n")

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, depth.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, depth.Get().(int), 8)
	test.ExpectEquality(t, iorq.Get().(bool), true)

	// command line stack overrides file contents
	prefs.PushCommandLineStack("fifo.depth::16")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, depth.Get().(int), 16)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
