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


package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/zube/modalflag"
	"github.com/jetsetilly/zube/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "script.zs", "other"})
	log := md.AddBool("log", false, "echo log")
	test.ExpectEquality(t, *log, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "script.zs")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "soak", "-cycles", "100", "extra"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "MONITOR", "SOAK")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "SOAK")

	md.NewMode()
	cycles := md.AddInt("cycles", 10, "number of transactions")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cycles, 100)
	test.ExpectEquality(t, md.GetArg(0), "extra")
	test.ExpectEquality(t, md.Path(), "SOAK")

	var visited []string
	md.Visit(func(f string) { visited = append(visited, f) })
	test.ExpectEquality(t, len(visited), 1)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"script.zs"})
	md.AddSubModes("RUN", "MONITOR")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "script.zs")

	md.NewArgs([]string{})
	md.AddSubModes("MONITOR")
	md.AddDefaultSubMode("run")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.Path(), "RUN/RUN")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-wibble"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, md.Parsed(), true)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -log\n"+
		"    \techo log (default true)\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "MONITOR", "SOAK")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  available sub-modes: RUN, MONITOR, SOAK\n"+
		"    default: RUN\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddSubModes("RUN", "MONITOR", "SOAK")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -log\n"+
		"    \techo log (default true)\n"+
		"\n"+
		"  available sub-modes: RUN, MONITOR, SOAK\n"+
		"    default: RUN\n")
}
