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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/prefs"
	"github.com/jetsetilly/zube/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	cfg := p.Config()
	test.ExpectEquality(t, cfg.HostBase, uint16(preferences.DefaultHostBase))
	test.ExpectEquality(t, cfg.FabricBase, uint32(preferences.DefaultFabricBase))
	test.ExpectEquality(t, cfg.Registers, 2)
	test.ExpectEquality(t, cfg.IORQ, false)
	test.ExpectEquality(t, cfg.FifoDepth, 4)

	// no disk so these do nothing
	test.ExpectSuccess(t, p.Load())
	test.ExpectSuccess(t, p.Save())
}

func TestValidation(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectFailure(t, p.Registers.Set(0))
	test.ExpectFailure(t, p.Registers.Set(3))
	test.ExpectSuccess(t, p.Registers.Set(1))
	test.ExpectFailure(t, p.FifoDepth.Set(0))
	test.ExpectFailure(t, p.FabricBase.Set("0x30000004"))
	test.ExpectFailure(t, p.HostBase.Set(0x10000))
	test.ExpectEquality(t, p.Config().Registers, 1)
}

func TestFromFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	err := os.WriteFile(pth, []byte("bridge.hostbase :: 0x80\nfifo.depth :: 8\n# comment\nunknown.key :: 1\n"), 0600)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("bridge.registers::1")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	cfg := p.Config()
	test.ExpectEquality(t, cfg.HostBase, uint16(0x80))
	test.ExpectEquality(t, cfg.FifoDepth, 8)
	test.ExpectEquality(t, cfg.Registers, 1)
	test.ExpectEquality(t, cfg.FabricBase, uint32(preferences.DefaultFabricBase))
}

func TestMissingFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "missing")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config().HostBase, uint16(preferences.DefaultHostBase))
}

func TestFromString(t *testing.T) {
	p, err := preferences.NewPreferencesFromString("bridge.registers::1; fifo.depth::16")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config().Registers, 1)
	test.ExpectEquality(t, p.Config().FifoDepth, 16)
	test.ExpectEquality(t, p.Config().HostBase, uint16(preferences.DefaultHostBase))

	p, err = preferences.NewPreferencesFromString("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config(), preferences.NewDefaults().Config())

	_, err = preferences.NewPreferencesFromString("bridge.registers::9")
	test.ExpectFailure(t, err)

	_, err = preferences.NewPreferencesFromString("bridge.colour::red")
	test.ExpectEquality(t, curated.Is(err, preferences.UnknownPreference), true)

	// the command line stack is left as it was found
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
