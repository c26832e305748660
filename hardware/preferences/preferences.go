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

// Package preferences contains the elaboration time configuration of the
// bridge. Values are read once when a bridge is created and never change
// while the bridge is running.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/paths"
	"github.com/jetsetilly/zube/prefs"
)

// Default values.
const (
	DefaultHostBase   = 0x40
	DefaultFabricBase = 0x30000000
	DefaultRegisters  = 2
	DefaultFifoDepth  = 4
	MaxFifoDepth      = 256
)

// Preferences for the bridge hardware.
type Preferences struct {
	dsk *prefs.Disk

	// host bus address of register zero. the fabric side can discover this
	// value by reading offset zero
	HostBase prefs.Int

	// fabric bus address of offset zero
	FabricBase prefs.Int

	// the number of registers in the register file. one for the
	// single-register variant (DATA only) and two for DATA and CONTROL
	Registers prefs.Int

	// qualify host accesses with the active-low IORQ line
	IORQ prefs.Bool

	// depth of the synchronous FIFO
	FifoDepth prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "no disk"
	}
	return p.dsk.String()
}

// NewPreferences creates preferences and loads values from the default prefs
// file. Values on the command line stack are also applied.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences but with an explicit
// prefs file. The file does not need to exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := newPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range p.entries() {
		err = p.dsk.Add(e.key, e.pref)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

type entry struct {
	key  string
	pref interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}
}

func (p *Preferences) entries() []entry {
	return []entry{
		{"bridge.hostbase", &p.HostBase},
		{"bridge.fabricbase", &p.FabricBase},
		{"bridge.registers", &p.Registers},
		{"bridge.iorq", &p.IORQ},
		{"fifo.depth", &p.FifoDepth},
	}
}

// UnknownPreference is returned by NewPreferencesFromString when a key is
// not recognised.
const UnknownPreference = "preferences: unknown preference (%s)"

// NewPreferencesFromString creates preferences from default values and a
// string of "key::value" pairs separated by semi-colons. This is the same
// format as the command line stack. The result is not backed by a file.
func NewPreferencesFromString(s string) (*Preferences, error) {
	p := newPreferences()

	prefs.PushCommandLineStack(s)
	for _, e := range p.entries() {
		if ok, v := prefs.GetCommandLinePref(e.key); ok {
			if err := e.pref.Set(v); err != nil {
				prefs.PopCommandLineStack()
				return nil, curated.Errorf("preferences: %s: %v", e.key, err)
			}
		}
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		return nil, curated.Errorf(UnknownPreference, unused)
	}

	return p, nil
}

// NewDefaults creates preferences with default values that are not backed by
// a file. Load() and Save() do nothing.
func NewDefaults() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}

	p.HostBase.SetHex(true)
	p.HostBase.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 0xffff-MaxRegisters {
			return fmt.Errorf("host base out of range (%#x)", v.(int))
		}
		return nil
	})

	p.FabricBase.SetHex(true)
	p.FabricBase.SetHookPre(func(v prefs.Value) error {
		if n := int64(v.(int)); n < 0 || n > 0xfffffff0 || n&0x0f != 0 {
			return fmt.Errorf("fabric base must be a 16 byte aligned 32bit address (%#x)", v.(int))
		}
		return nil
	})

	p.Registers.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > MaxRegisters {
			return fmt.Errorf("register count must be between 1 and %d (%d)", MaxRegisters, v.(int))
		}
		return nil
	})

	p.FifoDepth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > MaxFifoDepth {
			return fmt.Errorf("fifo depth must be between 1 and %d (%d)", MaxFifoDepth, v.(int))
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// MaxRegisters is the largest register file supported. The flag word is one
// byte wide so this could be larger, but the fabric map only has room for two.
const MaxRegisters = 2

// SetDefaults reverts all values to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with the default values
	_ = p.HostBase.Set(DefaultHostBase)
	_ = p.FabricBase.Set(DefaultFabricBase)
	_ = p.Registers.Set(DefaultRegisters)
	_ = p.IORQ.Set(false)
	_ = p.FifoDepth.Set(DefaultFifoDepth)
}

// Load current values from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current values to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Config is a frozen copy of the preferences. It is taken when a bridge is
// elaborated.
type Config struct {
	HostBase   uint16
	FabricBase uint32
	Registers  int
	IORQ       bool
	FifoDepth  int
}

// Config returns the current values as a Config instance.
func (p *Preferences) Config() Config {
	return Config{
		HostBase:   uint16(p.HostBase.Get().(int)),
		FabricBase: uint32(p.FabricBase.Get().(int)),
		Registers:  p.Registers.Get().(int),
		IORQ:       p.IORQ.Get().(bool),
		FifoDepth:  p.FifoDepth.Get().(int),
	}
}
