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


package rewind

import (
	"fmt"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of entries to store before the earliest steps are
	// forgotten
	MaxEntries prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// DefaultMaxEntries is the default value of the MaxEntries preference.
const DefaultMaxEntries = 100

// the history is allocated in full so there is a sensible upper bound
const maxMaxEntries = 10000

func newPreferences(r *Rewind, pth string) (*Preferences, error) {
	p := &Preferences{}

	p.MaxEntries.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > maxMaxEntries {
			return fmt.Errorf("rewind entries must be between 1 and %d (%d)", maxMaxEntries, v.(int))
		}
		return nil
	})
	_ = p.MaxEntries.Set(DefaultMaxEntries)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.maxentries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	// changing the size of the history loses all entries
	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.allocate()
		return nil
	})

	return p, nil
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
