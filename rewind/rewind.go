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
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/logger"
	"github.com/jetsetilly/zube/script"
)

type entry struct {
	bridge   *hardware.State
	position script.Position
}

// Rewind contains a history of bridge states.
type Rewind struct {
	bridge *hardware.Bridge
	scr    *script.Script

	Prefs *Preferences

	// circular array of snapshotted entries. count is the number of valid
	// entries ending at the most recent
	entries []entry
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The script must be driving the bridge. Preferences are read from the prefs
// file, which does not need to exist.
func NewRewind(bridge *hardware.Bridge, scr *script.Script, prefsFile string) (*Rewind, error) {
	r := &Rewind{
		bridge: bridge,
		scr:    scr,
	}

	var err error
	r.Prefs, err = newPreferences(r, prefsFile)
	if err != nil {
		return nil, err
	}

	r.allocate()

	return r, nil
}

// allocate the circular array. all existing entries are lost.
func (r *Rewind) allocate() {
	r.entries = make([]entry, r.Prefs.MaxEntries.Get().(int))
	r.start = 0
	r.count = 0
}

// Reset removes all entries.
func (r *Rewind) Reset() {
	r.start = 0
	r.count = 0
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Record the current state of the bridge and the position of the script.
func (r *Rewind) Record() {
	e := entry{
		bridge:   r.bridge.Snapshot(),
		position: r.scr.Position(),
	}

	if r.count < len(r.entries) {
		r.entries[(r.start+r.count)%len(r.entries)] = e
		r.count++
		return
	}

	// forget the oldest entry
	r.entries[r.start] = e
	r.start = (r.start + 1) % len(r.entries)
}

// Back restores the most recently recorded entry and removes it from the
// history. Returns false if there is nothing to go back to.
func (r *Rewind) Back() bool {
	if r.count == 0 {
		return false
	}

	r.count--
	e := r.entries[(r.start+r.count)%len(r.entries)]
	r.entries[(r.start+r.count)%len(r.entries)] = entry{}

	r.bridge.Plumb(e.bridge)
	r.scr.Seek(e.position)

	logger.Logf(r.bridge.Env, "rewind", "back to cycle %d (line %d)", r.bridge.Cycles(), r.scr.Line())

	return true
}
