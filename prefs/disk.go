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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/zube/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
	DuplicateKey   = "prefs: duplicate key (%s)"
)

// KeySeparator divides the key from the value in the prefs file.
const KeySeparator = " :: "

const commentCharacter = "#"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at path does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySeparator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk store. Keys must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// Load values from disk. Entries in the file that have not been added to the
// Disk instance are ignored. Values on the command line stack are applied
// after the file has been read, even if the file does not exist. A missing
// file returns the NoPrefsFile error, which callers will usually ignore.
func (dsk *Disk) Load() error {
	var missing error

	f, err := os.Open(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf(PrefsFileError, err)
		}
		missing = curated.Errorf(NoPrefsFile, dsk.path)
	} else {
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, commentCharacter) {
				continue
			}

			kv := strings.SplitN(line, KeySeparator, 2)
			if len(kv) != 2 {
				continue
			}

			if p, ok := dsk.entries[strings.TrimSpace(kv[0])]; ok {
				if err := p.Set(strings.TrimSpace(kv[1])); err != nil {
					return curated.Errorf(PrefsFileError, err)
				}
			}
		}

		if err := scanner.Err(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	return missing
}

// Save current values to disk.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	_, err = f.WriteString(dsk.String())
	if err != nil {
		f.Close()
		return curated.Errorf(PrefsFileError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}
