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


package database

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/zube/curated"
)

// Sentinal error patterns.
const (
	DatabaseError   = "database: %v"
	KeyNotAvailable = "database: key not available (%d)"
	ReadOnly        = "database: session is read only"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","

// Activity specifies the type of activity the session will be used for.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts a new database session. The init function is called
// before the database file is read and should register the entry types. A
// missing database file is only an error for ActivityModifying.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if err := init(db); err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && activity != ActivityModifying {
			return db, nil
		}
		return nil, curated.Errorf(DatabaseError, err)
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database session. Changes are written to disk if the
// commitChanges flag is true and the session was not started for reading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	f, err := os.Create(db.path)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	if err := db.write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func (db *Session) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	ln := 0
	for scanner.Scan() {
		ln++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // for loop
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < 2 {
			return curated.Errorf(DatabaseError, fmt.Sprintf("malformed entry at line %d", ln))
		}

		key, err := strconv.Atoi(fields[0])
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("invalid key (%s) at line %d", fields[0], ln))
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("duplicate key (%d) at line %d", key, ln))
		}

		des, ok := db.entryTypes[fields[1]]
		if !ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("unrecognised entry type (%s) at line %d", fields[1], ln))
		}

		ent, err := des(fields[2:])
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("line %d: %v", ln, err))
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func (db *Session) write(w io.Writer) error {
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range fields {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString("\n")

		if _, err := io.WriteString(w, s.String()); err != nil {
			return curated.Errorf(DatabaseError, err)
		}
	}

	return nil
}

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("trying to register a duplicate entry type (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := io.WriteString(output, fmt.Sprintf("%03d %s\n", key, db.entries[key])); err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, fmt.Sprintf("Total: %d\n", db.NumEntries()))
	return err
}

// Add an entry to the database. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf(ReadOnly)
	}

	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return 0, curated.Errorf(DatabaseError, fmt.Sprintf("maximum entries exceeded (max %d)", maxEntries))
	}

	db.entries[key] = ent

	return key, nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyNotAvailable, key)
	}
	return ent, nil
}

// Delete deletes the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyNotAvailable, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)

	return nil
}
