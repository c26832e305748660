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

import "github.com/jetsetilly/zube/curated"

// SelectAll entries in the database in key order. onSelect can be nil.
//
// Returning an error from onSelect stops the selection. The error is
// returned by SelectAll().
func (db *Session) SelectAll(onSelect func(key int, ent Entry) error) error {
	return db.SelectKeys(onSelect)
}

// SelectKeys calls onSelect for the entries with the specified keys. If the
// list of keys is empty then all entries are selected. onSelect can be nil.
//
// Keys that are not in the database return the KeyNotAvailable error before
// any entry is selected.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) error, keys ...int) error {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		if _, ok := db.entries[key]; !ok {
			return curated.Errorf(KeyNotAvailable, key)
		}
	}

	for _, key := range keyList {
		if err := onSelect(key, db.entries[key]); err != nil {
			return err
		}
	}

	return nil
}
