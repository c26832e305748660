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

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type in
	// the database
	EntryType() string

	// String should return information about the entry in a human readable
	// format. by contrast, machine readable representation is returned by the
	// Serialise function
	String() string

	// return the entry as a list of fields. fields must not contain the
	// field separator or a newline
	Serialise() ([]string, error)

	// a cleanup is performed when the entry is deleted from the database
	CleanUp() error
}

// Deserialiser creates an Entry from a list of fields.
type Deserialiser func(fields []string) (Entry, error)
