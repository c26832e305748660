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

package logger

import "io"

// the maximum number of entries in the central logger
const maxCentral = 256

var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error, a fmt.Stringer or any other value that can be formatted
// with the %v verb.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new central log entries to the io.Writer as they are added.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// Copy returns a copy of the central log entries.
func Copy() []Entry {
	return central.Copy()
}
