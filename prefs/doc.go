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

// Package prefs facilitates the storage and retrieval of preference values.
// Values are typed (Bool and Int) and are associated with a key when added to
// a Disk instance. The Disk type handles the loading and saving of values to
// a preferences file. The file is plain text with one "key :: value" entry
// per line.
//
// Values can be overridden for the duration of a single load with the command
// line stack. For example:
//
//	prefs.PushCommandLineStack("bridge.hostbase::0x80; fifo.depth::8")
//
// Any value on the top of the stack will be applied the next time a Disk
// containing a matching key is loaded. The value is removed from the stack
// once it has been applied.
//
// Pre and post hooks can be attached to values. A pre hook that returns an
// error will prevent the value from changing, which makes it the natural place
// for validation.
package prefs
