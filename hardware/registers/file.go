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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/logger"
)

// Write is a pending write to the register file. A list of writes that happen
// on the same clock are applied together with File.Commit().
type Write struct {
	Register Register
	Value    uint8
	Side     Side
}

func (w Write) String() string {
	return fmt.Sprintf("%s %s=%#02x", w.Side, w.Register, w.Value)
}

// File is the register file.
type File struct {
	env *environment.Environment

	values []uint8

	// Status is exported for the convenience of the debugging tools. The
	// bridge itself should use ReadFlags()
	Status Status
}

// NewFile is the preferred method of initialisation for the File type. The
// count is clamped to the range 1 to MaxRegisters.
func NewFile(env *environment.Environment, count int) *File {
	if count < 1 {
		count = 1
	} else if count > MaxRegisters {
		count = MaxRegisters
	}
	return &File{
		env:    env,
		values: make([]uint8, count),
	}
}

// Snapshot creates a copy of the File in its current state.
func (f *File) Snapshot() *File {
	n := *f
	n.values = make([]uint8, len(f.values))
	copy(n.values, f.values)
	return &n
}

// Plumb a new environment into the register file.
func (f *File) Plumb(env *environment.Environment) {
	f.env = env
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, v := range f.values {
		s.WriteString(fmt.Sprintf("%s=%#02x ", Register(i), v))
	}
	s.WriteString(fmt.Sprintf("host flags=%s fabric flags=%s", f.Status.host, f.Status.fabric))
	return s.String()
}

// Reset all registers and both flag words to zero.
func (f *File) Reset() {
	for i := range f.values {
		f.values[i] = 0
	}
	f.Status.Reset()
}

// Count returns the number of registers in the file.
func (f *File) Count() int {
	return len(f.values)
}

// Valid returns true if the register exists in the file.
func (f *File) Valid(r Register) bool {
	return r >= 0 && int(r) < len(f.values)
}

// Write overwrites the value of the register and raises the flag bit for the
// register in the flag word of the other side.
func (f *File) Write(r Register, v uint8, writer Side) {
	if !f.Valid(r) {
		logger.Logf(f.env, "registers", "%s write to missing register (%d)", writer, int(r))
		return
	}
	f.values[r] = v
	f.Status.notify(writer, r)
}

// Read returns the current value of the register. Reads never change state.
func (f *File) Read(r Register, reader Side) uint8 {
	if !f.Valid(r) {
		logger.Logf(f.env, "registers", "%s read of missing register (%d)", reader, int(r))
		return 0
	}
	return f.values[r]
}

// ReadFlags returns the flag word for the reader. The flag word is cleared.
func (f *File) ReadFlags(reader Side) FlagWord {
	return f.Status.collect(reader)
}

// Commit applies a list of writes that have happened on the same clock. If
// both sides have written to the same register then the host write wins and
// the fabric write is discarded completely: the register keeps the host value
// and the host flag word is not changed by the discarded write.
//
// Returns the list of discarded writes.
func (f *File) Commit(writes ...Write) []Write {
	var dropped []Write

	for i, w := range writes {
		if w.Side == Fabric {
			lost := false
			for j, o := range writes {
				if j != i && o.Side == Host && o.Register == w.Register {
					lost = true
					break
				}
			}
			if lost {
				logger.Logf(f.env, "registers", "simultaneous write to %s: %s discarded", w.Register, w)
				dropped = append(dropped, w)
				continue
			}
		}
		f.Write(w.Register, w.Value, w.Side)
	}

	return dropped
}

// Peek returns the value of the register without any side effects. Returns
// false if the register does not exist.
func (f *File) Peek(r Register) (uint8, bool) {
	if !f.Valid(r) {
		return 0, false
	}
	return f.values[r], true
}

// Poke sets the value of the register without raising any flags. Returns false
// if the register does not exist.
func (f *File) Poke(r Register, v uint8) bool {
	if !f.Valid(r) {
		return false
	}
	f.values[r] = v
	return true
}
