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

package bus

// Tristate is one side's connection to a bidirectional data line.
type Tristate struct {
	Value  uint8
	Enable bool
}

// Drive the line with the value.
func (t *Tristate) Drive(v uint8) {
	t.Value = v
	t.Enable = true
}

// Release the line. The value is left as it was but should not be read.
func (t *Tristate) Release() {
	t.Enable = false
}

// Resolve the value on the line when connected to another driver. If neither
// side is driving the line floats and the value is undefined (zero is
// returned). Contention is true if both sides are driving at once.
func (t Tristate) Resolve(other Tristate) (value uint8, driven bool, contention bool) {
	switch {
	case t.Enable && other.Enable:
		return t.Value | other.Value, true, true
	case t.Enable:
		return t.Value, true, false
	case other.Enable:
		return other.Value, true, false
	}
	return 0, false, false
}
