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

// Status holds the flag word for each side. The fields are deliberately
// separate registers: notify() only ever writes to the word of the side
// opposite the writer and collect() only ever clears the word of the reader.
type Status struct {
	host   FlagWord
	fabric FlagWord
}

// Reset both flag words to zero.
func (st *Status) Reset() {
	st.host = 0
	st.fabric = 0
}

// notify the side opposite to the writer that the register has been written.
func (st *Status) notify(writer Side, r Register) {
	switch writer.Opposite() {
	case Host:
		st.host |= r.Bit()
	case Fabric:
		st.fabric |= r.Bit()
	}
}

// collect returns the flag word of the reader and clears it.
func (st *Status) collect(reader Side) FlagWord {
	var f FlagWord
	switch reader {
	case Host:
		f = st.host
		st.host = 0
	case Fabric:
		f = st.fabric
		st.fabric = 0
	}
	return f
}

// Peek returns the flag word for the side without clearing it.
func (st *Status) Peek(side Side) FlagWord {
	switch side {
	case Host:
		return st.host
	case Fabric:
		return st.fabric
	}
	return 0
}
