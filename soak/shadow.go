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


package soak

// shadow is an independent model of the register file, the two flag words
// and the FIFO.
type shadow struct {
	values []uint8

	// flag words owned by each side
	host   uint8
	fabric uint8

	fifo  []uint8
	depth int
}

func newShadow(registers int, depth int) *shadow {
	return &shadow{
		values: make([]uint8, registers),
		depth:  depth,
	}
}

func (sh *shadow) hostWrite(r int, v uint8) {
	sh.values[r] = v
	sh.fabric |= 1 << r
}

func (sh *shadow) fabricWrite(r int, v uint8) {
	sh.values[r] = v
	sh.host |= 1 << r
}

func (sh *shadow) hostFlags() uint8 {
	f := sh.host
	sh.host = 0
	return f
}

func (sh *shadow) fabricFlags() uint8 {
	f := sh.fabric
	sh.fabric = 0
	return f
}

func (sh *shadow) push(v uint8) bool {
	if len(sh.fifo) >= sh.depth {
		return false
	}
	sh.fifo = append(sh.fifo, v)
	return true
}

func (sh *shadow) pop() (uint8, bool) {
	if len(sh.fifo) == 0 {
		return 0, false
	}
	v := sh.fifo[0]
	sh.fifo = sh.fifo[1:]
	return v, true
}
