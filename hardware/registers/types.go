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

import "fmt"

// Register identifies a register in the register file. The value of the
// Register is also the bit number in the flag word.
type Register int

// List of registers.
const (
	DATA Register = iota
	CONTROL
)

// MaxRegisters is the largest number of registers a File can have.
const MaxRegisters = 2

func (r Register) String() string {
	switch r {
	case DATA:
		return "DATA"
	case CONTROL:
		return "CONTROL"
	}
	return fmt.Sprintf("REG%d", int(r))
}

// Bit returns the bit in the flag word that corresponds to the register.
func (r Register) Bit() FlagWord {
	return FlagWord(0x01 << uint(r))
}

// Side identifies one of the two bus masters.
type Side int

// List of sides.
const (
	Host Side = iota
	Fabric
)

func (s Side) String() string {
	switch s {
	case Host:
		return "host"
	case Fabric:
		return "fabric"
	}
	return "unknown side"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Host {
		return Fabric
	}
	return Host
}

// FlagWord records which registers have been written. Bit k is set if register
// k has been written by the other side since the flag word was last read.
type FlagWord uint8

func (f FlagWord) String() string {
	return fmt.Sprintf("%08b", uint8(f))
}

// Has returns true if the bit for the register is set.
func (f FlagWord) Has(r Register) bool {
	return f&r.Bit() == r.Bit()
}
