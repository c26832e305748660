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

import (
	"fmt"

	"github.com/jetsetilly/zube/hardware/registers"
)

// Direction of a transaction.
type Direction int

// List of valid directions.
const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	if d == Write {
		return "write"
	}
	return "read"
}

// TargetKind indicates what a decoded address refers to.
type TargetKind int

// List of valid target kinds.
const (
	// the address is outside of the decode window
	None TargetKind = iota

	// one of the registers in the register file
	Register

	// the flag word for the side making the access
	Flags

	// the host bus base address. only visible to the fabric bus
	BaseAddress
)

// Target is the result of decoding an address.
type Target struct {
	Kind     TargetKind
	Register registers.Register
}

func (t Target) String() string {
	switch t.Kind {
	case Register:
		return t.Register.String()
	case Flags:
		return "FLAGS"
	case BaseAddress:
		return "BASE"
	}
	return "out of window"
}

// Transaction is a single decoded bus cycle.
type Transaction struct {
	Side      registers.Side
	Direction Direction
	Address   uint32
	Target    Target

	// the value to be written for write transactions
	Data uint8
}

func (tx Transaction) String() string {
	if tx.Direction == Write {
		return fmt.Sprintf("%s write %#02x to %s (%#x)", tx.Side, tx.Data, tx.Target, tx.Address)
	}
	return fmt.Sprintf("%s read from %s (%#x)", tx.Side, tx.Target, tx.Address)
}
