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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/zube/hardware/bus"
	"github.com/jetsetilly/zube/hardware/registers"
	"github.com/jetsetilly/zube/test"
)

func TestTristate(t *testing.T) {
	var bridge bus.Tristate
	var master bus.Tristate

	_, driven, contention := bridge.Resolve(master)
	test.ExpectFailure(t, driven)
	test.ExpectFailure(t, contention)

	master.Drive(0x10)
	v, driven, contention := bridge.Resolve(master)
	test.ExpectSuccess(t, driven)
	test.ExpectFailure(t, contention)
	test.ExpectEquality(t, v, uint8(0x10))

	master.Release()
	bridge.Drive(0x20)
	v, _, contention = bridge.Resolve(master)
	test.ExpectFailure(t, contention)
	test.ExpectEquality(t, v, uint8(0x20))

	master.Drive(0x01)
	_, _, contention = bridge.Resolve(master)
	test.ExpectSuccess(t, contention)
}

func TestTransactionString(t *testing.T) {
	tx := bus.Transaction{
		Side:      registers.Host,
		Direction: bus.Write,
		Address:   0x40,
		Target:    bus.Target{Kind: bus.Register, Register: registers.DATA},
		Data:      0x10,
	}
	test.ExpectEquality(t, tx.String(), "host write 0x10 to DATA (0x40)")

	tx.Direction = bus.Read
	tx.Target = bus.Target{Kind: bus.None}
	test.ExpectEquality(t, tx.String(), "host read from out of window (0x40)")
}
