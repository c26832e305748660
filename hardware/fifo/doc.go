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

// Package fifo implements the synchronous FIFO used as the buffering primitive
// between the fast fabric clock and the slower host bus clock.
//
// The Queue type is the FIFO itself. It has a single write port and a single
// read port and reports its fill status with NotEmpty() and Full(). Values
// leave the queue in exactly the order they were pushed. A push and a pop on
// the same clock is legal and leaves the count unchanged.
//
// The DataRegister type wraps a Queue with a pair of strobes. Strobes are
// edge qualified so a strobe that is held for several clocks pushes or pops
// only once. This is the form of the FIFO that is presented to a bus.
//
// Misuse of the queue (pushing when full, popping when empty) is not an error
// that can be recovered from. The operation is rejected and logged.
package fifo
