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

// Package fabric implements the bridge port for the 32-bit pipelined system
// bus. The protocol is the classic acknowledge based cycle: the master asserts
// CYC and STB (and WE for a write) along with the address and write data, and
// holds them until the port asserts ACK. ACK is asserted for exactly one clock,
// on the clock after the request is seen, and is accompanied by valid read
// data for a read.
//
// The fabric bus is synchronous to the bridge clock so no edge qualification
// of the request is required. The port does not accept a new request on the
// clock that it asserts ACK, which guarantees that a request is never
// committed twice.
//
// The port decodes a window of four 32-bit aligned offsets:
//
//	+0x0	host bus base address (read only)
//	+0x4	DATA
//	+0x8	CONTROL
//	+0xC	flag word (read clears)
//
// For the single register variant, the flag word is at +0x8. Only the low
// byte of the write data is used. Read data is zero extended.
package fabric
