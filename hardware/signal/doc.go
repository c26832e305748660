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

// Package signal models single wires as seen by a clocked circuit. The Line
// type samples a level once per clock and remembers the previous sample, so
// that edges can be detected. This is how asynchronous strobes from an
// external bus are turned into single clock pulses: a level held for many
// clocks produces exactly one rising edge.
//
// Active-low lines (the write and read strobes of the host bus for example)
// should be sampled with their asserted state, not their electrical level.
// In other words, sample !WriteStrobeB and not WriteStrobeB. Rising() then
// means "has just been asserted".
package signal
