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

// Package registers implements the register file shared by the two bus ports,
// together with the status flags that tell each side which registers have
// been written by the other side.
//
// The register file is the single source of truth for register values.
// Neither port keeps a private copy.
//
// There are two flag words, one for each side. The flag word of a side is
// only ever set by writes from the opposite side and only ever cleared by a
// read of the flag word by the side itself. The two words are independent
// registers. They are never merged into a single shared flag.
//
// Flag bits accumulate. Any number of writes to the same register between two
// reads of the flag word leave a single bit set.
package registers
