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

// Package hostbus implements the bridge port for the legacy 8-bit
// microprocessor bus. The bus has a 16-bit address, active-low read and write
// strobes, an optional active-low IORQ qualifier and a bidirectional data bus.
//
// The host bus runs from its own, much slower, clock. The strobes are
// therefore sampled by the bridge clock as asynchronous levels and are only
// acted upon when they are first seen to be asserted. A strobe held for many
// bridge clocks results in a single access.
//
// Registers are decoded in a contiguous window starting at the base address.
// Register k is at base+k and the host flag word follows the last register.
// Addresses outside of the window are ignored.
//
// The port drives the data bus only while a read is in progress. The bus
// direction output is deasserted on the first clock after the read strobe is
// seen to be released.
package hostbus
