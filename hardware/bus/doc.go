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

// Package bus defines the types shared by the two bus ports and the bridge.
//
// A Transaction exists only for the clock on which a port decodes a qualified
// cycle. It is handed to the bridge, which resolves it against the register
// file, and is then discarded.
//
// The Tristate type models a bidirectional data line as two discrete signals:
// the value being driven and an enable. A line is only meaningful to a reader
// while the driving side has the enable set.
package bus
