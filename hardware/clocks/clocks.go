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

// Package clocks defines the clock frequencies of the two bus domains. The
// bridge itself runs on the fast fabric clock. The host bus is a much slower
// microprocessor bus and its strobes are sampled by the fast clock as
// asynchronous inputs.
package clocks

// Frequencies in MHz.
const (
	Fabric = 50.0
	Host   = 8.0
)

// FastPerSlow is the number of fabric clocks in one host clock. Host bus
// strobes are held for at least this many fabric clocks.
const FastPerSlow = int(Fabric) / int(Host)
