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

// Package hardware is the base package for the bridge model. It and its
// sub-packages contain everything required for a headless simulation.
//
// The Bridge type is the root of the model and contains external references
// to all the bridge sub-systems: the register file, the two bus ports and the
// FIFO data register. From here the bridge can either be run continuously
// (with an optional callback to check for continuation) or it can be stepped
// one fast clock at a time.
//
// Pins of the sub-systems are set directly by the caller before calling
// Step(). Outputs are read from the sub-systems after Step() returns.
package hardware
