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


// Package rewind keeps a history of bridge states so that an interactive
// session can step backwards. Every entry pairs a snapshot of the bridge
// with the position of the script that was driving it.
//
// The history is a circular array. When it is full the oldest entry is
// forgotten. The size of the array is set by the rewind.maxentries
// preference.
package rewind
