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


// Package soak drives a bridge with a long random sequence of bus cycles from
// both sides and checks every result against a shadow model. The host bus is
// watched by a ContentionProbe for the whole of the run.
//
// The sequence is taken from the environment's random number generator so a
// failing run can be repeated by reseeding with the seed in the Report.
package soak
