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


// Package bench drives a bridge at the pin level, one bus cycle at a time. It
// is the equivalent of a simulation test bench: every host cycle holds its
// strobe for one slow clock (clocks.FastPerSlow fast clocks) and releases it
// for another, and every fabric cycle holds its request until the bridge
// acknowledges it.
//
// Probes can be attached to a Bench. Every probe is sampled after every fast
// clock. The ContentionProbe checks the bus direction rules of the host bus;
// the wavwriter package provides a probe that records a signal trace.
package bench
