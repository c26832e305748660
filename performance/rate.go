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


package performance

import "github.com/jetsetilly/zube/hardware/clocks"

// CalcRate takes the number of fast clocks and duration (in seconds) and
// returns the clock rate in MHz and the accuracy of that value as a
// percentage of the real fabric clock.
func CalcRate(numClocks uint64, duration float64) (mhz float64, accuracy float64) {
	mhz = float64(numClocks) / duration / 1000000
	accuracy = 100 * mhz / clocks.Fabric
	return mhz, accuracy
}
