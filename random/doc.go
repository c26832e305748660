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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the bridge model or its test benches.
//
// Two sources of randomness are provided. Rewindable() returns a number that
// depends only on the current clock count of the bridge (and the seed). Asking
// for a rewindable number twice on the same clock returns the same value.
// Stream() returns the next number from a generator created at the last call
// to Reseed(). Both sources are predictable when the seed is known, which is
// what allows a failing soak run to be replayed.
package random
