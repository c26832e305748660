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

package random

import (
	"math/rand"
	"time"
)

// Clock is the interface to anything that counts clock edges. The bridge
// satisfies this interface.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// bridge model.
type Random struct {
	clock Clock

	// use zero seed rather than the time based seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	seed   int64
	stream *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock can be nil but must be plumbed in before Rewindable() is used.
func NewRandom(clock Clock) *Random {
	rnd := &Random{clock: clock}
	rnd.Reseed(int64(time.Now().Nanosecond()))
	return rnd
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

// Reseed the generator. The stream is restarted.
func (rnd *Random) Reseed(seed int64) {
	rnd.seed = seed
	rnd.stream = rand.New(rand.NewSource(rnd.effectiveSeed()))
}

// Seed returns the value used at the most recent call to Reseed().
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

func (rnd *Random) effectiveSeed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.seed
}

// Rewindable returns a number in the range [0,n) that is the same for every
// call made on the same clock.
func (rnd *Random) Rewindable(n int) int {
	var cycles uint64
	if rnd.clock != nil {
		cycles = rnd.clock.Cycles()
	}
	return rand.New(rand.NewSource(rnd.effectiveSeed() + int64(cycles))).Intn(n)
}

// Stream returns the next number in the range [0,n) from the seeded stream.
func (rnd *Random) Stream(n int) int {
	return rnd.stream.Intn(n)
}
