// This file is part of Gotron.
//
// Gotron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotron.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a seedable random number generator.
type Random struct {
	rng  *rand.Rand
	seed int64

	// use zero seed rather than the random base seed. only useful for
	// normalised instances where numbers must be predictable. has no effect
	// after the first number has been generated or after a call to Seed()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		seed: baseSeed,
	}
}

// Seed the generator. Resets the sequence of numbers returned.
func (rnd *Random) Seed(seed int64) {
	rnd.seed = seed
	rnd.rng = rand.New(rand.NewSource(seed))
}

// GetSeed returns the seed used by the generator.
func (rnd *Random) GetSeed() int64 {
	rnd.source()
	return rnd.seed
}

func (rnd *Random) source() *rand.Rand {
	if rnd.rng == nil {
		if rnd.ZeroSeed {
			rnd.seed = 0
		}
		rnd.rng = rand.New(rand.NewSource(rnd.seed))
	}
	return rnd.rng
}

// Uint8 returns a random 8bit value.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.source().Intn(256))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.source().Intn(n)
}

// Fill slice with random bytes.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.source()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
