// This file is part of Pocketcore.
//
// Pocketcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pocketcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pocketcore.  If not, see <https://www.gnu.org/licenses/>.

// Package random should be used in preference to the math/rand package when
// generating random numbers inside the emulation.
//
// Rewindable random numbers are seeded by the current video coordinates,
// meaning that a rewound and replayed emulation observes the same random
// stream. NoRewind random numbers are seeded once at startup and should only
// be used for state that rewinding can never reach (power-on memory
// contents).
package random

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/pocketcore/hardware/video/coords"
)

// TV is the interface the random package requires of the video pipeline: the
// current position of the beam, used to seed the rewindable stream.
type TV interface {
	GetCoords() coords.Coords
}

// base seed for the NoRewind stream, taken once at package initialisation
var baseSeed = time.Now().UnixNano()

// Random is a random number generator tied to a video pipeline instance.
type Random struct {
	tv TV

	// use zero seed rather than the video coordinates or wall clock.
	// subsequent calls to the random functions will return predictable
	// sequences; useful for regression testing
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tv TV) *Random {
	return &Random{tv: tv}
}

func (rnd *Random) coordsSeed() int64 {
	c := rnd.tv.GetCoords()
	return int64(c.Frame)<<32 | int64(c.Scanline)<<16 | int64(c.Clock)
}

// Rewindable generates a random number very quickly and based on the current
// video coordinates. It's only as random as the coordinates themselves: two
// generators at the same coordinates return the same value, which is exactly
// the property a rewindable emulation needs.
//
// The returned number is in the range 0 to n.
func (rnd *Random) Rewindable(n int) int {
	var seed int64
	if !rnd.ZeroSeed {
		seed = rnd.coordsSeed()
	}
	return rand.New(rand.NewSource(seed)).Intn(n)
}

// NoRewind uses the wall clock seed taken at startup. Used for randomisation
// that happens before emulation begins, such as power-on memory state.
//
// The returned number is in the range 0 to n.
func (rnd *Random) NoRewind(n int) int {
	var seed int64
	if !rnd.ZeroSeed {
		seed = baseSeed
	}
	return rand.New(rand.NewSource(seed)).Intn(n)
}
