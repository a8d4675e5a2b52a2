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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/pocketcore/hardware/video"
)

// Video generates a SHA-1 value of the frame buffer every frame. Digests
// are chained: the previous frame's digest is hashed in with the new
// frame's pixels, so the final value fingerprints the whole sequence.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	tv       *video.Video
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(tv *video.Video) *Video {
	return &Video{
		tv: tv,

		// enough room for every pixel plus the previous frame's digest
		// value at the head
		pixels: make([]byte, sha1.Size+video.Width*video.Height*4),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// NewFrame folds the just-completed frame into the digest. Call once per
// frame-drawn signal.
func (dig *Video) NewFrame() {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the video data
	copy(dig.pixels, dig.digest[:])

	frame := dig.tv.Frame()
	for i, p := range frame {
		dig.pixels[sha1.Size+i*4] = byte(p)
		dig.pixels[sha1.Size+i*4+1] = byte(p >> 8)
		dig.pixels[sha1.Size+i*4+2] = byte(p >> 16)
		dig.pixels[sha1.Size+i*4+3] = byte(p >> 24)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}
