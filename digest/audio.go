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

	"github.com/jetsetilly/pocketcore/hardware/audio"
)

// the length of the buffer isn't really important. that said, it needs to
// be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow digests of audio streams longer than audioBufferLength, the
// previous digest value is stuffed into the first part of the buffer and
// included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio drains the direct-sound FIFOs and periodically generates a SHA-1
// value of the sample stream.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Audio struct {
	aud    *audio.Audio
	digest [sha1.Size]byte
	buffer []byte
	cursor int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(aud *audio.Audio) *Audio {
	return &Audio{
		aud:    aud,
		buffer: make([]byte, audioBufferLength),
		cursor: audioBufferStart,
	}
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.cursor = audioBufferStart
}

// Drain consumes every queued sample from both FIFOs, folding them into
// the digest as the buffer fills. Call once per frame.
func (dig *Audio) Drain() {
	for fifo := 0; fifo < 2; fifo++ {
		for {
			v, ok := dig.aud.FIFO[fifo].Dequeue()
			if !ok {
				break
			}

			dig.buffer[dig.cursor] = v
			dig.cursor++

			if dig.cursor >= len(dig.buffer) {
				dig.fold()
			}
		}
	}
}

// fold hashes the buffer and chains the result into the head of the buffer
// for the next round.
func (dig *Audio) fold() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.cursor = audioBufferStart
}
