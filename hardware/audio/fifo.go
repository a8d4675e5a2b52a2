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

// Package audio holds the two direct-sound sample FIFOs. The DMA engine
// fills them through the I/O register file's FIFO addresses; the host
// drains them at its own playback rate through the read side.
package audio

// NumSamples is the size of each FIFO's sample ring. One slot always stays
// empty, so a FIFO holds at most NumSamples-1 samples.
const NumSamples = 8192

// FIFO is a ring of signed 8-bit samples with independent read and write
// indices.
type FIFO struct {
	samples [NumSamples]uint8
	read    int
	write   int
}

// Enqueue adds a sample, overwriting the oldest sample when full.
func (f *FIFO) Enqueue(v uint8) {
	f.samples[f.write] = v
	f.write = (f.write + 1) % NumSamples
	if f.write == f.read {
		f.read = (f.read + 1) % NumSamples
	}
}

// Dequeue removes and returns the oldest sample. The boolean result is
// false when the FIFO is empty.
func (f *FIFO) Dequeue() (uint8, bool) {
	if f.read == f.write {
		return 0, false
	}
	v := f.samples[f.read]
	f.read = (f.read + 1) % NumSamples
	return v, true
}

// Len returns the number of queued samples.
func (f *FIFO) Len() int {
	return (f.write - f.read + NumSamples) % NumSamples
}

// Reset empties the FIFO.
func (f *FIFO) Reset() {
	f.read = 0
	f.write = 0
}

// Audio is the pair of direct-sound FIFOs.
type Audio struct {
	FIFO [2]FIFO
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// Enqueue adds a sample to FIFO A (0) or B (1). Bound to the I/O register
// file's FIFOWrite hook.
func (a *Audio) Enqueue(fifo int, v uint8) {
	a.FIFO[fifo&1].Enqueue(v)
}

// Reset empties both FIFOs.
func (a *Audio) Reset() {
	a.FIFO[0].Reset()
	a.FIFO[1].Reset()
}
