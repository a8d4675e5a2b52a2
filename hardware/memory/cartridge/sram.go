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

package cartridge

import "github.com/jetsetilly/pocketcore/environment"

const sramSize = 0x8000

// SRAM is the simplest backup device: 32 KiB of battery backed RAM indexed
// by the low 15 bits of the address.
type SRAM struct {
	env  *environment.Environment
	data [sramSize]byte

	// reads issued while a DMA transfer is in flight return zero,
	// preventing DMA-initiated SRAM copies as on the real hardware
	dmaActive func() bool
}

// NewSRAM is the preferred method of initialisation for the SRAM type.
func NewSRAM(env *environment.Environment, dmaActive func() bool) *SRAM {
	return &SRAM{
		env:       env,
		dmaActive: dmaActive,
	}
}

// Read a byte from the device.
func (s *SRAM) Read(offset uint32) uint8 {
	if s.dmaActive != nil && s.dmaActive() {
		return 0
	}
	return s.data[offset&(sramSize-1)]
}

// Write a byte to the device.
func (s *SRAM) Write(offset uint32, v uint8) {
	s.data[offset&(sramSize-1)] = v
}

// Data returns the backing store.
func (s *SRAM) Data() []byte {
	return s.data[:]
}

// Erase clears the backing store to zero.
func (s *SRAM) Erase() {
	for i := range s.data {
		s.data[i] = 0
	}
}
