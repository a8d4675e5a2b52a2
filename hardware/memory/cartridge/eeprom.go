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

import (
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/logger"
)

const eepromSize = 8192

// eeprom command machine states
const (
	eepromIdle = iota
	eepromAddressRead
	eepromAddressWrite
	eepromData
	eepromEnd
)

// EEPROM emulates the serial EEPROM device. Halfword writes anywhere in the
// EEPROM aperture contribute one bit (the LSB of the written value);
// halfword reads deliver one bit of the pending read response.
//
// The address width (6 or 14 bits) is unknown until the DMA engine's
// auto-detection latches it from the length of the first transfer.
type EEPROM struct {
	env *environment.Environment

	data [eepromSize]byte

	// address register width in bits. zero until detected
	addrWidth int

	state int

	// incoming bit accumulator
	buffer   uint64
	bitCount int

	// the block address decoded from the last command (x8 bytes)
	addr uint32

	// pending read response: 4 dummy bits then 64 data bits, MSB first
	response  uint64
	respBits  int
	respDummy int
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type.
func NewEEPROM(env *environment.Environment) *EEPROM {
	return &EEPROM{env: env}
}

// SetAddressWidth latches the address register width. Called by the DMA
// engine when the first EEPROM-bound transfer identifies the device.
func (e *EEPROM) SetAddressWidth(bits int) {
	if e.addrWidth == 0 && (bits == 6 || bits == 14) {
		e.addrWidth = bits
		logger.Logf(e.env, "backup", "eeprom address width detected as %d bits", bits)
	}
}

// AddressWidth returns the latched address register width, zero if not yet
// detected.
func (e *EEPROM) AddressWidth() int {
	return e.addrWidth
}

// Data returns the backing store.
func (e *EEPROM) Data() []byte {
	return e.data[:]
}

// Erase clears the backing store to zero.
func (e *EEPROM) Erase() {
	for i := range e.data {
		e.data[i] = 0
	}
}

func (e *EEPROM) reset() {
	e.state = eepromIdle
	e.buffer = 0
	e.bitCount = 0
}

func (e *EEPROM) decodeError(detail string) {
	if e.env != nil && e.env.Prefs.Diagnostics.Get().(bool) {
		logger.Logf(e.env, "backup", "eeprom: %s", detail)
	}
	e.reset()
}

// WriteBit feeds one bit (the LSB of a halfword write in the EEPROM
// aperture) into the command machine.
func (e *EEPROM) WriteBit(v uint16) {
	bit := uint64(v & 1)

	switch e.state {
	case eepromIdle:
		e.buffer = e.buffer<<1 | bit
		e.bitCount++
		if e.bitCount < 2 {
			return
		}
		cmd := e.buffer & 3
		e.buffer = 0
		e.bitCount = 0
		switch cmd {
		case 0b10:
			e.state = eepromAddressWrite
		case 0b11:
			e.state = eepromAddressRead
		default:
			e.decodeError("command does not start with a set bit")
		}

	case eepromAddressRead, eepromAddressWrite:
		if e.addrWidth == 0 {
			e.decodeError("transfer before address width detection")
			return
		}
		e.buffer = e.buffer<<1 | bit
		e.bitCount++
		if e.bitCount < e.addrWidth {
			return
		}

		e.addr = uint32(e.buffer) * 8 % eepromSize
		e.buffer = 0
		e.bitCount = 0

		if e.state == eepromAddressRead {
			// prepare the 68-bit response: 4 leading ones then the 64 data
			// bits MSB first
			var payload uint64
			for i := uint32(0); i < 8; i++ {
				payload = payload<<8 | uint64(e.data[e.addr+i])
			}
			e.response = payload
			e.respDummy = 4
			e.respBits = 64
			e.state = eepromEnd
		} else {
			e.state = eepromData
		}

	case eepromData:
		e.buffer = e.buffer<<1 | bit
		e.bitCount++
		if e.bitCount < 64 {
			return
		}
		for i := uint32(0); i < 8; i++ {
			e.data[e.addr+7-i] = byte(e.buffer >> (8 * i))
		}
		e.buffer = 0
		e.bitCount = 0
		e.state = eepromEnd

	case eepromEnd:
		// consume the terminator bit
		e.reset()
	}
}

// ReadBit delivers one bit of the pending read response. Reads with no
// response pending return 1.
func (e *EEPROM) ReadBit() uint16 {
	if e.respDummy > 0 {
		e.respDummy--
		return 1
	}
	if e.respBits > 0 {
		e.respBits--
		return uint16(e.response>>uint(e.respBits)) & 1
	}
	return 1
}
