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
	"time"

	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/logger"
)

// GPIO pin assignments in the data register
const (
	pinSCK = 1 << 0
	pinSIO = 1 << 1
	pinCS  = 1 << 2
)

// GPIO register offsets within the ROM address space
const (
	gpioData      = 0xC4
	gpioDirection = 0xC6
	gpioControl   = 0xC8
)

// GPIO exposes the three cartridge GPIO registers mapped into the ROM
// address space and drives the real-time clock wired to them.
//
// When the read-enable bit of the control register is clear, reads of the
// three registers fall through to the underlying ROM words.
type GPIO struct {
	env *environment.Environment

	pins      uint16
	direction uint16
	control   uint16

	rtc rtc
}

// NewGPIO is the preferred method of initialisation for the GPIO type.
func NewGPIO(env *environment.Environment) *GPIO {
	return &GPIO{env: env, rtc: rtc{env: env}}
}

// Read a halfword from the GPIO aperture. The boolean result is false when
// the address is not a GPIO register, or when the read-enable bit is clear
// and the read should fall through to ROM.
func (g *GPIO) Read(addr uint32) (uint16, bool) {
	offset := addr & 0x01FFFFFF
	if offset != gpioData && offset != gpioDirection && offset != gpioControl {
		return 0, false
	}
	if g.control&1 == 0 {
		return 0, false
	}

	switch offset {
	case gpioData:
		pins := g.pins
		// pins configured as inputs are driven by the RTC
		if g.direction&pinSIO == 0 {
			pins = (pins &^ pinSIO) | g.rtc.sioOut<<1
		}
		return pins & 0xF, true
	case gpioDirection:
		return g.direction & 0xF, true
	default:
		return g.control & 1, true
	}
}

// Write a halfword to the GPIO aperture. The boolean result is false when
// the address is not a GPIO register.
func (g *GPIO) Write(addr uint32, v uint16) bool {
	offset := addr & 0x01FFFFFF

	switch offset {
	case gpioData:
		prev := g.pins
		g.pins = v & 0xF
		g.rtc.pinsChanged(prev, g.pins, g.direction)
		return true
	case gpioDirection:
		g.direction = v & 0xF
		return true
	case gpioControl:
		g.control = v & 1
		return true
	}

	return false
}

// rtc command machine states
const (
	rtcIdle = iota
	rtcCommand
	rtcParam
	rtcResponse
)

// rtc commands
const (
	rtcCmdResetA      = 0x60
	rtcCmdResetB      = 0x61
	rtcCmdWriteStatus = 0x62
	rtcCmdReadStatus  = 0x63
	rtcCmdWriteTime   = 0x64
	rtcCmdReadTime    = 0x65
	rtcCmdWriteClock  = 0x66
	rtcCmdReadClock   = 0x67
)

// rtc status byte: 24-hour mode
const rtcStatus24Hour = 0x40

// rtc is the serial protocol machine behind the GPIO pins. On each rising
// edge of SCK while CS is high one bit is exchanged, in the direction given
// by the GPIO direction register.
type rtc struct {
	env *environment.Environment

	state int

	// incoming bits, LSB first
	buffer   uint64
	bitCount int

	command   uint8
	paramBits int

	// outgoing response bytes, streamed LSB first per byte
	response []uint8
	respBit  int

	// the bit currently presented on SIO
	sioOut uint16
}

func (r *rtc) reset() {
	r.state = rtcIdle
	r.buffer = 0
	r.bitCount = 0
	r.response = nil
	r.respBit = 0
}

// pinsChanged processes a write to the GPIO data register.
func (r *rtc) pinsChanged(prev, pins, direction uint16) {
	cs := pins&pinCS != 0

	if !cs {
		// dropping chip-select aborts any transfer in progress
		if prev&pinCS != 0 {
			r.reset()
		}
		return
	}

	// rising edge of SCK
	if prev&pinSCK != 0 || pins&pinSCK == 0 {
		return
	}

	if direction&pinSIO != 0 {
		r.bitIn((pins >> 1) & 1)
	} else {
		r.sioOut = r.bitOut()
	}
}

// bitIn feeds one serial bit into the command machine.
func (r *rtc) bitIn(bit uint16) {
	switch r.state {
	case rtcIdle, rtcCommand:
		r.state = rtcCommand
		r.buffer |= uint64(bit) << r.bitCount
		r.bitCount++
		if r.bitCount < 8 {
			return
		}

		cmd := uint8(r.buffer)
		r.buffer = 0
		r.bitCount = 0

		// commands arrive LSB first; a command with the marker nibble in
		// the wrong half was sent in the opposite order
		if cmd>>4 != 6 {
			cmd = reverseByte(cmd)
		}
		r.execute(cmd)

	case rtcParam:
		r.bitCount++
		if r.bitCount >= r.paramBits {
			// payloads are accepted and discarded
			r.reset()
		}
	}
}

// bitOut delivers one serial bit of the pending response.
func (r *rtc) bitOut() uint16 {
	if r.state != rtcResponse || len(r.response) == 0 {
		return 1
	}

	bit := uint16(r.response[0]>>r.respBit) & 1
	r.respBit++
	if r.respBit == 8 {
		r.respBit = 0
		r.response = r.response[1:]
		if len(r.response) == 0 {
			r.reset()
		}
	}
	return bit
}

func (r *rtc) execute(cmd uint8) {
	switch cmd {
	case rtcCmdResetA, rtcCmdResetB:
		r.reset()

	case rtcCmdWriteStatus:
		r.state = rtcParam
		r.paramBits = 8
		r.bitCount = 0

	case rtcCmdReadStatus:
		r.response = []uint8{rtcStatus24Hour}
		r.respBit = 0
		r.state = rtcResponse

	case rtcCmdWriteTime:
		r.state = rtcParam
		r.paramBits = 56
		r.bitCount = 0

	case rtcCmdReadTime:
		now := time.Now()
		r.response = []uint8{
			toBCD(now.Year() % 100),
			toBCD(int(now.Month())),
			toBCD(now.Day()),
			toBCD(int(now.Weekday())),
			toBCD(now.Hour()),
			toBCD(now.Minute()),
			toBCD(now.Second()),
		}
		r.respBit = 0
		r.state = rtcResponse

	case rtcCmdWriteClock:
		r.state = rtcParam
		r.paramBits = 24
		r.bitCount = 0

	case rtcCmdReadClock:
		now := time.Now()
		r.response = []uint8{
			toBCD(now.Hour()),
			toBCD(now.Minute()),
			toBCD(now.Second()),
		}
		r.respBit = 0
		r.state = rtcResponse

	default:
		if r.env != nil && r.env.Prefs.Diagnostics.Get().(bool) {
			logger.Logf(r.env, "backup", "rtc: unknown command %02x", cmd)
		}
		r.reset()
	}
}

func toBCD(v int) uint8 {
	return uint8(v/10)<<4 | uint8(v%10)
}

func reverseByte(v uint8) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		out = out<<1 | (v>>i)&1
	}
	return out
}
