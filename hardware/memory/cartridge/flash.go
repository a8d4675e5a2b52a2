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

// flash unlock addresses
const (
	flashUnlockA = 0x5555
	flashUnlockB = 0x2AAA
)

// flash commands, written to the unlock address at the end of an unlock
// sequence
const (
	flashCmdEnterErase   = 0x80
	flashCmdEnterID      = 0x90
	flashCmdProgram      = 0xA0
	flashCmdBankSwitch   = 0xB0
	flashCmdReset        = 0xF0
	flashCmdChipErase    = 0x10
	flashCmdSectorErase  = 0x30
	flashUnlockFirst     = 0xAA
	flashUnlockSecond    = 0x55
)

// flash device operating modes
const (
	flashModeNormal = iota
	flashModeErase
	flashModeID
	flashModeProgram
	flashModeBank
)

// Flash emulates the two supported flash backup devices: a single 64 KiB
// bank or two banks of 64 KiB selected by the bank-switch command.
//
// Every command is guarded by the two-write unlock sequence (0xAA at 0x5555
// then 0x55 at 0x2AAA). The phase counter tracks progress through the
// sequence; combined with the operating mode it forms the unlock/command
// state machine.
type Flash struct {
	env *environment.Environment

	data [0x20000]byte
	bank uint32

	phase int
	mode  int

	banked       bool
	manufacturer uint8
	device       uint8
}

// NewFlash is the preferred method of initialisation for the Flash type.
// The kind argument must be BackupFlash64 or BackupFlash128.
func NewFlash(env *environment.Environment, kind BackupKind) *Flash {
	f := &Flash{env: env}

	if kind == BackupFlash128 {
		f.banked = true
		f.manufacturer = 0xC2
		f.device = 0x09
	} else {
		f.manufacturer = 0xBF
		f.device = 0xD4
	}

	f.Erase()
	return f
}

// Manufacturer and device bytes exposed during ID mode.
func (f *Flash) ID() (uint8, uint8) {
	return f.manufacturer, f.device
}

// Data returns the backing store.
func (f *Flash) Data() []byte {
	if f.banked {
		return f.data[:]
	}
	return f.data[:0x10000]
}

// Erase sets the whole device to the erased state (0xFF).
func (f *Flash) Erase() {
	for i := range f.data {
		f.data[i] = 0xFF
	}
}

func (f *Flash) decodeError(v uint8, offset uint32) {
	if f.env != nil && f.env.Prefs.Diagnostics.Get().(bool) {
		logger.Logf(f.env, "backup", "flash: malformed command sequence (%02x at %04x)", v, offset)
	}
	f.phase = 0
}

// Read a byte from the device. In ID mode offsets 0 and 1 shadow the
// backing store with the manufacturer and device bytes.
func (f *Flash) Read(offset uint32) uint8 {
	offset &= 0xFFFF

	if f.mode == flashModeID {
		switch offset {
		case 0:
			return f.manufacturer
		case 1:
			return f.device
		}
	}

	return f.data[f.bank<<16|offset]
}

// Write drives the unlock/command state machine.
func (f *Flash) Write(offset uint32, v uint8) {
	offset &= 0xFFFF

	switch f.mode {
	case flashModeProgram:
		// the write after the byte-program command commits the value
		f.data[f.bank<<16|offset] = v
		f.mode = flashModeNormal
		f.phase = 0
		return

	case flashModeBank:
		if offset == 0 {
			if f.banked {
				f.bank = uint32(v & 1)
			}
			f.mode = flashModeNormal
			f.phase = 0
			return
		}
		f.decodeError(v, offset)
		f.mode = flashModeNormal
		return
	}

	switch f.phase {
	case 0:
		switch {
		case offset == flashUnlockA && v == flashUnlockFirst:
			f.phase = 1
		case v == flashCmdReset:
			// leaves ID mode; a no-op otherwise
			f.mode = flashModeNormal
		default:
			f.decodeError(v, offset)
		}

	case 1:
		if offset == flashUnlockB && v == flashUnlockSecond {
			f.phase = 2
		} else {
			f.decodeError(v, offset)
		}

	case 2:
		f.phase = 0

		if f.mode == flashModeErase {
			switch {
			case offset == flashUnlockA && v == flashCmdChipErase:
				f.Erase()
				f.mode = flashModeNormal
			case v == flashCmdSectorErase:
				// erase the 4 KiB sector containing the address
				base := f.bank<<16 | offset&0xF000
				for i := uint32(0); i < 0x1000; i++ {
					f.data[base+i] = 0xFF
				}
				f.mode = flashModeNormal
			default:
				f.decodeError(v, offset)
			}
			return
		}

		if offset != flashUnlockA {
			f.decodeError(v, offset)
			return
		}

		switch v {
		case flashCmdEnterErase:
			f.mode = flashModeErase
		case flashCmdEnterID:
			f.mode = flashModeID
		case flashCmdProgram:
			f.mode = flashModeProgram
		case flashCmdBankSwitch:
			f.mode = flashModeBank
		case flashCmdReset:
			f.mode = flashModeNormal
		default:
			f.decodeError(v, offset)
		}
	}
}
