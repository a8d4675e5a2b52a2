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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/hardware/memory/cartridge"
	"github.com/jetsetilly/pocketcore/test"
)

// eepromWrite performs a full serial write transaction: command, address,
// 64 data bits, terminator.
func eepromWrite(e *cartridge.EEPROM, addrBits int, addr uint32, data uint64) {
	e.WriteBit(1)
	e.WriteBit(0)
	for i := addrBits - 1; i >= 0; i-- {
		e.WriteBit(uint16(addr>>i) & 1)
	}
	for i := 63; i >= 0; i-- {
		e.WriteBit(uint16(data>>i) & 1)
	}
	e.WriteBit(0)
}

// eepromRead performs a full serial read transaction and returns the 64
// payload bits that follow the 4-bit prologue.
func eepromRead(t *testing.T, e *cartridge.EEPROM, addrBits int, addr uint32) uint64 {
	t.Helper()

	e.WriteBit(1)
	e.WriteBit(1)
	for i := addrBits - 1; i >= 0; i-- {
		e.WriteBit(uint16(addr>>i) & 1)
	}
	e.WriteBit(0)

	// 4 dummy bits
	for i := 0; i < 4; i++ {
		e.ReadBit()
	}

	var data uint64
	for i := 0; i < 64; i++ {
		data = data<<1 | uint64(e.ReadBit()&1)
	}
	return data
}

func TestEEPROMRoundTrip6Bit(t *testing.T) {
	e := cartridge.NewEEPROM(nil)
	e.SetAddressWidth(6)

	eepromWrite(e, 6, 0x15, 0x0123456789ABCDEF)
	test.ExpectEquality(t, eepromRead(t, e, 6, 0x15), uint64(0x0123456789ABCDEF))
}

func TestEEPROMRoundTrip14Bit(t *testing.T) {
	e := cartridge.NewEEPROM(nil)
	e.SetAddressWidth(14)

	eepromWrite(e, 14, 0x3F0, 0xFEDCBA9876543210)
	test.ExpectEquality(t, eepromRead(t, e, 14, 0x3F0), uint64(0xFEDCBA9876543210))

	// a different block is untouched
	test.ExpectEquality(t, eepromRead(t, e, 14, 0x001), uint64(0))
}

func TestEEPROMWidthLatchesOnce(t *testing.T) {
	e := cartridge.NewEEPROM(nil)
	e.SetAddressWidth(6)
	e.SetAddressWidth(14)
	test.ExpectEquality(t, e.AddressWidth(), 6)
}

func TestFlashProgramAndIDMode(t *testing.T) {
	f := cartridge.NewFlash(nil, cartridge.BackupFlash64)

	unlock := func() {
		f.Write(0x5555, 0xAA)
		f.Write(0x2AAA, 0x55)
	}

	// erased state reads 0xFF
	test.ExpectEquality(t, f.Read(0x0000), uint8(0xFF))

	// byte program
	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x0000, 0x42)
	test.ExpectEquality(t, f.Read(0x0000), uint8(0x42))

	// in ID mode offsets 0 and 1 shadow the programmed data
	unlock()
	f.Write(0x5555, 0x90)
	man, dev := f.ID()
	test.ExpectEquality(t, f.Read(0x0000), man)
	test.ExpectEquality(t, f.Read(0x0001), dev)

	// the reset command leaves ID mode and the programmed data is readable
	// again
	f.Write(0x5555, 0xF0)
	test.ExpectEquality(t, f.Read(0x0000), uint8(0x42))
}

func TestFlashSectorErase(t *testing.T) {
	f := cartridge.NewFlash(nil, cartridge.BackupFlash64)

	unlock := func() {
		f.Write(0x5555, 0xAA)
		f.Write(0x2AAA, 0x55)
	}

	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x0100, 0x11)
	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x1100, 0x22)

	// erase the 4 KiB sector containing 0x0100
	unlock()
	f.Write(0x5555, 0x80)
	unlock()
	f.Write(0x0100, 0x30)

	test.ExpectEquality(t, f.Read(0x0100), uint8(0xFF))
	test.ExpectEquality(t, f.Read(0x1100), uint8(0x22))
}

func TestFlashChipErase(t *testing.T) {
	f := cartridge.NewFlash(nil, cartridge.BackupFlash64)

	unlock := func() {
		f.Write(0x5555, 0xAA)
		f.Write(0x2AAA, 0x55)
	}

	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x4000, 0x99)

	unlock()
	f.Write(0x5555, 0x80)
	unlock()
	f.Write(0x5555, 0x10)

	test.ExpectEquality(t, f.Read(0x4000), uint8(0xFF))
}

func TestFlashBankSwitch(t *testing.T) {
	f := cartridge.NewFlash(nil, cartridge.BackupFlash128)

	unlock := func() {
		f.Write(0x5555, 0xAA)
		f.Write(0x2AAA, 0x55)
	}

	// program a byte in bank 0
	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x0000, 0x10)

	// switch to bank 1 and program the same offset
	unlock()
	f.Write(0x5555, 0xB0)
	f.Write(0x0000, 0x01)
	unlock()
	f.Write(0x5555, 0xA0)
	f.Write(0x0000, 0x20)
	test.ExpectEquality(t, f.Read(0x0000), uint8(0x20))

	// back to bank 0
	unlock()
	f.Write(0x5555, 0xB0)
	f.Write(0x0000, 0x00)
	test.ExpectEquality(t, f.Read(0x0000), uint8(0x10))
}

func TestSRAMReadDuringDMA(t *testing.T) {
	dmaActive := false
	s := cartridge.NewSRAM(nil, func() bool { return dmaActive })

	s.Write(0x100, 0x77)
	test.ExpectEquality(t, s.Read(0x100), uint8(0x77))

	// reads while a DMA transfer is in flight return zero
	dmaActive = true
	test.ExpectEquality(t, s.Read(0x100), uint8(0))

	dmaActive = false
	test.ExpectEquality(t, s.Read(0x100), uint8(0x77))
}

func TestEraseStates(t *testing.T) {
	f := cartridge.NewFlash(nil, cartridge.BackupFlash64)
	f.Data()[0] = 0x00
	f.Erase()
	test.ExpectEquality(t, f.Data()[0], uint8(0xFF))

	s := cartridge.NewSRAM(nil, nil)
	s.Write(0, 0x55)
	s.Erase()
	test.ExpectEquality(t, s.Read(0), uint8(0))

	e := cartridge.NewEEPROM(nil)
	e.Data()[0] = 0x55
	e.Erase()
	test.ExpectEquality(t, e.Data()[0], uint8(0))
}
