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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/hardware/memory"
	"github.com/jetsetilly/pocketcore/hardware/memory/cartridge"
	"github.com/jetsetilly/pocketcore/test"
)

func prepare(t *testing.T) *memory.Memory {
	t.Helper()
	return memory.NewMemory(nil, make([]byte, cartridgeloader.FirmwareSize))
}

func TestPaletteByteWriteDuplicates(t *testing.T) {
	mem := prepare(t)

	// a byte write duplicates the byte into the addressed halfword
	for _, addr := range []uint32{0x05000000, 0x05000001, 0x050003FE} {
		mem.WriteByte(addr, 0xAB)
		test.ExpectEquality(t, mem.ReadHalf(addr&^1), uint16(0xABAB))
	}
}

func TestVRAMByteWritePolicy(t *testing.T) {
	mem := prepare(t)

	// BG area: duplicated
	mem.WriteByte(0x06000001, 0x5C)
	test.ExpectEquality(t, mem.ReadHalf(0x06000000), uint16(0x5C5C))

	// OBJ area: dropped
	mem.WriteHalf(0x06010000, 0x1234)
	mem.WriteByte(0x06010000, 0xFF)
	test.ExpectEquality(t, mem.ReadHalf(0x06010000), uint16(0x1234))
}

func TestOAMByteWriteIgnored(t *testing.T) {
	mem := prepare(t)

	mem.WriteHalf(0x07000000, 0xBEEF)
	mem.WriteByte(0x07000000, 0x00)
	test.ExpectEquality(t, mem.ReadHalf(0x07000000), uint16(0xBEEF))
}

func TestWorkRAMMirroring(t *testing.T) {
	mem := prepare(t)

	// external work RAM mirrors every 256 KiB
	mem.WriteWord(0x02000000, 0x11223344)
	test.ExpectEquality(t, mem.ReadWord(0x02040000), uint32(0x11223344))
	test.ExpectEquality(t, mem.ReadWord(0x02FC0000), uint32(0x11223344))

	// internal work RAM mirrors every 32 KiB
	mem.WriteWord(0x03000000, 0x55667788)
	test.ExpectEquality(t, mem.ReadWord(0x03008000), uint32(0x55667788))
}

func TestVRAMMirroring(t *testing.T) {
	mem := prepare(t)

	// the upper 32 KiB mirrors into the lower half of the second 64 KiB
	mem.WriteHalf(0x06010000, 0xCAFE)
	test.ExpectEquality(t, mem.ReadHalf(0x06018000), uint16(0xCAFE))

	// and the whole region repeats every 128 KiB
	test.ExpectEquality(t, mem.ReadHalf(0x06030000), uint16(0xCAFE))
}

func TestMisalignedWordLoadRotates(t *testing.T) {
	mem := prepare(t)

	mem.WriteWord(0x03000020, 0xDEADBEEF)
	test.ExpectEquality(t, mem.ReadWord(0x03000020), uint32(0xDEADBEEF))
	test.ExpectEquality(t, mem.ReadWord(0x03000021), uint32(0xEFDEADBE))
	test.ExpectEquality(t, mem.ReadWord(0x03000023), uint32(0xADBEEFDE))
}

func TestWriteThenAlignedReadRoundTrip(t *testing.T) {
	mem := prepare(t)

	mem.WriteByte(0x02000005, 0x7E)
	test.ExpectEquality(t, mem.ReadByte(0x02000005), uint8(0x7E))

	mem.WriteHalf(0x02000006, 0x1357)
	test.ExpectEquality(t, mem.ReadHalf(0x02000006), uint16(0x1357))

	mem.WriteWord(0x02000008, 0x02468ACE)
	test.ExpectEquality(t, mem.ReadWord(0x02000008), uint32(0x02468ACE))
}

func TestOpenBus(t *testing.T) {
	mem := prepare(t)

	// seed the bus with a known value then read an unmapped address
	mem.WriteWord(0x02000000, 0xABCD1234)
	test.ExpectEquality(t, mem.ReadWord(0x01000000), uint32(0xABCD1234))
	test.ExpectEquality(t, mem.ReadHalf(0x01000000), uint16(0x1234))
}

func TestROMOpenBusPattern(t *testing.T) {
	mem := prepare(t)

	// a ROM a little over 4 KiB rounds up to 8 KiB; reads between the real
	// size and the rounded size return the address pattern
	rom := make([]byte, 0x1100)
	cart, err := cartridge.NewCartridge(nil, rom, cartridge.BackupNone, false)
	test.ExpectSuccess(t, err)
	mem.AttachCartridge(cart)

	test.ExpectEquality(t, mem.ReadHalf(0x08001800), uint16((0x08001800>>1)&0xFFFF))
	test.ExpectEquality(t, mem.ReadHalf(0x08001802), uint16((0x08001802>>1)&0xFFFF))
}

func TestFirmwareReadGating(t *testing.T) {
	fw := make([]byte, cartridgeloader.FirmwareSize)
	fw[0x100] = 0x11
	fw[0x101] = 0x22
	fw[0x102] = 0x33
	fw[0x103] = 0x44
	mem := memory.NewMemory(nil, fw)

	// reads with the PC inside firmware see the real data and update the
	// latch
	mem.SetExecutingPC(0x00000100, false)
	test.ExpectEquality(t, mem.ReadWord(0x00000100), uint32(0x44332211))

	// reads with the PC outside firmware return the latch
	mem.SetExecutingPC(0x08000000, false)
	test.ExpectEquality(t, mem.ReadWord(0x00000000), uint32(0x44332211))
}
