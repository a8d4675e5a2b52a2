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

// Package memory is the aggregate memory bus: region decode through the
// memorymap package, width and mirroring policy per region, open-bus
// modelling and routing to the I/O register file and the cartridge.
package memory

import (
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/bits"
	"github.com/jetsetilly/pocketcore/hardware/memory/cartridge"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
	"github.com/jetsetilly/pocketcore/hardware/memory/memorymap"
	"github.com/jetsetilly/pocketcore/logger"
)

// the boundary between the BG and OBJ areas of video RAM. 8-bit writes
// below the boundary are widened; at or above it they are dropped
const vramOBJBase = 0x10000

// Memory is the console's memory bus. It implements the bus.Bus interface
// consumed by the CPU and DMA engine.
type Memory struct {
	env *environment.Environment

	IO   *ioregs.Registers
	Cart *cartridge.Cartridge

	firmware [memorymap.FirmwareSize]byte
	ewram    [memorymap.ExternalWRAMSize]byte
	iwram    [memorymap.InternalWRAMSize]byte
	palette  [memorymap.PaletteRAMSize]byte
	vram     [memorymap.VRAMSize]byte
	oam      [memorymap.OAMSize]byte

	// the last value on the internal bus, returned for reads of unmapped
	// addresses
	openBus uint32

	// the last word fetched from firmware while the PC was inside it.
	// firmware reads from outside return this latch
	firmwareLatch uint32
	pcInFirmware  bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The firmware argument must be exactly FirmwareSize bytes; the loader
// guarantees this.
func NewMemory(env *environment.Environment, firmware []byte) *Memory {
	mem := &Memory{
		env: env,
		IO:  ioregs.NewRegisters(),
	}
	copy(mem.firmware[:], firmware)
	return mem
}

// AttachCartridge inserts the cartridge into the bus.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	mem.Cart = cart
}

// Reset the bus. RAM contents are cleared (or randomised when the
// preference is enabled); the cartridge and its backup memory are
// untouched.
func (mem *Memory) Reset() {
	randomise := mem.env != nil && mem.env.Prefs.RandomState.Get().(bool)

	clear := func(a []byte) {
		for i := range a {
			if randomise {
				a[i] = byte(mem.env.Random.NoRewind(256))
			} else {
				a[i] = 0
			}
		}
	}

	clear(mem.ewram[:])
	clear(mem.iwram[:])
	clear(mem.palette[:])
	clear(mem.vram[:])
	clear(mem.oam[:])
	mem.openBus = 0
	mem.firmwareLatch = 0
}

// VRAM returns the video RAM arrays for the video pipeline to read
// directly while compositing.
func (mem *Memory) VRAM() (palette *[memorymap.PaletteRAMSize]byte, vram *[memorymap.VRAMSize]byte, oam *[memorymap.OAMSize]byte) {
	return &mem.palette, &mem.vram, &mem.oam
}

// SetExecutingPC tells the bus where the CPU is currently fetching from.
// Implements the bus.Bus interface.
func (mem *Memory) SetExecutingPC(addr uint32, _ bool) {
	mem.pcInFirmware = addr < memorymap.FirmwareSize
}

func le16(a []byte, off uint32) uint16 {
	return uint16(a[off]) | uint16(a[off+1])<<8
}

func le32(a []byte, off uint32) uint32 {
	return uint32(a[off]) | uint32(a[off+1])<<8 | uint32(a[off+2])<<16 | uint32(a[off+3])<<24
}

func store16(a []byte, off uint32, v uint16) {
	a[off] = byte(v)
	a[off+1] = byte(v >> 8)
}

func store32(a []byte, off uint32, v uint32) {
	a[off] = byte(v)
	a[off+1] = byte(v >> 8)
	a[off+2] = byte(v >> 16)
	a[off+3] = byte(v >> 24)
}

func (mem *Memory) diagnostic(detail string, addr uint32) {
	if mem.env != nil && mem.env.Prefs.Diagnostics.Get().(bool) {
		logger.Logf(mem.env, "memory", "%s (%08x)", detail, addr)
	}
}

// ReadWord implements the bus.Bus interface. The value is rotated per the
// low address bits, reflecting how the processor sees misaligned word
// loads.
func (mem *Memory) ReadWord(addr uint32) uint32 {
	v := mem.readWordAligned(addr &^ 3)
	return bits.RotateRight32(v, uint(8*(addr&3)))
}

func (mem *Memory) readWordAligned(addr uint32) uint32 {
	region, off := memorymap.Decode(addr)

	var v uint32
	switch region {
	case memorymap.Firmware:
		if mem.pcInFirmware {
			v = le32(mem.firmware[:], off&^3)
			mem.firmwareLatch = v
		} else {
			mem.diagnostic("firmware read from outside firmware", addr)
			v = mem.firmwareLatch
		}
	case memorymap.ExternalWRAM:
		v = le32(mem.ewram[:], off&^3)
	case memorymap.InternalWRAM:
		v = le32(mem.iwram[:], off&^3)
	case memorymap.IORegisters:
		if off < 0x400 {
			v = mem.IO.ReadWord(off)
		} else {
			mem.diagnostic("unmapped I/O read", addr)
			v = mem.openBus
		}
	case memorymap.PaletteRAM:
		v = le32(mem.palette[:], off&^3)
	case memorymap.VRAM:
		v = le32(mem.vram[:], off&^3)
	case memorymap.OAM:
		v = le32(mem.oam[:], off&^3)
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			v = mem.Cart.ReadROMWord(addr)
		} else {
			v = mem.openBus
		}
	case memorymap.CartridgeBackup:
		var b uint8
		var ok bool
		if mem.Cart != nil {
			b, ok = mem.Cart.ReadBackup(addr)
		}
		if ok {
			v = uint32(b) * 0x01010101
		} else {
			v = mem.openBus
		}
	default:
		mem.diagnostic("unmapped read", addr)
		v = mem.openBus
	}

	mem.openBus = v
	return v
}

// ReadHalf implements the bus.Bus interface.
func (mem *Memory) ReadHalf(addr uint32) uint16 {
	addr &^= 1
	region, off := memorymap.Decode(addr)

	var v uint16
	switch region {
	case memorymap.Firmware:
		if mem.pcInFirmware {
			v = le16(mem.firmware[:], off)
			mem.firmwareLatch = uint32(v) | uint32(v)<<16
		} else {
			mem.diagnostic("firmware read from outside firmware", addr)
			v = uint16(mem.firmwareLatch)
		}
	case memorymap.ExternalWRAM:
		v = le16(mem.ewram[:], off)
	case memorymap.InternalWRAM:
		v = le16(mem.iwram[:], off)
	case memorymap.IORegisters:
		if off < 0x400 {
			v = mem.IO.ReadHalf(off)
		} else {
			mem.diagnostic("unmapped I/O read", addr)
			v = uint16(mem.openBus)
		}
	case memorymap.PaletteRAM:
		v = le16(mem.palette[:], off)
	case memorymap.VRAM:
		v = le16(mem.vram[:], off)
	case memorymap.OAM:
		v = le16(mem.oam[:], off)
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			v = mem.Cart.ReadROMHalf(addr)
		} else {
			v = uint16(mem.openBus)
		}
	case memorymap.CartridgeBackup:
		var b uint8
		var ok bool
		if mem.Cart != nil {
			b, ok = mem.Cart.ReadBackup(addr)
		}
		if ok {
			v = uint16(b) * 0x0101
		} else {
			v = uint16(mem.openBus)
		}
	default:
		mem.diagnostic("unmapped read", addr)
		v = uint16(mem.openBus)
	}

	mem.openBus = uint32(v) | uint32(v)<<16
	return v
}

// ReadByte implements the bus.Bus interface.
func (mem *Memory) ReadByte(addr uint32) uint8 {
	region, off := memorymap.Decode(addr)

	var v uint8
	switch region {
	case memorymap.Firmware:
		if mem.pcInFirmware {
			v = mem.firmware[off]
			mem.firmwareLatch = uint32(v) * 0x01010101
		} else {
			mem.diagnostic("firmware read from outside firmware", addr)
			v = uint8(mem.firmwareLatch)
		}
	case memorymap.ExternalWRAM:
		v = mem.ewram[off]
	case memorymap.InternalWRAM:
		v = mem.iwram[off]
	case memorymap.IORegisters:
		if off < 0x400 {
			v = mem.IO.ReadByte(off)
		} else {
			mem.diagnostic("unmapped I/O read", addr)
			v = uint8(mem.openBus)
		}
	case memorymap.PaletteRAM:
		v = mem.palette[off]
	case memorymap.VRAM:
		v = mem.vram[off]
	case memorymap.OAM:
		v = mem.oam[off]
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			v = mem.Cart.ReadROMByte(addr)
		} else {
			v = uint8(mem.openBus)
		}
	case memorymap.CartridgeBackup:
		var ok bool
		if mem.Cart != nil {
			v, ok = mem.Cart.ReadBackup(addr)
		}
		if !ok {
			v = uint8(mem.openBus)
		}
	default:
		mem.diagnostic("unmapped read", addr)
		v = uint8(mem.openBus)
	}

	mem.openBus = uint32(v) * 0x01010101
	return v
}

// WriteWord implements the bus.Bus interface.
func (mem *Memory) WriteWord(addr uint32, v uint32) {
	addr &^= 3
	region, off := memorymap.Decode(addr)
	mem.openBus = v

	switch region {
	case memorymap.Firmware:
		mem.diagnostic("write to firmware", addr)
	case memorymap.ExternalWRAM:
		store32(mem.ewram[:], off, v)
	case memorymap.InternalWRAM:
		store32(mem.iwram[:], off, v)
	case memorymap.IORegisters:
		if off < 0x400 {
			mem.IO.WriteWord(off, v)
		} else {
			mem.diagnostic("unmapped I/O write", addr)
		}
	case memorymap.PaletteRAM:
		store32(mem.palette[:], off, v)
	case memorymap.VRAM:
		store32(mem.vram[:], off, v)
	case memorymap.OAM:
		store32(mem.oam[:], off, v)
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			mem.Cart.WriteROMHalf(addr, uint16(v))
			mem.Cart.WriteROMHalf(addr+2, uint16(v>>16))
		}
	case memorymap.CartridgeBackup:
		if mem.Cart != nil {
			mem.Cart.WriteBackup(addr, uint8(v))
		}
	default:
		mem.diagnostic("unmapped write", addr)
	}
}

// WriteHalf implements the bus.Bus interface.
func (mem *Memory) WriteHalf(addr uint32, v uint16) {
	addr &^= 1
	region, off := memorymap.Decode(addr)
	mem.openBus = uint32(v) | uint32(v)<<16

	switch region {
	case memorymap.Firmware:
		mem.diagnostic("write to firmware", addr)
	case memorymap.ExternalWRAM:
		store16(mem.ewram[:], off, v)
	case memorymap.InternalWRAM:
		store16(mem.iwram[:], off, v)
	case memorymap.IORegisters:
		if off < 0x400 {
			mem.IO.WriteHalf(off, v)
		} else {
			mem.diagnostic("unmapped I/O write", addr)
		}
	case memorymap.PaletteRAM:
		store16(mem.palette[:], off, v)
	case memorymap.VRAM:
		store16(mem.vram[:], off, v)
	case memorymap.OAM:
		store16(mem.oam[:], off, v)
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			mem.Cart.WriteROMHalf(addr, v)
		}
	case memorymap.CartridgeBackup:
		if mem.Cart != nil {
			mem.Cart.WriteBackup(addr, uint8(v))
		}
	default:
		mem.diagnostic("unmapped write", addr)
	}
}

// WriteByte implements the bus.Bus interface. Byte writes to palette RAM
// and the BG area of video RAM are widened: the byte is duplicated into the
// halfword containing the address. Byte writes to the OBJ area of video RAM
// and to object attribute RAM are dropped.
func (mem *Memory) WriteByte(addr uint32, v uint8) {
	region, off := memorymap.Decode(addr)
	mem.openBus = uint32(v) * 0x01010101

	switch region {
	case memorymap.Firmware:
		mem.diagnostic("write to firmware", addr)
	case memorymap.ExternalWRAM:
		mem.ewram[off] = v
	case memorymap.InternalWRAM:
		mem.iwram[off] = v
	case memorymap.IORegisters:
		if off < 0x400 {
			mem.IO.WriteByte(off, v)
		} else {
			mem.diagnostic("unmapped I/O write", addr)
		}
	case memorymap.PaletteRAM:
		store16(mem.palette[:], off&^1, uint16(v)|uint16(v)<<8)
	case memorymap.VRAM:
		if off < vramOBJBase {
			store16(mem.vram[:], off&^1, uint16(v)|uint16(v)<<8)
		} else {
			mem.diagnostic("byte write to OBJ video RAM dropped", addr)
		}
	case memorymap.OAM:
		mem.diagnostic("byte write to object attribute RAM dropped", addr)
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			mem.Cart.WriteROMHalf(addr, uint16(v))
		}
	case memorymap.CartridgeBackup:
		if mem.Cart != nil {
			mem.Cart.WriteBackup(addr, v)
		}
	default:
		mem.diagnostic("unmapped write", addr)
	}
}

// PeekByte reads a byte without disturbing the open-bus latch or the
// firmware gate. Implements the bus.DebuggerBus interface.
func (mem *Memory) PeekByte(addr uint32) uint8 {
	region, off := memorymap.Decode(addr)
	switch region {
	case memorymap.Firmware:
		return mem.firmware[off]
	case memorymap.ExternalWRAM:
		return mem.ewram[off]
	case memorymap.InternalWRAM:
		return mem.iwram[off]
	case memorymap.IORegisters:
		if off < 0x400 {
			return mem.IO.ReadByte(off)
		}
	case memorymap.PaletteRAM:
		return mem.palette[off]
	case memorymap.VRAM:
		return mem.vram[off]
	case memorymap.OAM:
		return mem.oam[off]
	case memorymap.CartridgeROM:
		if mem.Cart != nil {
			return mem.Cart.ReadROMByte(addr)
		}
	case memorymap.CartridgeBackup:
		if mem.Cart != nil {
			if v, ok := mem.Cart.ReadBackup(addr); ok {
				return v
			}
		}
	}
	return 0
}

// PokeByte writes a byte without the write-policy machinery. Implements the
// bus.DebuggerBus interface.
func (mem *Memory) PokeByte(addr uint32, v uint8) {
	region, off := memorymap.Decode(addr)
	switch region {
	case memorymap.Firmware:
		mem.firmware[off] = v
	case memorymap.ExternalWRAM:
		mem.ewram[off] = v
	case memorymap.InternalWRAM:
		mem.iwram[off] = v
	case memorymap.PaletteRAM:
		mem.palette[off] = v
	case memorymap.VRAM:
		mem.vram[off] = v
	case memorymap.OAM:
		mem.oam[off] = v
	case memorymap.CartridgeBackup:
		if mem.Cart != nil {
			mem.Cart.WriteBackup(addr, v)
		}
	}
}
