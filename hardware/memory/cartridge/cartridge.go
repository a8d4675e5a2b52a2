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
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/memory/memorymap"
	"github.com/jetsetilly/pocketcore/logger"
)

// number of recently fetched ROM pages kept for the diagnostic trace
const pageTraceSize = 256

// Cartridge is the inserted game cartridge: the ROM itself, the backup
// device behind it and (when fitted) the real-time clock wired to the GPIO
// pins in the ROM address space.
type Cartridge struct {
	env *environment.Environment

	// rom data, padded up to the next power of two. size is the real size
	// of the loaded image
	rom  []byte
	size uint32
	mask uint32

	backup backup
	eeprom *EEPROM

	gpio *GPIO

	// dmaActive reports whether any DMA channel is mid-transfer. SRAM reads
	// during DMA return zero
	dmaActive func() bool

	// recently fetched ROM pages, kept only when diagnostics are enabled
	pageTrace *lru.Cache[uint32, bool]
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The backup kind is one of the Backup* constants, decided by the
// loader's marker scan.
func NewCartridge(env *environment.Environment, data []byte, kind BackupKind, hasRTC bool) (*Cartridge, error) {
	cart := &Cartridge{
		env:  env,
		size: uint32(len(data)),
	}

	// round the ROM up to the next power of two. reads between the real
	// size and the rounded size return the open-bus address pattern
	p2 := uint32(1)
	for p2 < cart.size {
		p2 <<= 1
	}
	cart.rom = make([]byte, p2)
	copy(cart.rom, data)
	cart.mask = p2 - 1

	switch kind {
	case BackupEEPROM:
		cart.eeprom = NewEEPROM(env)
	case BackupFlash64, BackupFlash128:
		cart.backup = NewFlash(env, kind)
	case BackupSRAM:
		cart.backup = NewSRAM(env, func() bool {
			return cart.dmaActive != nil && cart.dmaActive()
		})
	case BackupNone:
		// nothing behind the backup aperture; reads return open bus
	}

	if hasRTC {
		cart.gpio = NewGPIO(env)
	}

	var err error
	cart.pageTrace, err = lru.New[uint32, bool](pageTraceSize)
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// SetDMAActive supplies the function used to decide whether a DMA transfer
// is in flight, which gates SRAM reads.
func (cart *Cartridge) SetDMAActive(f func() bool) {
	cart.dmaActive = f
}

// EEPROM returns the EEPROM device, or nil if the cartridge has a different
// backup kind. The DMA engine uses this for address-width auto-detection.
func (cart *Cartridge) EEPROM() *EEPROM {
	return cart.eeprom
}

// HasRTC returns true if the cartridge has a real-time clock fitted.
func (cart *Cartridge) HasRTC() bool {
	return cart.gpio != nil
}

// inEEPROMBand returns true if the ROM-space address falls in the EEPROM
// serial aperture: the top page of the 0x0D region for large ROMs, the
// whole region for small ROMs.
func (cart *Cartridge) inEEPROMBand(addr uint32) bool {
	if cart.eeprom == nil || addr < memorymap.EEPROMSmallROMBase {
		return false
	}
	if cart.size >= memorymap.EEPROMLargeROMThresh {
		return addr >= 0x0DFFFF00
	}
	return true
}

// openBusPattern is the value read from ROM addresses beyond the real image
// size: the halfword address pattern of the bus itself.
func openBusPattern(addr uint32) uint16 {
	return uint16(addr >> 1)
}

func (cart *Cartridge) trace(addr uint32) {
	if cart.env != nil && cart.env.Prefs.Diagnostics.Get().(bool) {
		cart.pageTrace.Add(addr>>12, true)
	}
}

// PageTrace returns the recently fetched ROM pages recorded while
// diagnostics were enabled, oldest first.
func (cart *Cartridge) PageTrace() []uint32 {
	return cart.pageTrace.Keys()
}

// ReadROMHalf reads a halfword from the ROM address space. The addr
// argument is the full bus address (0x08000000 and up).
func (cart *Cartridge) ReadROMHalf(addr uint32) uint16 {
	if cart.inEEPROMBand(addr) {
		return cart.eeprom.ReadBit()
	}

	if cart.gpio != nil {
		if v, ok := cart.gpio.Read(addr); ok {
			return v
		}
	}

	offset := (addr - memorymap.CartridgeROMBase) & cart.mask
	if offset >= cart.size {
		return openBusPattern(addr)
	}

	cart.trace(offset)
	offset &^= 1
	return uint16(cart.rom[offset]) | uint16(cart.rom[offset+1])<<8
}

// ReadROMByte reads a byte from the ROM address space.
func (cart *Cartridge) ReadROMByte(addr uint32) uint8 {
	v := cart.ReadROMHalf(addr)
	if addr&1 != 0 {
		return uint8(v >> 8)
	}
	return uint8(v)
}

// ReadROMWord reads an aligned word from the ROM address space.
func (cart *Cartridge) ReadROMWord(addr uint32) uint32 {
	addr &^= 3
	return uint32(cart.ReadROMHalf(addr)) | uint32(cart.ReadROMHalf(addr+2))<<16
}

// WriteROMHalf handles a halfword write to the ROM address space. The ROM
// itself is read-only; writes only reach the EEPROM serial aperture and the
// GPIO pins.
func (cart *Cartridge) WriteROMHalf(addr uint32, v uint16) {
	if cart.inEEPROMBand(addr) {
		cart.eeprom.WriteBit(v)
		return
	}

	if cart.gpio != nil && cart.gpio.Write(addr, v) {
		return
	}

	if cart.env != nil && cart.env.Prefs.Diagnostics.Get().(bool) {
		logger.Logf(cart.env, "cartridge", "write to read-only ROM address %08x", addr)
	}
}

// ReadBackup reads a byte from the backup aperture (0x0E000000 and up).
// The return value is false if nothing is fitted there and the read should
// fall through to open bus.
func (cart *Cartridge) ReadBackup(addr uint32) (uint8, bool) {
	if cart.backup == nil {
		return 0, false
	}
	return cart.backup.Read(addr - memorymap.CartridgeBackupBase), true
}

// WriteBackup writes a byte to the backup aperture.
func (cart *Cartridge) WriteBackup(addr uint32, v uint8) {
	if cart.backup == nil {
		return
	}
	cart.backup.Write(addr-memorymap.CartridgeBackupBase, v)
}

// BackupData returns the raw backup memory, for writing to the save file.
// The second return value is false when the cartridge has no backup memory.
func (cart *Cartridge) BackupData() ([]byte, bool) {
	if cart.eeprom != nil {
		return cart.eeprom.Data(), true
	}
	if cart.backup != nil {
		return cart.backup.Data(), true
	}
	return nil, false
}

// LoadBackupData restores backup memory from a save file.
func (cart *Cartridge) LoadBackupData(data []byte) {
	if cart.eeprom != nil {
		copy(cart.eeprom.Data(), data)
		return
	}
	if cart.backup != nil {
		copy(cart.backup.Data(), data)
	}
}

// EraseBackup clears backup memory to its erased state: 0xFF for flash,
// zero for SRAM and EEPROM.
func (cart *Cartridge) EraseBackup() {
	if cart.eeprom != nil {
		cart.eeprom.Erase()
		return
	}
	if cart.backup != nil {
		cart.backup.Erase()
	}
}
