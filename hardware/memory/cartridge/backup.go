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

// BackupKind identifies the backup device behind the cartridge's backup
// aperture.
type BackupKind int

// List of valid BackupKind values.
const (
	BackupNone BackupKind = iota
	BackupEEPROM
	BackupFlash64
	BackupFlash128
	BackupSRAM
)

func (k BackupKind) String() string {
	switch k {
	case BackupEEPROM:
		return "EEPROM"
	case BackupFlash64:
		return "flash 64k"
	case BackupFlash128:
		return "flash 128k"
	case BackupSRAM:
		return "SRAM"
	default:
		return "none"
	}
}

// backup is the interface shared by the byte-addressed backup devices
// (flash and SRAM). EEPROM is not a backup in this sense: it is serially
// accessed through the ROM address space.
type backup interface {
	Read(offset uint32) uint8
	Write(offset uint32, v uint8)
	Data() []byte
	Erase()
}
