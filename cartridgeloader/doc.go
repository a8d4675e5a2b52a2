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

// Package cartridgeloader loads ROM and firmware images so that they can be
// used with the hardware package.
//
// ROM images can be loaded directly (".gba", ".agb", ".bin", ".rom") or
// from inside a 7zip archive (".7z"), in which case the first entry with a
// recognised extension is used.
//
// Loading a ROM also scans it for the backup library marker strings
// ("EEPROM_V", "FLASH_V", "FLASH512_V", "FLASH1M_V", "SRAM_V", "SRAM_F_V")
// to decide which backup device the cartridge carries, and for the RTC
// marker ("SIIRTC_V"). The scan happens here rather than in the cartridge
// package because it is a property of the ROM file, not of the emulated
// hardware.
//
// A companion save file shares the ROM's path with the extension changed to
// ".sav". The save file is read into backup memory at startup and rewritten
// from it on clean shutdown.
//
// Creating a cartridge loader with NewLoaderFromFilename() or
// NewLoaderFromData() will also create a SHA1 hash of the data, used to key
// per-ROM information such as known idle-loop addresses.
package cartridgeloader
