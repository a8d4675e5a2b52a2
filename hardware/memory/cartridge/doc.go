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

// Package cartridge implements the game cartridge: the ROM image with its
// power-of-two mirroring and open-bus address pattern, and the backup
// device behind it. Backup devices are EEPROM (a serial bit protocol
// tunnelled through halfword accesses in the ROM address space), two
// flash device types with their unlock/command state machines, and plain
// battery backed SRAM. A real-time clock wired to the cartridge GPIO pins
// is emulated when the ROM expects one.
//
// Which backup device a cartridge has is decided outside this package, by
// the loader's scan of the ROM for the library marker strings.
package cartridge
