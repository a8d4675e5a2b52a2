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

package cartridgeloader

import "bytes"

// Backup marker strings. The backup libraries embed a version string in the
// ROM's read-only data; the first marker found decides the backup kind.
const (
	MarkerEEPROM   = "EEPROM_V"
	MarkerFlash    = "FLASH_V"
	MarkerFlash512 = "FLASH512_V"
	MarkerFlash1M  = "FLASH1M_V"
	MarkerSRAM    = "SRAM_V"
	MarkerSRAMF   = "SRAM_F_V"
	MarkerRTC     = "SIIRTC_V"
)

// the order markers are checked in. the more specific flash markers come
// before the generic one
var backupMarkers = [...]string{
	MarkerEEPROM,
	MarkerFlash1M,
	MarkerFlash512,
	MarkerFlash,
	MarkerSRAMF,
	MarkerSRAM,
}

// fingerprintBackup scans the ROM for the backup library markers. The
// returned string is the matched marker, empty if none; the boolean result
// indicates the presence of the RTC library.
func fingerprintBackup(data []byte) (string, bool) {
	backup := ""
	for _, m := range backupMarkers {
		if bytes.Contains(data, []byte(m)) {
			backup = m
			break
		}
	}

	return backup, bytes.Contains(data, []byte(MarkerRTC))
}
