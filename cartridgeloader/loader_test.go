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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/test"
)

func TestBackupFingerprint(t *testing.T) {
	rom := make([]byte, 0x1000)
	copy(rom[0x400:], []byte("FLASH1M_V103"))

	ld, err := cartridgeloader.NewLoaderFromData("test", rom)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Backup, cartridgeloader.MarkerFlash1M)
	test.ExpectFailure(t, ld.HasRTC)
}

func TestRTCFingerprint(t *testing.T) {
	rom := make([]byte, 0x1000)
	copy(rom[0x200:], []byte("EEPROM_V124"))
	copy(rom[0x300:], []byte("SIIRTC_V001"))

	ld, err := cartridgeloader.NewLoaderFromData("test", rom)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Backup, cartridgeloader.MarkerEEPROM)
	test.ExpectSuccess(t, ld.HasRTC)
}

func TestNoBackupMarker(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("test", make([]byte, 0x100))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Backup, "")
}

func TestSaveFilePath(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.gba")

	rom := make([]byte, 0x100)
	if err := os.WriteFile(romPath, rom, 0o644); err != nil {
		t.Fatalf("error writing ROM file: %v", err)
	}

	ld, err := cartridgeloader.NewLoaderFromFilename(romPath)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Name, "game")
	test.ExpectEquality(t, ld.SaveFilePath(), filepath.Join(dir, "game.sav"))

	// no save file yet: nil data without error
	data, err := ld.ReadSaveFile()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, data == nil)

	// round trip
	err = ld.WriteSaveFile([]byte{1, 2, 3})
	test.ExpectSuccess(t, err)
	data, err = ld.ReadSaveFile()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 3)
}

func TestLoaderErrors(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromFilename("")
	test.ExpectFailure(t, err)

	_, err = cartridgeloader.NewLoaderFromData("", []byte{1})
	test.ExpectFailure(t, err)

	_, err = cartridgeloader.NewLoaderFromData("test", nil)
	test.ExpectFailure(t, err)
}

func TestFirmwareSizeCheck(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, make([]byte, 100), 0o644); err != nil {
		t.Fatalf("error writing firmware file: %v", err)
	}
	_, err := cartridgeloader.LoadFirmware(short)
	test.ExpectFailure(t, err)

	good := filepath.Join(dir, "firmware.bin")
	if err := os.WriteFile(good, make([]byte, cartridgeloader.FirmwareSize), 0o644); err != nil {
		t.Fatalf("error writing firmware file: %v", err)
	}
	fw, err := cartridgeloader.LoadFirmware(good)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(fw), cartridgeloader.FirmwareSize)

	_, err = cartridgeloader.LoadFirmware(filepath.Join(dir, "missing.bin"))
	test.ExpectFailure(t, err)
}
