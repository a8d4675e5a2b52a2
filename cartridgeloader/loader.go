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

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bodgit/sevenzip"

	"github.com/jetsetilly/pocketcore/errors"
	"github.com/jetsetilly/pocketcore/resources/fs"
)

// the largest ROM image the loader will accept
const MaxROMSize = 32 * 1024 * 1024

// Loader abstracts all the ways ROM data can be loaded into the emulation.
type Loader struct {
	// the name to use for the cartridge represented by Loader
	Name string

	// filename of the ROM being loaded. in the case of embedded data this
	// is the name given to NewLoaderFromData()
	Filename string

	// the ROM image
	Data []byte

	// SHA1 hash of the loaded data
	HashSHA1 string

	// the backup library marker found in the ROM, empty if none
	Backup string

	// whether the RTC library marker was found in the ROM
	HasRTC bool

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a file.
//
// Archive files are opened and searched for the first entry with a
// recognised ROM extension.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, errors.Errorf(errors.LoaderError, "no filename")
	}

	filename, err := fs.Abs(filename)
	if err != nil {
		return Loader{}, errors.Errorf(errors.LoaderError, err)
	}

	ld := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(filepath.Ext(filename))
	if slices.Contains(ArchiveExtensions[:], ext) {
		ld.Data, err = readArchive(filename)
	} else {
		ld.Data, err = os.ReadFile(filename)
		if err != nil {
			err = errors.Errorf(errors.LoaderFileError, err)
		}
	}
	if err != nil {
		return Loader{}, err
	}

	if len(ld.Data) == 0 || len(ld.Data) > MaxROMSize {
		return Loader{}, errors.Errorf(errors.LoaderError, fmt.Sprintf("ROM size %d is out of range", len(ld.Data)))
	}

	ld.HashSHA1 = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	ld.Backup, ld.HasRTC = fingerprintBackup(ld.Data)
	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when loading data from a byte array. It's a great way of
// loading embedded data (using go:embed) into the emulator.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, errors.Errorf(errors.LoaderError, "embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, errors.Errorf(errors.LoaderError, "no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Data:     data,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		embedded: true,
	}
	ld.Backup, ld.HasRTC = fingerprintBackup(data)
	ld.Name = decideOnName(ld)

	return ld, nil
}

// readArchive opens a 7zip archive and returns the contents of the first
// entry with a recognised ROM extension.
func readArchive(filename string) ([]byte, error) {
	arch, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, errors.Errorf(errors.ArchiveError, err)
	}
	defer arch.Close()

	for _, f := range arch.File {
		ext := strings.ToUpper(filepath.Ext(f.Name))
		if !slices.Contains(FileExtensions[:], ext) {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, errors.Errorf(errors.ArchiveError, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Errorf(errors.ArchiveError, err)
		}
		return data, nil
	}

	return nil, errors.Errorf(errors.ArchiveError, "no ROM found in archive")
}

// SaveFilePath returns the path of the companion save file: the ROM's path
// with the extension changed to ".sav".
func (ld Loader) SaveFilePath() string {
	if ld.embedded {
		return ""
	}
	ext := filepath.Ext(ld.Filename)
	return strings.TrimSuffix(ld.Filename, ext) + SaveFileExtension
}

// SymbolsFilePath returns the path of the companion symbols file: the
// ROM's path with the extension changed to ".sym". The file is optional.
func (ld Loader) SymbolsFilePath() string {
	if ld.embedded {
		return ""
	}
	ext := filepath.Ext(ld.Filename)
	return strings.TrimSuffix(ld.Filename, ext) + ".sym"
}

// ReadSaveFile returns the contents of the companion save file. A missing
// save file is not an error; it returns nil data.
func (ld Loader) ReadSaveFile() ([]byte, error) {
	pth := ld.SaveFilePath()
	if pth == "" || !fs.Exists(pth) {
		return nil, nil
	}

	data, err := fs.ReadFile(pth)
	if err != nil {
		return nil, errors.Errorf(errors.SaveFileError, err)
	}
	return data, nil
}

// WriteSaveFile rewrites the companion save file from backup memory.
func (ld Loader) WriteSaveFile(data []byte) error {
	pth := ld.SaveFilePath()
	if pth == "" {
		return nil
	}

	if err := fs.WriteFile(pth, data); err != nil {
		return errors.Errorf(errors.SaveFileError, err)
	}
	return nil
}
