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
	"os"

	"github.com/jetsetilly/pocketcore/errors"
)

// FirmwareSize is the required size of the firmware image.
const FirmwareSize = 16384

// LoadFirmware reads the firmware image. A missing or wrongly sized image
// is a fatal startup error.
func LoadFirmware(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Errorf(errors.FirmwareMissing, err)
	}
	if len(data) != FirmwareSize {
		return nil, errors.Errorf(errors.FirmwareBadSize, len(data), FirmwareSize)
	}
	return data, nil
}
