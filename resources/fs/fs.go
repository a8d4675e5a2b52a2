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

// Package fs is a thin wrapper around the small number of filesystem
// functions used by the loader packages. It exists so that filesystem
// behaviour is consistent wherever a path crosses a package boundary.
package fs

import (
	"os"
	"path/filepath"
)

// Abs returns an absolute representation of path.
func Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Exists returns true if the path exists, whatever kind of file it is.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the named file and returns its contents.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
