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

// Package resources contains functions to prepare paths for resources used by
// the emulation: preference files, save files, regression databases.
//
// Resource paths are relative to a single base directory. Keeping the base
// relative to the working directory means the emulation is "portable": moving
// the executable moves every resource with it.
package resources

import (
	"os"
	"path/filepath"
)

// the directory that hosts every resource file
const baseDir = ".pocketcore"

// JoinPath prepares a path from the list of subdirectories (the last entry
// being the file part of the path, where appropriate). Empty entries are
// skipped.
//
// The returned path begins with the resource base directory and is relative
// to the working directory. The path is not created by this function; use
// CreatePath for that.
func JoinPath(path ...string) (string, error) {
	p := []string{baseDir}
	for _, e := range path {
		if e != "" {
			p = append(p, e)
		}
	}
	return filepath.Join(p...), nil
}

// CreatePath is like JoinPath but makes sure every directory in the path
// exists. The final entry in the list is treated as the file part and is not
// created.
func CreatePath(path ...string) (string, error) {
	p, err := JoinPath(path...)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	return p, nil
}
