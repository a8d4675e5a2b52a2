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

package prefs

import (
	"bytes"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jetsetilly/pocketcore/errors"
)

// WarningBoilerPlate is the comment block written at the top of every
// preferences file.
const WarningBoilerPlate = "# pocketcore preferences file\n# this file is managed by the emulation; edit with care"

// Disk represents preference values as stored on disk. The file format is
// TOML: one string-valued entry per registered preference key.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference p to the list of values registered with the disk object,
// keyed by the key argument.
//
// If a matching preference has been supplied on the command line (see
// PushCommandLineStack) then the value is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.Errorf(errors.Prefs, "empty key")
	}
	if strings.ContainsAny(key, " \t\n=") {
		return errors.Errorf(errors.Prefs, "invalid key "+key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
	}

	return nil
}

// HasEntry returns true if the named key has been registered with Add().
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// readFile decodes the preferences file into a flat map. A missing file is
// not an error; it reads as an empty map.
func (dsk *Disk) readFile() (map[string]string, error) {
	m := make(map[string]string)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, errors.Errorf(errors.PrefsNoFile, dsk.path)
	}

	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Errorf(errors.PrefsNotValid, dsk.path)
	}

	return m, nil
}

// Save current preference values to disk. Values in the file that have not
// been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		m[k] = p.String()
	}

	b := &bytes.Buffer{}
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")

	enc := toml.NewEncoder(b)
	if err := enc.Encode(m); err != nil {
		return errors.Errorf(errors.Prefs, err)
	}

	if err := os.WriteFile(dsk.path, b.Bytes(), 0o644); err != nil {
		return errors.Errorf(errors.Prefs, err)
	}

	return nil
}

// Load preference values from disk. Registered preferences with no matching
// entry in the file are left untouched.
func (dsk *Disk) Load() error {
	m, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := m[k]; ok {
			if err := p.Set(v); err != nil {
				return errors.Errorf(errors.Prefs, err)
			}
		}
	}

	return nil
}
