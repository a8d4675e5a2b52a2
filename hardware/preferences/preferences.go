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

// Package preferences holds the runtime toggles of the emulation: the
// diagnostic logging flag, random state on reset and the idle-loop
// optimisation. Values persist to the preferences file between sessions.
package preferences

import (
	"github.com/jetsetilly/pocketcore/prefs"
	"github.com/jetsetilly/pocketcore/resources"
)

// Preferences for the emulation hardware.
type Preferences struct {
	dsk *prefs.Disk

	// log memory accesses that would be silently tolerated on real hardware:
	// open-bus reads, writes to read-only regions, malformed backup command
	// sequences. does not change emulation semantics
	Diagnostics prefs.Bool

	// seed registers and RAM with random values on reset rather than zero
	RandomState prefs.Bool

	// halt the CPU when the program counter sits at a known idle loop
	IdleLoops prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath("preferences")
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("hardware.diagnostics", &p.Diagnostics); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.randomState", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.idleLoops", &p.IdleLoops); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults revers all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Diagnostics.Set(false)
	p.RandomState.Set(false)
	p.IdleLoops.Set(true)
}

// Load current preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
