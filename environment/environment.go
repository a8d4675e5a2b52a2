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

// Package environment provides context for an emulation instance. Every
// hardware component receives the environment of the console it belongs to;
// the environment answers the cross-cutting questions (may I log? what are
// the current preferences? where does randomness come from?) without the
// component needing to know which of several running emulations it is part
// of.
package environment

import (
	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/hardware/preferences"
	"github.com/jetsetilly/pocketcore/hardware/video/coords"
	"github.com/jetsetilly/pocketcore/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation. Secondary
// emulations (previews, thumbnailers, regression runs) use their own labels.
const MainEmulation = Label("main")

// Television is the interface the environment requires of the video
// pipeline. It exists so that the random package can be seeded from the
// video coordinates without this package importing the video package.
type Television interface {
	GetCoords() coords.Coords
}

// Environment is used to provide context for an emulation.
type Environment struct {
	// label distinguishes between different types of emulation (thumbnailer, etc.)
	Label Label

	// the video pipeline attached to the console
	TV Television

	// the emulation preferences
	Prefs *preferences.Preferences

	// any randomisation required by the emulation should be retrieved
	// through this structure
	Random *random.Random

	// current cartridge loader
	Loader cartridgeloader.Loader
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The tv argument can be nil during construction of the console, in which
// case AttachTelevision must be called before randomisation is used. The
// prefs argument can be nil, in which case a new instance of the system
// wide preferences is created.
func NewEnvironment(label Label, tv Television, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}

	if tv != nil {
		env.AttachTelevision(tv)
	}

	if prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return env, nil
}

// AttachTelevision supplies the video pipeline the environment's
// randomisation is seeded from.
func (env *Environment) AttachTelevision(tv Television) {
	env.TV = tv
	env.Random = random.NewRandom(tv)
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging returns true if environment is permitted to create new log
// entries. A nil environment, as used by unit tests that build a component
// in isolation, is never permitted.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return false
	}
	return env.IsEmulation(MainEmulation)
}
