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

// Package emulation defines the public interface between the core emulation
// and whatever is driving it (a GUI, a headless performance run, a
// regression test). It exists mainly to avoid circular imports between the
// hardware package and its many consumers.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states.
const (
	Initialising State = iota
	Running
	Paused
	Stepping
	Ending
)

// TV is a minimal abstraction of the video pipeline. The only likely
// implementation of this interface is the video.Video type.
type TV interface {
}

// Console is a minimal abstraction of the console hardware. The only likely
// implementation of this interface is the hardware.GBA type.
type Console interface {
}

// Emulation defines the public functions required of an emulation for a
// driver implementation to interface with it.
type Emulation interface {
	TV() TV
	Console() Console
	State() State
	Pause(set bool)
}

// Event describes an event that might occur in the emulation which is
// outside of the scope of the console hardware. For example, when the
// emulation is paused an EventPause can be sent to the driver.
type Event int

// List of currently defined events.
const (
	EventPause Event = iota
	EventRun
)
