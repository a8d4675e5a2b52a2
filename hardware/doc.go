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

// Package hardware is the root of the emulated console: the GBA type owns
// every component and the scheduler that drives them.
//
// The emulation is strictly single threaded and cooperative. Each call to
// GBA.Step() executes one CPU instruction (or the halt check that replaces
// it), advances the timers and video pipeline by the instruction's cycle
// cost, lets those components raise interrupt requests and trigger DMA on
// their edges, and finally re-evaluates the interrupt condition. DMA
// transfers triggered by a store to a DMA control register run to
// completion before control returns to the next CPU instruction.
package hardware
