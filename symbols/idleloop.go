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

package symbols

// idleLoops maps the SHA1 hash of a ROM to the address of a busy-wait loop
// known to spin on VBlank. When the program counter sits at one of these
// addresses with no unhandled VBlank interrupt, the scheduler can halt the
// CPU until the next interrupt edge instead of executing the loop.
//
// The table is deliberately small: entries are added by hand as ROMs are
// profiled.
var idleLoops = map[string]uint32{}

// IdleLoop returns the known idle-loop address for the ROM identified by the
// SHA1 hash, if one has been recorded.
func IdleLoop(romHashSHA1 string) (uint32, bool) {
	a, ok := idleLoops[romHashSHA1]
	return a, ok
}

// AddIdleLoop records an idle-loop address for the ROM identified by the
// SHA1 hash.
func AddIdleLoop(romHashSHA1 string, addr uint32) {
	idleLoops[romHashSHA1] = addr
}
