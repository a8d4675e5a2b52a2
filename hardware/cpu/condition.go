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

package cpu

import "github.com/jetsetilly/pocketcore/hardware/cpu/registers"

// conditionTable maps the 4-bit (N,Z,C,V) flag tuple to a 16-bit mask with
// one bit per condition code. A condition passes iff bit cond of the mask
// for the current flag tuple is set.
var conditionTable [16]uint16

func init() {
	for flags := 0; flags < 16; flags++ {
		n := flags&0x8 != 0
		z := flags&0x4 != 0
		c := flags&0x2 != 0
		v := flags&0x1 != 0

		preds := [16]bool{
			z,            // EQ
			!z,           // NE
			c,            // CS
			!c,           // CC
			n,            // MI
			!n,           // PL
			v,            // VS
			!v,           // VC
			c && !z,      // HI
			!c || z,      // LS
			n == v,       // GE
			n != v,       // LT
			!z && n == v, // GT
			z || n != v,  // LE
			true,         // AL
			false,        // NV (reserved; never executes)
		}

		var mask uint16
		for cond, p := range preds {
			if p {
				mask |= 1 << cond
			}
		}
		conditionTable[flags] = mask
	}
}

// conditionPassed evaluates condition code cond against the current flags.
func conditionPassed(cond uint32, sr registers.Status) bool {
	flags := 0
	if sr.N {
		flags |= 0x8
	}
	if sr.Z {
		flags |= 0x4
	}
	if sr.C {
		flags |= 0x2
	}
	if sr.V {
		flags |= 0x1
	}
	return conditionTable[flags]&(1<<cond) != 0
}
