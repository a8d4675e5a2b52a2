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

package registers

// GetUser reads general register n as the User mode bank sees it,
// regardless of the current mode. Used by block transfers with the
// user-bank bit set.
func (f *File) GetUser(n int) uint32 {
	m := f.cpsr.Mode()

	switch {
	case n >= 8 && n <= 12:
		if m == FIQ {
			return f.r8_12[0][n-8]
		}
	case n == 13:
		if bankIndex(m) != 0 {
			return f.r13[0]
		}
	case n == 14:
		if bankIndex(m) != 0 {
			return f.r14[0]
		}
	}

	return f.r[n]
}

// SetUser writes general register n in the User mode bank, regardless of
// the current mode.
func (f *File) SetUser(n int, v uint32) {
	m := f.cpsr.Mode()

	switch {
	case n >= 8 && n <= 12:
		if m == FIQ {
			f.r8_12[0][n-8] = v
			return
		}
	case n == 13:
		if bankIndex(m) != 0 {
			f.r13[0] = v
			return
		}
	case n == 14:
		if bankIndex(m) != 0 {
			f.r14[0] = v
			return
		}
	}

	f.r[n] = v
}

// SetThumb sets or clears the Thumb bit of CPSR.
func (f *File) SetThumb(t bool) {
	f.cpsr.T = t
}

// SetIRQDisable sets or clears the IRQ mask bit of CPSR.
func (f *File) SetIRQDisable(i bool) {
	f.cpsr.I = i
}

// SetFIQDisable sets or clears the FIQ mask bit of CPSR.
func (f *File) SetFIQDisable(fiq bool) {
	f.cpsr.F = fiq
}
