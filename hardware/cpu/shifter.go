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

import "github.com/jetsetilly/pocketcore/hardware/bits"

// the four barrel shifter operations
const (
	shiftLSL = iota
	shiftLSR
	shiftASR
	shiftROR
)

// barrelShift applies one of the four shift operations to value. The
// carry argument is the current C flag; the returned carry is the shifter
// carry-out.
//
// The regShift argument distinguishes register-supplied counts from
// immediate counts: an amount of zero is a no-op for register counts but
// for immediate counts LSR/ASR are reinterpreted as 32 and ROR as RRX.
func barrelShift(op int, value uint32, amount uint32, carry bool, regShift bool) (uint32, bool) {
	if amount == 0 {
		if regShift {
			return value, carry
		}

		// immediate shift amounts of zero have special meanings
		switch op {
		case shiftLSL:
			return value, carry
		case shiftLSR, shiftASR:
			amount = 32
		case shiftROR:
			// RRX: rotate right with extend through the carry flag
			out := value&1 != 0
			return (value >> 1) | boolToBit(carry)<<31, out
		}
	}

	switch op {
	case shiftLSL:
		switch {
		case amount < 32:
			return value << amount, value&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, value&1 != 0
		default:
			return 0, false
		}

	case shiftLSR:
		switch {
		case amount < 32:
			return value >> amount, value&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, value&0x80000000 != 0
		default:
			return 0, false
		}

	case shiftASR:
		if amount >= 32 {
			sign := value&0x80000000 != 0
			if sign {
				return 0xFFFFFFFF, true
			}
			return 0, false
		}
		return uint32(int32(value) >> amount), value&(1<<(amount-1)) != 0

	case shiftROR:
		amount &= 31
		if amount == 0 {
			// a multiple of 32: the value is unchanged and C holds bit 31
			return value, value&0x80000000 != 0
		}
		return bits.RotateRight32(value, uint(amount)), value&(1<<(amount-1)) != 0
	}

	panic("shifter: illegal operation")
}

func boolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
