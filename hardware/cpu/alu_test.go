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

import (
	"testing"

	"github.com/jetsetilly/pocketcore/hardware/cpu/registers"
	"github.com/jetsetilly/pocketcore/test"
)

// operand sample set: zero, one, extremes and sign boundaries
var samples = []uint32{
	0x00000000, 0x00000001, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0x12345678, 0xFEDCBA98,
}

func TestAddFlagsAgainstReference(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			res := add(a, b, false)

			r64 := uint64(a) + uint64(b)
			test.ExpectEquality(t, res.value, uint32(r64))
			test.ExpectEquality(t, res.c, r64>>32 != 0)
			test.ExpectEquality(t, res.n, int32(res.value) < 0)
			test.ExpectEquality(t, res.z, res.value == 0)

			// signed overflow: both operands share a sign that the result
			// does not
			expectedV := (int32(a) >= 0) == (int32(b) >= 0) && (int32(a) >= 0) != (int32(res.value) >= 0)
			test.ExpectEquality(t, res.v, expectedV)
		}
	}
}

func TestSubFlagsAgainstReference(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			res := sub(a, b, false)

			test.ExpectEquality(t, res.value, a-b)

			// C is set when no borrow occurs
			test.ExpectEquality(t, res.c, a >= b)

			expectedV := (int32(a) >= 0) != (int32(b) >= 0) && (int32(a) >= 0) != (int32(res.value) >= 0)
			test.ExpectEquality(t, res.v, expectedV)
		}
	}
}

func TestCarryChain(t *testing.T) {
	// ADC with carry-in
	res := add(0xFFFFFFFF, 0, true)
	test.ExpectEquality(t, res.value, uint32(0))
	test.ExpectSuccess(t, res.c)
	test.ExpectSuccess(t, res.z)

	// SBC uses !C as borrow: with carry set there is no borrow
	res = sub(5, 5, false)
	test.ExpectEquality(t, res.value, uint32(0))
	test.ExpectSuccess(t, res.c)

	res = sub(5, 5, true)
	test.ExpectEquality(t, res.value, uint32(0xFFFFFFFF))
	test.ExpectFailure(t, res.c)
}

func TestShifterEdgeCases(t *testing.T) {
	carry := false

	// LSL by 0 is a no-op preserving carry
	v, c := barrelShift(shiftLSL, 0x80000001, 0, true, false)
	test.ExpectEquality(t, v, uint32(0x80000001))
	test.ExpectSuccess(t, c)

	// LSL by 32: result 0, carry = bit 0
	v, c = barrelShift(shiftLSL, 0x80000001, 32, carry, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, c)

	// LSL by more than 32: result 0, carry cleared
	v, c = barrelShift(shiftLSL, 0xFFFFFFFF, 33, true, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, c)

	// immediate LSR by 0 is reinterpreted as 32
	v, c = barrelShift(shiftLSR, 0x80000000, 0, carry, false)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, c)

	// register LSR by 0 is a no-op
	v, c = barrelShift(shiftLSR, 0x80000000, 0, true, true)
	test.ExpectEquality(t, v, uint32(0x80000000))
	test.ExpectSuccess(t, c)

	// ASR by 32 or more copies the sign everywhere, including carry
	v, c = barrelShift(shiftASR, 0x80000000, 40, carry, true)
	test.ExpectEquality(t, v, uint32(0xFFFFFFFF))
	test.ExpectSuccess(t, c)

	v, c = barrelShift(shiftASR, 0x7FFFFFFF, 40, true, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, c)

	// immediate ROR by 0 is RRX
	v, c = barrelShift(shiftROR, 0x00000003, 0, true, false)
	test.ExpectEquality(t, v, uint32(0x80000001))
	test.ExpectSuccess(t, c)

	// register ROR by a multiple of 32 leaves the value but sets carry to
	// bit 31
	v, c = barrelShift(shiftROR, 0x80000000, 32, false, true)
	test.ExpectEquality(t, v, uint32(0x80000000))
	test.ExpectSuccess(t, c)

	// plain rotation
	v, c = barrelShift(shiftROR, 0xDEADBEEF, 8, false, true)
	test.ExpectEquality(t, v, uint32(0xEFDEADBE))
	test.ExpectSuccess(t, c)
}

func TestConditionPredicates(t *testing.T) {
	for flags := 0; flags < 16; flags++ {
		var sr registers.Status
		sr.N = flags&0x8 != 0
		sr.Z = flags&0x4 != 0
		sr.C = flags&0x2 != 0
		sr.V = flags&0x1 != 0

		formula := [16]bool{
			sr.Z,
			!sr.Z,
			sr.C,
			!sr.C,
			sr.N,
			!sr.N,
			sr.V,
			!sr.V,
			sr.C && !sr.Z,
			!sr.C || sr.Z,
			sr.N == sr.V,
			sr.N != sr.V,
			!sr.Z && sr.N == sr.V,
			sr.Z || sr.N != sr.V,
			true,
			false,
		}

		for cond := uint32(0); cond < 16; cond++ {
			test.ExpectEquality(t, conditionPassed(cond, sr), formula[cond])
		}
	}
}
