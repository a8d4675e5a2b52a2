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

package arm_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/hardware/cpu/arm"
	"github.com/jetsetilly/pocketcore/test"
)

func TestDecodeGroups(t *testing.T) {
	// one representative opcode per instruction group
	tests := []struct {
		opcode   uint32
		category arm.Category
	}{
		{0xE0902001, arm.DataProcessing},           // ADDS R2, R0, R1
		{0xE3A00000, arm.DataProcessing},           // MOV R0, #0
		{0xE0010392, arm.Multiply},                 // MUL R1, R2, R3
		{0xE0854392, arm.MultiplyLong},             // UMULL R4, R5, R2, R3
		{0xE1013092, arm.SingleDataSwap},           // SWP R3, R2, [R1]
		{0xE1413092, arm.SingleDataSwap},           // SWPB R3, R2, [R1]
		{0xE12FFF10, arm.BranchExchange},           // BX R0
		{0xE1D100B0, arm.HalfwordTransferImmediate}, // LDRH R0, [R1]
		{0xE19100B2, arm.HalfwordTransferRegister}, // LDRH R0, [R1, R2]
		{0xE1D100D0, arm.HalfwordTransferImmediate}, // LDRSB R0, [R1]
		{0xE5910000, arm.SingleDataTransfer},       // LDR R0, [R1]
		{0xE8B00007, arm.BlockDataTransfer},        // LDMIA R0!, {R0-R2}
		{0xEA000000, arm.Branch},                   // B
		{0xEB000000, arm.Branch},                   // BL
		{0xEF000000, arm.SoftwareInterrupt},        // SWI
		{0xE7F000F0, arm.Undefined},                // undefined trap
		{0xEE000000, arm.CoprocessorDataOperation}, // CDP
		{0xEE000010, arm.CoprocessorRegisterTransfer}, // MCR
		{0xEC000000, arm.CoprocessorDataTransfer},  // STC
	}

	for _, tc := range tests {
		test.ExpectEquality(t, arm.Decode(tc.opcode), tc.category)
	}
}

func TestConditionField(t *testing.T) {
	test.ExpectEquality(t, arm.Condition(0xE0902001), uint32(0xE))
	test.ExpectEquality(t, arm.Condition(0x00902001), uint32(0x0))
}
