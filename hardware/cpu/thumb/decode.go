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

// Package thumb holds the Thumb-state decode table: a 256-entry lookup,
// keyed by bits 15-8 of the opcode, classifying it into one of the 19
// classic Thumb instruction formats.
package thumb

import "github.com/jetsetilly/pocketcore/hardware/bits"

// Category classifies a decoded Thumb opcode into an instruction format.
type Category int

const (
	Undefined Category = iota
	MoveShiftedRegister
	AddSubtract
	MoveCompareAddSubImm
	ALUOperation
	HiRegisterBranchExchange
	PCRelativeLoad
	LoadStoreRegisterOffset
	LoadStoreSignExtended
	LoadStoreImmediateOffset
	LoadStoreHalfword
	SPRelativeLoadStore
	LoadAddress
	AddOffsetToSP
	PushPopRegisters
	MultipleLoadStore
	ConditionalBranch
	SoftwareInterrupt
	UnconditionalBranch
	LongBranchLink
)

var table = bits.BuildTable(8, []bits.PatternEntry[Category]{
	{Pattern: "000xxxxx", Value: MoveShiftedRegister},
	{Pattern: "00011xxx", Value: AddSubtract},
	{Pattern: "001xxxxx", Value: MoveCompareAddSubImm},
	{Pattern: "010000xx", Value: ALUOperation},
	{Pattern: "010001xx", Value: HiRegisterBranchExchange},
	{Pattern: "01001xxx", Value: PCRelativeLoad},
	{Pattern: "0101xx0x", Value: LoadStoreRegisterOffset},
	{Pattern: "0101xx1x", Value: LoadStoreSignExtended},
	{Pattern: "011xxxxx", Value: LoadStoreImmediateOffset},
	{Pattern: "1000xxxx", Value: LoadStoreHalfword},
	{Pattern: "1001xxxx", Value: SPRelativeLoadStore},
	{Pattern: "1010xxxx", Value: LoadAddress},
	{Pattern: "10110000", Value: AddOffsetToSP},
	{Pattern: "1011x1xx", Value: PushPopRegisters},
	{Pattern: "1100xxxx", Value: MultipleLoadStore},
	{Pattern: "1101xxxx", Value: ConditionalBranch},
	{Pattern: "11011111", Value: SoftwareInterrupt},
	{Pattern: "11011110", Value: Undefined},
	{Pattern: "11100xxx", Value: UnconditionalBranch},
	{Pattern: "1111xxxx", Value: LongBranchLink},
})

// Index computes the 8-bit decode-table index for a Thumb opcode.
func Index(opcode uint16) uint32 {
	return uint32(opcode >> 8)
}

// Decode classifies opcode into its instruction format.
func Decode(opcode uint16) Category {
	return table[Index(opcode)]
}

func (c Category) String() string {
	switch c {
	case MoveShiftedRegister:
		return "move-shifted-register"
	case AddSubtract:
		return "add-subtract"
	case MoveCompareAddSubImm:
		return "move-compare-add-sub-immediate"
	case ALUOperation:
		return "alu-operation"
	case HiRegisterBranchExchange:
		return "hi-register-branch-exchange"
	case PCRelativeLoad:
		return "pc-relative-load"
	case LoadStoreRegisterOffset:
		return "load-store-register-offset"
	case LoadStoreSignExtended:
		return "load-store-sign-extended"
	case LoadStoreImmediateOffset:
		return "load-store-immediate-offset"
	case LoadStoreHalfword:
		return "load-store-halfword"
	case SPRelativeLoadStore:
		return "sp-relative-load-store"
	case LoadAddress:
		return "load-address"
	case AddOffsetToSP:
		return "add-offset-to-sp"
	case PushPopRegisters:
		return "push-pop-registers"
	case MultipleLoadStore:
		return "multiple-load-store"
	case ConditionalBranch:
		return "conditional-branch"
	case SoftwareInterrupt:
		return "software-interrupt"
	case UnconditionalBranch:
		return "unconditional-branch"
	case LongBranchLink:
		return "long-branch-link"
	default:
		return "undefined"
	}
}
