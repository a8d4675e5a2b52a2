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

// Package arm holds the ARM-state decode table: a 4096-entry lookup, keyed
// by bits 27-20 and 7-4 of the opcode, that classifies an opcode into one of
// the instruction groups described in spec.md §4.1.
//
// The table is built the way the original hand-written handler tables are:
// every pattern is a 12-character mask of '0', '1' and 'x' and every bit
// combination matching the mask binds to the same Category. More specific
// patterns (multiply, swap, halfword transfer, branch-exchange, the
// register-offset undefined-instruction trap) are bound after the broad
// data-processing/single-data-transfer patterns so they take precedence,
// per the construction note in spec.md §9.
package arm

import "github.com/jetsetilly/pocketcore/hardware/bits"

// Category classifies a decoded ARM opcode into an instruction group.
type Category int

const (
	Undefined Category = iota
	DataProcessing
	Multiply
	MultiplyLong
	SingleDataSwap
	BranchExchange
	HalfwordTransferRegister
	HalfwordTransferImmediate
	SingleDataTransfer
	BlockDataTransfer
	Branch
	CoprocessorDataTransfer
	CoprocessorDataOperation
	CoprocessorRegisterTransfer
	SoftwareInterrupt
)

// table is populated once at package init by wildcard-pattern expansion.
var table = bits.BuildTable(12, []bits.PatternEntry[Category]{
	// broad groups, registered first
	{Pattern: "00xxxxxxxxxx", Value: DataProcessing},
	{Pattern: "01xxxxxxxxxx", Value: SingleDataTransfer},
	{Pattern: "100xxxxxxxxx", Value: BlockDataTransfer},
	{Pattern: "101xxxxxxxxx", Value: Branch},
	{Pattern: "110xxxxxxxxx", Value: CoprocessorDataTransfer},
	{Pattern: "1110xxxxxxxx", Value: CoprocessorDataOperation},
	{Pattern: "1111xxxxxxxx", Value: SoftwareInterrupt},

	// coprocessor register transfer overlaps CDP's index space (bit4
	// distinguishes them but isn't part of the broad pattern above since
	// it already covers all 8 bits 7-4); bind it after so it overrides.
	{Pattern: "1110xxxxxxx1", Value: CoprocessorRegisterTransfer},

	// specific groups, registered after so they override the broad
	// data-processing/single-data-transfer bindings above. the halfword
	// patterns come first: their wildcard bits 7-4 (1xx1) also cover the
	// 1001 encoding owned by the multiply and swap groups, which must
	// therefore bind later still.
	{Pattern: "000xx0xx1xx1", Value: HalfwordTransferRegister},
	{Pattern: "000xx1xx1xx1", Value: HalfwordTransferImmediate},
	{Pattern: "000000xx1001", Value: Multiply},
	{Pattern: "00001xxx1001", Value: MultiplyLong},
	{Pattern: "00010x001001", Value: SingleDataSwap},
	{Pattern: "000100100001", Value: BranchExchange},
	{Pattern: "011xxxxxxxx1", Value: Undefined},
})

// Index computes the 12-bit decode-table index for an ARM opcode.
func Index(opcode uint32) uint32 {
	return bits.BitfieldExtract(opcode, 20, 27)<<4 | bits.BitfieldExtract(opcode, 4, 7)
}

// Decode classifies opcode into its instruction group.
func Decode(opcode uint32) Category {
	return table[Index(opcode)]
}

// Condition extracts the 4-bit condition field (bits 31-28).
func Condition(opcode uint32) uint32 {
	return bits.BitfieldExtract(opcode, 28, 31)
}

func (c Category) String() string {
	switch c {
	case DataProcessing:
		return "data-processing"
	case Multiply:
		return "multiply"
	case MultiplyLong:
		return "multiply-long"
	case SingleDataSwap:
		return "swap"
	case BranchExchange:
		return "branch-exchange"
	case HalfwordTransferRegister:
		return "halfword-transfer-register"
	case HalfwordTransferImmediate:
		return "halfword-transfer-immediate"
	case SingleDataTransfer:
		return "single-data-transfer"
	case BlockDataTransfer:
		return "block-data-transfer"
	case Branch:
		return "branch"
	case CoprocessorDataTransfer:
		return "coprocessor-data-transfer"
	case CoprocessorDataOperation:
		return "coprocessor-data-operation"
	case CoprocessorRegisterTransfer:
		return "coprocessor-register-transfer"
	case SoftwareInterrupt:
		return "software-interrupt"
	default:
		return "undefined"
	}
}
