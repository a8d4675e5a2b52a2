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

package arm

import (
	"fmt"

	"github.com/jetsetilly/pocketcore/hardware/bits"
)

// disasmTable parallels the decode table: the same patterns, bound to
// disassembly functions instead of categories.
var disasmTable = bits.BuildTable(12, []bits.PatternEntry[func(uint32) string]{
	{Pattern: "00xxxxxxxxxx", Value: disasmDataProcessing},
	{Pattern: "01xxxxxxxxxx", Value: disasmSingleDataTransfer},
	{Pattern: "100xxxxxxxxx", Value: disasmBlockDataTransfer},
	{Pattern: "101xxxxxxxxx", Value: disasmBranch},
	{Pattern: "110xxxxxxxxx", Value: disasmCoprocessor},
	{Pattern: "1110xxxxxxxx", Value: disasmCoprocessor},
	{Pattern: "1111xxxxxxxx", Value: disasmSoftwareInterrupt},
	{Pattern: "1110xxxxxxx1", Value: disasmCoprocessor},
	{Pattern: "000xx0xx1xx1", Value: disasmHalfwordTransfer},
	{Pattern: "000xx1xx1xx1", Value: disasmHalfwordTransfer},
	{Pattern: "000000xx1001", Value: disasmMultiply},
	{Pattern: "00001xxx1001", Value: disasmMultiplyLong},
	{Pattern: "00010x001001", Value: disasmSwap},
	{Pattern: "000100100001", Value: disasmBranchExchange},
	{Pattern: "011xxxxxxxx1", Value: disasmUndefined},
})

var condMnemonic = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "", "nv",
}

var aluMnemonic = [16]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

// Disassemble returns a human readable representation of the opcode.
func Disassemble(opcode uint32) string {
	f := disasmTable[Index(opcode)]
	if f == nil {
		return fmt.Sprintf(".word %08x", opcode)
	}
	return f(opcode)
}

func cond(opcode uint32) string {
	return condMnemonic[Condition(opcode)]
}

func disasmDataProcessing(op uint32) string {
	opcode := (op >> 21) & 0xF
	mn := aluMnemonic[opcode]
	rn := (op >> 16) & 0xF
	rd := (op >> 12) & 0xF

	s := ""
	if op&0x00100000 != 0 {
		s = "s"
	}

	var op2 string
	if op&0x02000000 != 0 {
		op2 = fmt.Sprintf("#%#x", bits.RotateRight32(op&0xFF, uint(((op>>8)&0xF)*2)))
	} else {
		op2 = fmt.Sprintf("r%d", op&0xF)
	}

	switch opcode {
	case 8, 9, 10, 11: // test operations or psr transfer
		if s == "" {
			if op&0x00200000 == 0 {
				return fmt.Sprintf("mrs%s r%d", cond(op), rd)
			}
			return fmt.Sprintf("msr%s %s", cond(op), op2)
		}
		return fmt.Sprintf("%s%s r%d, %s", mn, cond(op), rn, op2)
	case 13, 15: // mov/mvn
		return fmt.Sprintf("%s%s%s r%d, %s", mn, cond(op), s, rd, op2)
	default:
		return fmt.Sprintf("%s%s%s r%d, r%d, %s", mn, cond(op), s, rd, rn, op2)
	}
}

func disasmMultiply(op uint32) string {
	rd := (op >> 16) & 0xF
	rn := (op >> 12) & 0xF
	rs := (op >> 8) & 0xF
	rm := op & 0xF
	if op&0x00200000 != 0 {
		return fmt.Sprintf("mla%s r%d, r%d, r%d, r%d", cond(op), rd, rm, rs, rn)
	}
	return fmt.Sprintf("mul%s r%d, r%d, r%d", cond(op), rd, rm, rs)
}

func disasmMultiplyLong(op uint32) string {
	mn := "umull"
	if op&0x00400000 != 0 {
		mn = "smull"
	}
	if op&0x00200000 != 0 {
		mn = mn[:1] + "mlal"
	}
	return fmt.Sprintf("%s%s r%d, r%d, r%d, r%d", mn, cond(op), (op>>12)&0xF, (op>>16)&0xF, op&0xF, (op>>8)&0xF)
}

func disasmSwap(op uint32) string {
	b := ""
	if op&0x00400000 != 0 {
		b = "b"
	}
	return fmt.Sprintf("swp%s%s r%d, r%d, [r%d]", cond(op), b, (op>>12)&0xF, op&0xF, (op>>16)&0xF)
}

func disasmBranchExchange(op uint32) string {
	return fmt.Sprintf("bx%s r%d", cond(op), op&0xF)
}

func disasmHalfwordTransfer(op uint32) string {
	mn := "strh"
	if op&0x00100000 != 0 {
		switch {
		case op&0x40 != 0 && op&0x20 != 0:
			mn = "ldrsh"
		case op&0x40 != 0:
			mn = "ldrsb"
		default:
			mn = "ldrh"
		}
	}
	return fmt.Sprintf("%s%s r%d, [r%d, ...]", mn, cond(op), (op>>12)&0xF, (op>>16)&0xF)
}

func disasmSingleDataTransfer(op uint32) string {
	mn := "str"
	if op&0x00100000 != 0 {
		mn = "ldr"
	}
	b := ""
	if op&0x00400000 != 0 {
		b = "b"
	}
	if op&0x02000000 == 0 {
		return fmt.Sprintf("%s%s%s r%d, [r%d, #%#x]", mn, cond(op), b, (op>>12)&0xF, (op>>16)&0xF, op&0xFFF)
	}
	return fmt.Sprintf("%s%s%s r%d, [r%d, r%d]", mn, cond(op), b, (op>>12)&0xF, (op>>16)&0xF, op&0xF)
}

func disasmBlockDataTransfer(op uint32) string {
	mn := "stm"
	if op&0x00100000 != 0 {
		mn = "ldm"
	}
	return fmt.Sprintf("%s%s r%d, %#04x", mn, cond(op), (op>>16)&0xF, op&0xFFFF)
}

func disasmBranch(op uint32) string {
	mn := "b"
	if op&0x01000000 != 0 {
		mn = "bl"
	}
	offset := int32(bits.SignExtend(op&0x00FFFFFF, 24)) << 2
	return fmt.Sprintf("%s%s %+d", mn, cond(op), offset+8)
}

func disasmCoprocessor(op uint32) string {
	return fmt.Sprintf("cop%s %08x", cond(op), op)
}

func disasmSoftwareInterrupt(op uint32) string {
	return fmt.Sprintf("swi%s %#06x", cond(op), op&0x00FFFFFF)
}

func disasmUndefined(op uint32) string {
	return fmt.Sprintf("undefined %08x", op)
}
