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

package thumb

import (
	"fmt"

	"github.com/jetsetilly/pocketcore/hardware/bits"
)

// disasmTable parallels the decode table: the same patterns, bound to
// disassembly functions instead of categories.
var disasmTable = bits.BuildTable(8, []bits.PatternEntry[func(uint16) string]{
	{Pattern: "000xxxxx", Value: disasmMoveShifted},
	{Pattern: "00011xxx", Value: disasmAddSubtract},
	{Pattern: "001xxxxx", Value: disasmMoveCompareAddSubImm},
	{Pattern: "010000xx", Value: disasmALU},
	{Pattern: "010001xx", Value: disasmHiRegister},
	{Pattern: "01001xxx", Value: disasmPCRelativeLoad},
	{Pattern: "0101xxxx", Value: disasmLoadStoreRegister},
	{Pattern: "011xxxxx", Value: disasmLoadStoreImmediate},
	{Pattern: "1000xxxx", Value: disasmLoadStoreHalfword},
	{Pattern: "1001xxxx", Value: disasmSPRelative},
	{Pattern: "1010xxxx", Value: disasmLoadAddress},
	{Pattern: "10110000", Value: disasmAddOffsetToSP},
	{Pattern: "1011x1xx", Value: disasmPushPop},
	{Pattern: "1100xxxx", Value: disasmMultipleLoadStore},
	{Pattern: "1101xxxx", Value: disasmConditionalBranch},
	{Pattern: "11011111", Value: disasmSoftwareInterrupt},
	{Pattern: "11100xxx", Value: disasmUnconditionalBranch},
	{Pattern: "1111xxxx", Value: disasmLongBranchLink},
})

// Disassemble returns a human readable representation of the opcode.
func Disassemble(opcode uint16) string {
	f := disasmTable[Index(opcode)]
	if f == nil {
		return fmt.Sprintf(".hword %04x", opcode)
	}
	return f(opcode)
}

var aluMnemonic = [16]string{
	"and", "eor", "lsl", "lsr", "asr", "adc", "sbc", "ror",
	"tst", "neg", "cmp", "cmn", "orr", "mul", "bic", "mvn",
}

var condMnemonic = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

func disasmMoveShifted(op uint16) string {
	mn := [3]string{"lsl", "lsr", "asr"}[(op>>11)&3]
	return fmt.Sprintf("%s r%d, r%d, #%d", mn, op&7, (op>>3)&7, (op>>6)&0x1F)
}

func disasmAddSubtract(op uint16) string {
	mn := "add"
	if op&0x0200 != 0 {
		mn = "sub"
	}
	if op&0x0400 != 0 {
		return fmt.Sprintf("%s r%d, r%d, #%d", mn, op&7, (op>>3)&7, (op>>6)&7)
	}
	return fmt.Sprintf("%s r%d, r%d, r%d", mn, op&7, (op>>3)&7, (op>>6)&7)
}

func disasmMoveCompareAddSubImm(op uint16) string {
	mn := [4]string{"mov", "cmp", "add", "sub"}[(op>>11)&3]
	return fmt.Sprintf("%s r%d, #%d", mn, (op>>8)&7, op&0xFF)
}

func disasmALU(op uint16) string {
	return fmt.Sprintf("%s r%d, r%d", aluMnemonic[(op>>6)&0xF], op&7, (op>>3)&7)
}

func disasmHiRegister(op uint16) string {
	rd := (op & 7) | ((op >> 4) & 8)
	rs := ((op >> 3) & 7) | ((op >> 3) & 8)
	switch (op >> 8) & 3 {
	case 0:
		return fmt.Sprintf("add r%d, r%d", rd, rs)
	case 1:
		return fmt.Sprintf("cmp r%d, r%d", rd, rs)
	case 2:
		return fmt.Sprintf("mov r%d, r%d", rd, rs)
	default:
		return fmt.Sprintf("bx r%d", rs)
	}
}

func disasmPCRelativeLoad(op uint16) string {
	return fmt.Sprintf("ldr r%d, [pc, #%d]", (op>>8)&7, (op&0xFF)<<2)
}

func disasmLoadStoreRegister(op uint16) string {
	if op&0x0200 != 0 {
		mn := [4]string{"strh", "ldsb", "ldrh", "ldsh"}[(op>>10)&3]
		return fmt.Sprintf("%s r%d, [r%d, r%d]", mn, op&7, (op>>3)&7, (op>>6)&7)
	}
	mn := [4]string{"str", "strb", "ldr", "ldrb"}[(op>>10)&3]
	return fmt.Sprintf("%s r%d, [r%d, r%d]", mn, op&7, (op>>3)&7, (op>>6)&7)
}

func disasmLoadStoreImmediate(op uint16) string {
	mn := [4]string{"str", "ldr", "strb", "ldrb"}[(op>>11)&3]
	off := (op >> 6) & 0x1F
	if op&0x1000 == 0 {
		off <<= 2
	}
	return fmt.Sprintf("%s r%d, [r%d, #%d]", mn, op&7, (op>>3)&7, off)
}

func disasmLoadStoreHalfword(op uint16) string {
	mn := "strh"
	if op&0x0800 != 0 {
		mn = "ldrh"
	}
	return fmt.Sprintf("%s r%d, [r%d, #%d]", mn, op&7, (op>>3)&7, ((op>>6)&0x1F)<<1)
}

func disasmSPRelative(op uint16) string {
	mn := "str"
	if op&0x0800 != 0 {
		mn = "ldr"
	}
	return fmt.Sprintf("%s r%d, [sp, #%d]", mn, (op>>8)&7, (op&0xFF)<<2)
}

func disasmLoadAddress(op uint16) string {
	base := "pc"
	if op&0x0800 != 0 {
		base = "sp"
	}
	return fmt.Sprintf("add r%d, %s, #%d", (op>>8)&7, base, (op&0xFF)<<2)
}

func disasmAddOffsetToSP(op uint16) string {
	if op&0x80 != 0 {
		return fmt.Sprintf("sub sp, #%d", (op&0x7F)<<2)
	}
	return fmt.Sprintf("add sp, #%d", (op&0x7F)<<2)
}

func disasmPushPop(op uint16) string {
	if op&0x0800 != 0 {
		if op&0x0100 != 0 {
			return fmt.Sprintf("pop {%#02x, pc}", op&0xFF)
		}
		return fmt.Sprintf("pop {%#02x}", op&0xFF)
	}
	if op&0x0100 != 0 {
		return fmt.Sprintf("push {%#02x, lr}", op&0xFF)
	}
	return fmt.Sprintf("push {%#02x}", op&0xFF)
}

func disasmMultipleLoadStore(op uint16) string {
	mn := "stmia"
	if op&0x0800 != 0 {
		mn = "ldmia"
	}
	return fmt.Sprintf("%s r%d!, {%#02x}", mn, (op>>8)&7, op&0xFF)
}

func disasmConditionalBranch(op uint16) string {
	offset := int32(bits.SignExtend(uint32(op&0xFF), 8)) << 1
	return fmt.Sprintf("b%s %+d", condMnemonic[(op>>8)&0xF], offset+4)
}

func disasmSoftwareInterrupt(op uint16) string {
	return fmt.Sprintf("swi %#02x", op&0xFF)
}

func disasmUnconditionalBranch(op uint16) string {
	offset := int32(bits.SignExtend(uint32(op&0x7FF), 11)) << 1
	return fmt.Sprintf("b %+d", offset+4)
}

func disasmLongBranchLink(op uint16) string {
	if op&0x0800 == 0 {
		return fmt.Sprintf("bl (prefix) %#03x", op&0x7FF)
	}
	return fmt.Sprintf("bl (suffix) %#03x", op&0x7FF)
}
