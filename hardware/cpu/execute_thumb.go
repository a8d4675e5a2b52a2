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
	"github.com/jetsetilly/pocketcore/hardware/bits"
	"github.com/jetsetilly/pocketcore/hardware/cpu/thumb"
)

// executeThumb interprets one instruction in Thumb state.
func (mc *CPU) executeThumb(op uint16) {
	switch thumb.Decode(op) {
	case thumb.MoveShiftedRegister:
		mc.thumbMoveShiftedRegister(op)
	case thumb.AddSubtract:
		mc.thumbAddSubtract(op)
	case thumb.MoveCompareAddSubImm:
		mc.thumbMoveCompareAddSubImm(op)
	case thumb.ALUOperation:
		mc.thumbALUOperation(op)
	case thumb.HiRegisterBranchExchange:
		mc.thumbHiRegisterBranchExchange(op)
	case thumb.PCRelativeLoad:
		mc.thumbPCRelativeLoad(op)
	case thumb.LoadStoreRegisterOffset:
		mc.thumbLoadStoreRegisterOffset(op)
	case thumb.LoadStoreSignExtended:
		mc.thumbLoadStoreSignExtended(op)
	case thumb.LoadStoreImmediateOffset:
		mc.thumbLoadStoreImmediateOffset(op)
	case thumb.LoadStoreHalfword:
		mc.thumbLoadStoreHalfword(op)
	case thumb.SPRelativeLoadStore:
		mc.thumbSPRelativeLoadStore(op)
	case thumb.LoadAddress:
		mc.thumbLoadAddress(op)
	case thumb.AddOffsetToSP:
		mc.thumbAddOffsetToSP(op)
	case thumb.PushPopRegisters:
		mc.thumbPushPopRegisters(op)
	case thumb.MultipleLoadStore:
		mc.thumbMultipleLoadStore(op)
	case thumb.ConditionalBranch:
		mc.thumbConditionalBranch(op)
	case thumb.SoftwareInterrupt:
		mc.raiseSWI()
	case thumb.UnconditionalBranch:
		mc.thumbUnconditionalBranch(op)
	case thumb.LongBranchLink:
		mc.thumbLongBranchLink(op)
	default:
		mc.raiseUndefined(uint32(op))
	}
}

// setFlagsLogical updates N,Z and the shifter carry, leaving V untouched.
func (mc *CPU) setFlagsLogical(value uint32, carry bool) {
	sr := mc.Regs.CPSR()
	mc.Regs.SetCPSRFlagsOnly(value&0x80000000 != 0, value == 0, carry, sr.V)
}

func (mc *CPU) setFlagsResult(res aluResult) {
	if res.arithmetic {
		mc.Regs.SetCPSRFlagsOnly(res.n, res.z, res.c, res.v)
	} else {
		sr := mc.Regs.CPSR()
		mc.Regs.SetCPSRFlagsOnly(res.n, res.z, sr.C, sr.V)
	}
}

func (mc *CPU) thumbMoveShiftedRegister(op uint16) {
	shiftType := int((op >> 11) & 3)
	amount := uint32((op >> 6) & 0x1F)
	rs := int((op >> 3) & 7)
	rd := int(op & 7)

	value, carry := barrelShift(shiftType, mc.Regs.Get(rs), amount, mc.Regs.CPSR().C, false)
	mc.Regs.Set(rd, value)
	mc.setFlagsLogical(value, carry)
}

func (mc *CPU) thumbAddSubtract(op uint16) {
	immediate := op&0x0400 != 0
	subtract := op&0x0200 != 0
	rs := int((op >> 3) & 7)
	rd := int(op & 7)

	var operand uint32
	if immediate {
		operand = uint32((op >> 6) & 7)
	} else {
		operand = mc.Regs.Get(int((op >> 6) & 7))
	}

	var res aluResult
	if subtract {
		res = sub(mc.Regs.Get(rs), operand, false)
	} else {
		res = add(mc.Regs.Get(rs), operand, false)
	}

	mc.Regs.Set(rd, res.value)
	mc.setFlagsResult(res)
}

func (mc *CPU) thumbMoveCompareAddSubImm(op uint16) {
	rd := int((op >> 8) & 7)
	imm := uint32(op & 0xFF)

	switch (op >> 11) & 3 {
	case 0: // MOV
		mc.Regs.Set(rd, imm)
		mc.setFlagsLogical(imm, mc.Regs.CPSR().C)
	case 1: // CMP
		mc.setFlagsResult(sub(mc.Regs.Get(rd), imm, false))
	case 2: // ADD
		res := add(mc.Regs.Get(rd), imm, false)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 3: // SUB
		res := sub(mc.Regs.Get(rd), imm, false)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	}
}

func (mc *CPU) thumbALUOperation(op uint16) {
	rs := int((op >> 3) & 7)
	rd := int(op & 7)
	a := mc.Regs.Get(rd)
	b := mc.Regs.Get(rs)
	carry := mc.Regs.CPSR().C

	switch (op >> 6) & 0xF {
	case 0x0: // AND
		res := logical(a & b)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0x1: // EOR
		res := logical(a ^ b)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0x2: // LSL
		value, c := barrelShift(shiftLSL, a, b&0xFF, carry, true)
		mc.Regs.Set(rd, value)
		mc.setFlagsLogical(value, c)
		mc.cycles++
	case 0x3: // LSR
		value, c := barrelShift(shiftLSR, a, b&0xFF, carry, true)
		mc.Regs.Set(rd, value)
		mc.setFlagsLogical(value, c)
		mc.cycles++
	case 0x4: // ASR
		value, c := barrelShift(shiftASR, a, b&0xFF, carry, true)
		mc.Regs.Set(rd, value)
		mc.setFlagsLogical(value, c)
		mc.cycles++
	case 0x5: // ADC
		res := add(a, b, carry)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0x6: // SBC
		res := sub(a, b, !carry)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0x7: // ROR
		value, c := barrelShift(shiftROR, a, b&0xFF, carry, true)
		mc.Regs.Set(rd, value)
		mc.setFlagsLogical(value, c)
		mc.cycles++
	case 0x8: // TST
		mc.setFlagsResult(logical(a & b))
	case 0x9: // NEG
		res := sub(0, b, false)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0xA: // CMP
		mc.setFlagsResult(sub(a, b, false))
	case 0xB: // CMN
		mc.setFlagsResult(add(a, b, false))
	case 0xC: // ORR
		res := logical(a | b)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0xD: // MUL
		value := a * b
		mc.Regs.Set(rd, value)
		mc.setFlagsLogical(value, carry)
		mc.cycles += 2
	case 0xE: // BIC
		res := logical(a &^ b)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	case 0xF: // MVN
		res := logical(^b)
		mc.Regs.Set(rd, res.value)
		mc.setFlagsResult(res)
	}
}

func (mc *CPU) thumbHiRegisterBranchExchange(op uint16) {
	rd := int(op&7) | int((op>>4)&8)
	rs := int((op>>3)&7) | int((op>>3)&8)

	switch (op >> 8) & 3 {
	case 0: // ADD (no flags)
		value := mc.Regs.Get(rd) + mc.Regs.Get(rs)
		mc.Regs.Set(rd, value)
		if rd == 15 {
			mc.branchTo(value)
			mc.cycles += 2
		}
	case 1: // CMP
		mc.setFlagsResult(sub(mc.Regs.Get(rd), mc.Regs.Get(rs), false))
	case 2: // MOV (no flags)
		value := mc.Regs.Get(rs)
		mc.Regs.Set(rd, value)
		if rd == 15 {
			mc.branchTo(value)
			mc.cycles += 2
		}
	case 3: // BX
		target := mc.Regs.Get(rs)
		mc.Regs.SetThumb(target&1 != 0)
		mc.branchTo(target)
		mc.cycles += 2
	}
}

func (mc *CPU) thumbPCRelativeLoad(op uint16) {
	rd := int((op >> 8) & 7)
	offset := uint32(op&0xFF) << 2
	addr := (mc.Regs.PC() &^ 3) + offset
	mc.Regs.Set(rd, mc.mem.ReadWord(addr))
	mc.cycles += 2
}

func (mc *CPU) thumbLoadStoreRegisterOffset(op uint16) {
	load := op&0x0800 != 0
	byteWidth := op&0x0400 != 0
	ro := int((op >> 6) & 7)
	rb := int((op >> 3) & 7)
	rd := int(op & 7)
	addr := mc.Regs.Get(rb) + mc.Regs.Get(ro)

	switch {
	case load && byteWidth:
		mc.Regs.Set(rd, uint32(mc.mem.ReadByte(addr)))
		mc.cycles += 2
	case load:
		mc.Regs.Set(rd, mc.mem.ReadWord(addr))
		mc.cycles += 2
	case byteWidth:
		mc.mem.WriteByte(addr, uint8(mc.Regs.Get(rd)))
		mc.cycles++
	default:
		mc.mem.WriteWord(addr, mc.Regs.Get(rd))
		mc.cycles++
	}
}

func (mc *CPU) thumbLoadStoreSignExtended(op uint16) {
	h := op&0x0800 != 0
	s := op&0x0400 != 0
	ro := int((op >> 6) & 7)
	rb := int((op >> 3) & 7)
	rd := int(op & 7)
	addr := mc.Regs.Get(rb) + mc.Regs.Get(ro)

	switch {
	case !s && !h: // STRH
		mc.mem.WriteHalf(addr, uint16(mc.Regs.Get(rd)))
		mc.cycles++
	case !s && h: // LDRH
		value := bits.RotateRight32(uint32(mc.mem.ReadHalf(addr)), uint(8*(addr&1)))
		mc.Regs.Set(rd, value)
		mc.cycles += 2
	case s && !h: // LDRSB
		mc.Regs.Set(rd, uint32(int32(int8(mc.mem.ReadByte(addr)))))
		mc.cycles += 2
	default: // LDRSH
		if addr&1 != 0 {
			mc.Regs.Set(rd, uint32(int32(int8(mc.mem.ReadByte(addr)))))
		} else {
			mc.Regs.Set(rd, uint32(int32(int16(mc.mem.ReadHalf(addr)))))
		}
		mc.cycles += 2
	}
}

func (mc *CPU) thumbLoadStoreImmediateOffset(op uint16) {
	byteWidth := op&0x1000 != 0
	load := op&0x0800 != 0
	offset := uint32((op >> 6) & 0x1F)
	rb := int((op >> 3) & 7)
	rd := int(op & 7)

	if !byteWidth {
		offset <<= 2
	}
	addr := mc.Regs.Get(rb) + offset

	switch {
	case load && byteWidth:
		mc.Regs.Set(rd, uint32(mc.mem.ReadByte(addr)))
		mc.cycles += 2
	case load:
		mc.Regs.Set(rd, mc.mem.ReadWord(addr))
		mc.cycles += 2
	case byteWidth:
		mc.mem.WriteByte(addr, uint8(mc.Regs.Get(rd)))
		mc.cycles++
	default:
		mc.mem.WriteWord(addr, mc.Regs.Get(rd))
		mc.cycles++
	}
}

func (mc *CPU) thumbLoadStoreHalfword(op uint16) {
	load := op&0x0800 != 0
	offset := uint32((op>>6)&0x1F) << 1
	rb := int((op >> 3) & 7)
	rd := int(op & 7)
	addr := mc.Regs.Get(rb) + offset

	if load {
		value := bits.RotateRight32(uint32(mc.mem.ReadHalf(addr)), uint(8*(addr&1)))
		mc.Regs.Set(rd, value)
		mc.cycles += 2
	} else {
		mc.mem.WriteHalf(addr, uint16(mc.Regs.Get(rd)))
		mc.cycles++
	}
}

func (mc *CPU) thumbSPRelativeLoadStore(op uint16) {
	load := op&0x0800 != 0
	rd := int((op >> 8) & 7)
	offset := uint32(op&0xFF) << 2
	addr := mc.Regs.Get(13) + offset

	if load {
		mc.Regs.Set(rd, mc.mem.ReadWord(addr))
		mc.cycles += 2
	} else {
		mc.mem.WriteWord(addr, mc.Regs.Get(rd))
		mc.cycles++
	}
}

func (mc *CPU) thumbLoadAddress(op uint16) {
	sp := op&0x0800 != 0
	rd := int((op >> 8) & 7)
	offset := uint32(op&0xFF) << 2

	if sp {
		mc.Regs.Set(rd, mc.Regs.Get(13)+offset)
	} else {
		mc.Regs.Set(rd, (mc.Regs.PC()&^3)+offset)
	}
}

func (mc *CPU) thumbAddOffsetToSP(op uint16) {
	offset := uint32(op&0x7F) << 2
	if op&0x80 != 0 {
		mc.Regs.Set(13, mc.Regs.Get(13)-offset)
	} else {
		mc.Regs.Set(13, mc.Regs.Get(13)+offset)
	}
}

func (mc *CPU) thumbPushPopRegisters(op uint16) {
	load := op&0x0800 != 0
	pclr := op&0x0100 != 0
	rlist := op & 0xFF

	if load {
		// POP
		addr := mc.Regs.Get(13)
		for i := 0; i < 8; i++ {
			if rlist&(1<<i) == 0 {
				continue
			}
			mc.Regs.Set(i, mc.mem.ReadWord(addr&^3))
			addr += 4
			mc.cycles++
		}
		if pclr {
			target := mc.mem.ReadWord(addr &^ 3)
			addr += 4
			mc.branchTo(target)
			mc.cycles += 2
		}
		mc.Regs.Set(13, addr)
	} else {
		// PUSH
		count := bits.PopCount16(rlist)
		if pclr {
			count++
		}
		base := mc.Regs.Get(13)
		addr := base - uint32(4*count)
		mc.Regs.Set(13, addr)
		for i := 0; i < 8; i++ {
			if rlist&(1<<i) == 0 {
				continue
			}
			mc.mem.WriteWord(addr&^3, mc.Regs.Get(i))
			addr += 4
			mc.cycles++
		}
		if pclr {
			mc.mem.WriteWord(addr&^3, mc.Regs.Get(14))
			mc.cycles++
		}
	}
}

func (mc *CPU) thumbMultipleLoadStore(op uint16) {
	load := op&0x0800 != 0
	rb := int((op >> 8) & 7)
	rlist := op & 0xFF

	base := mc.Regs.Get(rb)

	// an empty register list transfers R15 only and advances the base by 16
	// words
	if rlist == 0 {
		if load {
			mc.branchTo(mc.mem.ReadWord(base &^ 3))
			mc.cycles += 2
		} else {
			mc.mem.WriteWord(base&^3, mc.Regs.PC()+2)
		}
		mc.Regs.Set(rb, base+0x40)
		return
	}

	count := bits.PopCount16(rlist)
	newBase := base + uint32(4*count)
	baseInList := rlist&(1<<rb) != 0

	lowest := -1
	for i := 0; i < 8; i++ {
		if rlist&(1<<i) != 0 {
			lowest = i
			break
		}
	}

	addr := base
	for i := 0; i < 8; i++ {
		if rlist&(1<<i) == 0 {
			continue
		}

		if load {
			mc.Regs.Set(i, mc.mem.ReadWord(addr&^3))
		} else {
			var value uint32
			switch {
			case i == rb && i == lowest:
				value = base
			case i == rb:
				value = newBase
			default:
				value = mc.Regs.Get(i)
			}
			mc.mem.WriteWord(addr&^3, value)
		}

		addr += 4
		mc.cycles++
	}

	if !(load && baseInList) {
		mc.Regs.Set(rb, newBase)
	}
}

func (mc *CPU) thumbConditionalBranch(op uint16) {
	cond := uint32((op >> 8) & 0xF)
	if !conditionPassed(cond, mc.Regs.CPSR()) {
		return
	}
	offset := uint32(bits.SignExtend(uint32(op&0xFF), 8)) << 1
	mc.branchTo(mc.Regs.PC() + offset)
	mc.cycles += 2
}

func (mc *CPU) thumbUnconditionalBranch(op uint16) {
	offset := uint32(bits.SignExtend(uint32(op&0x7FF), 11)) << 1
	mc.branchTo(mc.Regs.PC() + offset)
	mc.cycles += 2
}

// thumbLongBranchLink is the two-halfword BL sequence: the prefix stages the
// high part of the target in LR; the suffix computes the branch target from
// LR and swaps the return address in.
func (mc *CPU) thumbLongBranchLink(op uint16) {
	imm := uint32(op & 0x7FF)

	if op&0x0800 == 0 {
		// prefix
		mc.Regs.Set(14, mc.Regs.PC()+(uint32(bits.SignExtend(imm, 11))<<12))
		return
	}

	// suffix
	target := mc.Regs.Get(14) + (imm << 1)
	mc.Regs.Set(14, (mc.Regs.PC()-2)|1)
	mc.branchTo(target)
	mc.cycles += 2
}
