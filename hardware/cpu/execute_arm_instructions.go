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
	"github.com/jetsetilly/pocketcore/hardware/cpu/arm"
	"github.com/jetsetilly/pocketcore/hardware/cpu/registers"
	"github.com/jetsetilly/pocketcore/logger"
)

// executeARM interprets one instruction in ARM state.
func (mc *CPU) executeARM(op uint32) {
	if !conditionPassed(arm.Condition(op), mc.Regs.CPSR()) {
		return
	}

	switch arm.Decode(op) {
	case arm.DataProcessing:
		mc.armDataProcessing(op)
	case arm.Multiply:
		mc.armMultiply(op)
	case arm.MultiplyLong:
		mc.armMultiplyLong(op)
	case arm.SingleDataSwap:
		mc.armSingleDataSwap(op)
	case arm.BranchExchange:
		mc.armBranchExchange(op)
	case arm.HalfwordTransferRegister, arm.HalfwordTransferImmediate:
		mc.armHalfwordTransfer(op)
	case arm.SingleDataTransfer:
		mc.armSingleDataTransfer(op)
	case arm.BlockDataTransfer:
		mc.armBlockDataTransfer(op)
	case arm.Branch:
		mc.armBranch(op)
	case arm.SoftwareInterrupt:
		mc.raiseSWI()
	case arm.CoprocessorDataTransfer, arm.CoprocessorDataOperation, arm.CoprocessorRegisterTransfer:
		logger.Logf(mc.env, "CPU", "coprocessor access %08x at %08x", op, mc.executingAddr())
		mc.raiseUndefined(op)
	default:
		mc.raiseUndefined(op)
	}
}

// armOperand2 evaluates the second operand of a data-processing
// instruction: either a rotated 8-bit immediate or a shifted register. The
// returned carry is the shifter carry-out; regShift reports whether the
// shift count came from a register (which affects an R15 operand read).
func (mc *CPU) armOperand2(op uint32) (value uint32, carry bool, regShift bool) {
	carry = mc.Regs.CPSR().C

	if op&0x02000000 != 0 {
		imm := op & 0xFF
		rot := ((op >> 8) & 0xF) * 2
		value = bits.RotateRight32(imm, uint(rot))
		if rot != 0 {
			carry = value&0x80000000 != 0
		}
		return value, carry, false
	}

	rm := int(op & 0xF)
	shiftType := int((op >> 5) & 3)

	if op&0x10 != 0 {
		// register-supplied shift count. an R15 operand observes an extra 4
		// to account for the internal cycle
		rs := int((op >> 8) & 0xF)
		amount := mc.Regs.Get(rs) & 0xFF
		rmVal := mc.Regs.Get(rm)
		if rm == 15 {
			rmVal += 4
		}
		value, carry = barrelShift(shiftType, rmVal, amount, carry, true)
		mc.cycles++
		return value, carry, true
	}

	amount := (op >> 7) & 0x1F
	value, carry = barrelShift(shiftType, mc.Regs.Get(rm), amount, carry, false)
	return value, carry, false
}

func (mc *CPU) armDataProcessing(op uint32) {
	opcode := int((op >> 21) & 0xF)
	s := op&0x00100000 != 0

	// the test operations without the S bit are the PSR transfers
	if !s && opcode >= opTST && opcode <= opCMN {
		mc.armPSRTransfer(op)
		return
	}

	rn := int((op >> 16) & 0xF)
	rd := int((op >> 12) & 0xF)

	op2, shiftCarry, regShift := mc.armOperand2(op)

	rnVal := mc.Regs.Get(rn)
	if rn == 15 && regShift {
		rnVal += 4
	}

	res := alu(opcode, rnVal, op2, mc.Regs.CPSR().C)

	writes := aluWritesResult(opcode)
	if writes {
		mc.Regs.Set(rd, res.value)
	}

	if s {
		if rd == 15 && writes {
			// return-from-exception idiom: restore CPSR from SPSR
			mc.Regs.LoadCPSR(mc.Regs.SPSR().Value())
		} else {
			c := shiftCarry
			v := mc.Regs.CPSR().V
			if res.arithmetic {
				c = res.c
				v = res.v
			}
			mc.Regs.SetCPSRFlagsOnly(res.n, res.z, c, v)
		}
	}

	if rd == 15 && writes {
		mc.branchTo(res.value)
		mc.cycles += 2
	}
}

// armPSRTransfer implements MRS and MSR, which occupy the test-operation
// encodings with the S bit clear.
func (mc *CPU) armPSRTransfer(op uint32) {
	spsr := op&0x00400000 != 0

	if op&0x00200000 == 0 {
		// MRS
		rd := int((op >> 12) & 0xF)
		if spsr {
			mc.Regs.Set(rd, mc.Regs.SPSR().Value())
		} else {
			mc.Regs.Set(rd, mc.Regs.CPSR().Value())
		}
		return
	}

	// MSR. the field mask selects which bytes of the PSR are written
	var value uint32
	if op&0x02000000 != 0 {
		imm := op & 0xFF
		rot := ((op >> 8) & 0xF) * 2
		value = bits.RotateRight32(imm, uint(rot))
	} else {
		value = mc.Regs.Get(int(op & 0xF))
	}

	var mask uint32
	if op&0x00080000 != 0 {
		mask |= 0xFF000000
	}
	if op&0x00040000 != 0 {
		mask |= 0x00FF0000
	}
	if op&0x00020000 != 0 {
		mask |= 0x0000FF00
	}
	if op&0x00010000 != 0 {
		mask |= 0x000000FF
	}

	if spsr {
		cur := mc.Regs.SPSR().Value()
		var next registers.Status
		next.Load((cur &^ mask) | (value & mask))
		mc.Regs.SetSPSR(next)
		return
	}

	// User mode can only write the flag byte of CPSR
	if !mc.Regs.CPSR().Mode().Privileged() {
		mask &= 0xFF000000
	}

	cur := mc.Regs.CPSR().Value()
	mc.Regs.LoadCPSR((cur &^ mask) | (value & mask))
}

func (mc *CPU) armMultiply(op uint32) {
	rd := int((op >> 16) & 0xF)
	rn := int((op >> 12) & 0xF)
	rs := int((op >> 8) & 0xF)
	rm := int(op & 0xF)

	result := mc.Regs.Get(rm) * mc.Regs.Get(rs)
	if op&0x00200000 != 0 {
		result += mc.Regs.Get(rn)
		mc.cycles++
	}
	mc.Regs.Set(rd, result)

	if op&0x00100000 != 0 {
		sr := mc.Regs.CPSR()
		mc.Regs.SetCPSRFlagsOnly(result&0x80000000 != 0, result == 0, sr.C, sr.V)
	}

	mc.cycles += 2
}

func (mc *CPU) armMultiplyLong(op uint32) {
	rdHi := int((op >> 16) & 0xF)
	rdLo := int((op >> 12) & 0xF)
	rs := int((op >> 8) & 0xF)
	rm := int(op & 0xF)

	var result uint64
	if op&0x00400000 != 0 {
		result = uint64(int64(int32(mc.Regs.Get(rm))) * int64(int32(mc.Regs.Get(rs))))
	} else {
		result = uint64(mc.Regs.Get(rm)) * uint64(mc.Regs.Get(rs))
	}

	if op&0x00200000 != 0 {
		acc := uint64(mc.Regs.Get(rdHi))<<32 | uint64(mc.Regs.Get(rdLo))
		result += acc
		mc.cycles++
	}

	mc.Regs.Set(rdLo, uint32(result))
	mc.Regs.Set(rdHi, uint32(result>>32))

	if op&0x00100000 != 0 {
		sr := mc.Regs.CPSR()
		mc.Regs.SetCPSRFlagsOnly(result&0x8000000000000000 != 0, result == 0, sr.C, sr.V)
	}

	mc.cycles += 3
}

func (mc *CPU) armSingleDataSwap(op uint32) {
	rn := int((op >> 16) & 0xF)
	rd := int((op >> 12) & 0xF)
	rm := int(op & 0xF)
	addr := mc.Regs.Get(rn)

	if op&0x00400000 != 0 {
		tmp := mc.mem.ReadByte(addr)
		mc.mem.WriteByte(addr, uint8(mc.Regs.Get(rm)))
		mc.Regs.Set(rd, uint32(tmp))
	} else {
		tmp := mc.mem.ReadWord(addr)
		mc.mem.WriteWord(addr, mc.Regs.Get(rm))
		mc.Regs.Set(rd, tmp)
	}

	mc.cycles += 3
}

func (mc *CPU) armBranchExchange(op uint32) {
	target := mc.Regs.Get(int(op & 0xF))
	mc.Regs.SetThumb(target&1 != 0)
	mc.branchTo(target)
	mc.cycles += 2
}

func (mc *CPU) armHalfwordTransfer(op uint32) {
	pre := op&0x01000000 != 0
	up := op&0x00800000 != 0
	imm := op&0x00400000 != 0
	writeback := op&0x00200000 != 0
	load := op&0x00100000 != 0
	rn := int((op >> 16) & 0xF)
	rd := int((op >> 12) & 0xF)
	signed := op&0x40 != 0
	half := op&0x20 != 0

	var offset uint32
	if imm {
		offset = ((op >> 4) & 0xF0) | (op & 0xF)
	} else {
		offset = mc.Regs.Get(int(op & 0xF))
	}

	base := mc.Regs.Get(rn)
	offsetBase := base
	if up {
		offsetBase += offset
	} else {
		offsetBase -= offset
	}

	addr := base
	if pre {
		addr = offsetBase
	}

	if load {
		var value uint32
		switch {
		case signed && half:
			if addr&1 != 0 {
				// a signed halfword load from an odd address degenerates to
				// a sign-extended byte load
				value = uint32(int32(int8(mc.mem.ReadByte(addr))))
			} else {
				value = uint32(int32(int16(mc.mem.ReadHalf(addr))))
			}
		case signed:
			value = uint32(int32(int8(mc.mem.ReadByte(addr))))
		default:
			value = bits.RotateRight32(uint32(mc.mem.ReadHalf(addr)), uint(8*(addr&1)))
		}

		if !pre || writeback {
			if rd != rn {
				mc.Regs.Set(rn, offsetBase)
			}
		}

		mc.Regs.Set(rd, value)
		if rd == 15 {
			mc.branchTo(value)
			mc.cycles += 2
		}
		mc.cycles += 2
	} else {
		value := mc.Regs.Get(rd)
		if rd == 15 {
			value += 4
		}
		mc.mem.WriteHalf(addr, uint16(value))

		if !pre || writeback {
			mc.Regs.Set(rn, offsetBase)
		}
		mc.cycles++
	}
}

func (mc *CPU) armSingleDataTransfer(op uint32) {
	regOffset := op&0x02000000 != 0
	pre := op&0x01000000 != 0
	up := op&0x00800000 != 0
	byteWidth := op&0x00400000 != 0
	writeback := op&0x00200000 != 0
	load := op&0x00100000 != 0
	rn := int((op >> 16) & 0xF)
	rd := int((op >> 12) & 0xF)

	var offset uint32
	if regOffset {
		rm := int(op & 0xF)
		shiftType := int((op >> 5) & 3)
		amount := (op >> 7) & 0x1F
		offset, _ = barrelShift(shiftType, mc.Regs.Get(rm), amount, mc.Regs.CPSR().C, false)
	} else {
		offset = op & 0xFFF
	}

	base := mc.Regs.Get(rn)
	offsetBase := base
	if up {
		offsetBase += offset
	} else {
		offsetBase -= offset
	}

	addr := base
	if pre {
		addr = offsetBase
	}

	if load {
		var value uint32
		if byteWidth {
			value = uint32(mc.mem.ReadByte(addr))
		} else {
			value = mc.mem.ReadWord(addr)
		}

		if !pre || writeback {
			if rd != rn {
				mc.Regs.Set(rn, offsetBase)
			}
		}

		mc.Regs.Set(rd, value)
		if rd == 15 {
			mc.branchTo(value)
			mc.cycles += 2
		}
		mc.cycles += 2
	} else {
		value := mc.Regs.Get(rd)
		if rd == 15 {
			// a store of R15 writes one instruction ahead of the prefetch
			// offset
			value += 4
		}

		if byteWidth {
			mc.mem.WriteByte(addr, uint8(value))
		} else {
			mc.mem.WriteWord(addr, value)
		}

		if !pre || writeback {
			mc.Regs.Set(rn, offsetBase)
		}
		mc.cycles++
	}
}

func (mc *CPU) armBlockDataTransfer(op uint32) {
	pre := op&0x01000000 != 0
	up := op&0x00800000 != 0
	sbit := op&0x00400000 != 0
	writeback := op&0x00200000 != 0
	load := op&0x00100000 != 0
	rn := int((op >> 16) & 0xF)
	rlist := uint16(op & 0xFFFF)

	// an empty register list transfers R15 only and advances the base by 16
	// words
	count := bits.PopCount16(rlist)
	if rlist == 0 {
		rlist = 0x8000
		count = 16
	}

	base := mc.Regs.Get(rn)
	var start, newBase uint32
	if up {
		newBase = base + uint32(4*count)
		start = base
		if pre {
			start += 4
		}
	} else {
		newBase = base - uint32(4*count)
		start = newBase
		if !pre {
			start += 4
		}
	}

	baseInList := rlist&(1<<rn) != 0
	pcInList := rlist&0x8000 != 0

	// the user-bank transfer variant. not used when an LDM restores CPSR
	userBank := sbit && !(load && pcInList)

	lowest := -1
	for i := 0; i < 16; i++ {
		if rlist&(1<<i) != 0 {
			lowest = i
			break
		}
	}

	addr := start
	for i := 0; i < 16; i++ {
		if rlist&(1<<i) == 0 {
			continue
		}

		if load {
			value := mc.mem.ReadWord(addr &^ 3)
			if userBank {
				mc.Regs.SetUser(i, value)
			} else {
				mc.Regs.Set(i, value)
			}
		} else {
			var value uint32
			switch {
			case i == rn && i == lowest:
				value = base
			case i == rn:
				value = newBase
			case userBank:
				value = mc.Regs.GetUser(i)
			default:
				value = mc.Regs.Get(i)
				if i == 15 {
					value += 4
				}
			}
			mc.mem.WriteWord(addr&^3, value)
		}

		addr += 4
		mc.cycles++
	}

	// writeback. suppressed for an LDM with the base in the register list
	if writeback && !(load && baseInList) {
		mc.Regs.Set(rn, newBase)
	}

	if load && pcInList {
		if sbit {
			mc.Regs.LoadCPSR(mc.Regs.SPSR().Value())
		}
		mc.branchTo(mc.Regs.Get(15))
		mc.cycles += 2
	}
}

func (mc *CPU) armBranch(op uint32) {
	offset := uint32(bits.SignExtend(op&0x00FFFFFF, 24)) << 2

	if op&0x01000000 != 0 {
		mc.Regs.Set(14, mc.Regs.PC()-4)
	}

	mc.branchTo(mc.Regs.PC() + offset)
	mc.cycles += 2
}
