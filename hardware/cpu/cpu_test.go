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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/hardware/cpu"
	"github.com/jetsetilly/pocketcore/hardware/cpu/registers"
	"github.com/jetsetilly/pocketcore/hardware/memory"
	"github.com/jetsetilly/pocketcore/test"
)

const codeBase = 0x03000000

// prepare returns a CPU wired to a real memory bus, with the given opcodes
// at codeBase. The pipeline is not yet primed: poke any further memory and
// registers, then call prime.
func prepare(t *testing.T, opcodes ...uint32) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory(nil, make([]byte, cartridgeloader.FirmwareSize))
	mc := cpu.NewCPU(nil, mem)

	for i, op := range opcodes {
		mem.WriteWord(codeBase+uint32(i)*4, op)
	}

	mc.Regs.SetMode(registers.System)
	mc.Regs.SetPC(codeBase)

	return mc, mem
}

// prepareThumb is like prepare but enters Thumb state and writes halfword
// opcodes.
func prepareThumb(t *testing.T, opcodes ...uint16) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory(nil, make([]byte, cartridgeloader.FirmwareSize))
	mc := cpu.NewCPU(nil, mem)

	for i, op := range opcodes {
		mem.WriteHalf(codeBase+uint32(i)*2, op)
	}

	mc.Regs.SetMode(registers.System)
	mc.Regs.SetThumb(true)
	mc.Regs.SetPC(codeBase)

	return mc, mem
}

func TestADDSOverflow(t *testing.T) {
	// ADDS R2, R0, R1
	mc, _ := prepare(t, 0xE0902001)
	mc.Regs.Set(0, 0x7FFFFFFF)
	mc.Regs.Set(1, 1)

	mc.Step() // pipeline refill
	mc.Step()

	test.ExpectEquality(t, mc.Regs.Get(2), uint32(0x80000000))
	sr := mc.Regs.CPSR()
	test.ExpectSuccess(t, sr.N)
	test.ExpectFailure(t, sr.Z)
	test.ExpectFailure(t, sr.C)
	test.ExpectSuccess(t, sr.V)
}

func TestLDRRotatedMisalignment(t *testing.T) {
	// LDR R0, [R1] with R1 three bytes into a word boundary
	mc, mem := prepare(t, 0xE5910000)
	mem.WriteWord(codeBase+0x20, 0xDEADBEEF)
	mc.Regs.Set(1, codeBase+0x23)

	mc.Step()
	mc.Step()

	// the load returns the aligned word rotated by 8*(addr&3) bits
	test.ExpectEquality(t, mc.Regs.Get(0), uint32(0xADBEEFDE))
}

func TestLDMBaseInListLowest(t *testing.T) {
	// LDMIA R0!, {R0,R1,R2} with the base the lowest-numbered register in
	// the list: writeback is suppressed because the base is loaded
	mc, mem := prepare(t, 0xE8B00007)
	mem.WriteWord(codeBase+0x40, 1)
	mem.WriteWord(codeBase+0x44, 2)
	mem.WriteWord(codeBase+0x48, 3)
	mc.Regs.Set(0, codeBase+0x40)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.Get(0), uint32(1))
	test.ExpectEquality(t, mc.Regs.Get(1), uint32(2))
	test.ExpectEquality(t, mc.Regs.Get(2), uint32(3))
}

func TestSTMBaseInListLowest(t *testing.T) {
	// STMIA R0!, {R0,R1}: the base is the lowest-numbered member so the
	// old base value is stored
	mc, mem := prepare(t, 0xE8A00003)
	mc.Regs.Set(0, codeBase+0x40)
	mc.Regs.Set(1, 0x11111111)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mem.ReadWord(codeBase+0x40), uint32(codeBase+0x40))
	test.ExpectEquality(t, mem.ReadWord(codeBase+0x44), uint32(0x11111111))
	test.ExpectEquality(t, mc.Regs.Get(0), uint32(codeBase+0x48))
}

func TestThumbLongBranchLink(t *testing.T) {
	// BL prefix with zero offset then suffix with offset 0x10
	mc, _ := prepareThumb(t, 0xF000, 0xF810)

	mc.Step() // pipeline refill
	mc.Step() // prefix
	mc.Step() // suffix

	// the return address is the instruction after the pair, with the Thumb
	// bit set
	test.ExpectEquality(t, mc.Regs.Get(14), uint32(codeBase+0x05))

	// target = LR staged by the prefix (instruction address + 4) plus the
	// suffix offset shifted left once
	test.ExpectEquality(t, mc.Regs.PC(), uint32(codeBase+0x04+0x20))

	// Thumb state preserved
	test.ExpectSuccess(t, mc.Regs.CPSR().T)
}

func TestBranchAndLink(t *testing.T) {
	// BL with a zero offset field: target = address + 8
	mc, _ := prepare(t, 0xEB000000)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.PC(), uint32(codeBase+8))
	test.ExpectEquality(t, mc.Regs.Get(14), uint32(codeBase+4))
}

func TestSWIEntry(t *testing.T) {
	mc, _ := prepare(t, 0xEF000000)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.CPSR().Mode(), registers.Supervisor)
	test.ExpectSuccess(t, mc.Regs.CPSR().I)
	test.ExpectEquality(t, mc.Regs.PC(), uint32(0x08))

	// the banked return address points at the instruction after the SWI
	test.ExpectEquality(t, mc.Regs.Get(14), uint32(codeBase+4))

	// SPSR holds the pre-exception status
	test.ExpectEquality(t, mc.Regs.SPSR().Mode(), registers.System)
}

func TestConditionSkip(t *testing.T) {
	// ADDEQ R0, R0, #1 with Z clear is not executed
	mc, _ := prepare(t, 0x02800001)
	mc.Regs.Set(0, 0)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.Get(0), uint32(0))
}

func TestBXToThumb(t *testing.T) {
	// BX R0 with bit 0 set enters Thumb state
	mc, _ := prepare(t, 0xE12FFF10)
	mc.Regs.Set(0, codeBase+0x41)

	mc.Step()
	mc.Step()

	test.ExpectSuccess(t, mc.Regs.CPSR().T)
	test.ExpectEquality(t, mc.Regs.PC(), uint32(codeBase+0x40))
}

func TestMSRModeChange(t *testing.T) {
	// MSR CPSR, R0: a privileged mode change swaps the register banks
	mc, _ := prepare(t, 0xE129F000)

	// IRQ mode with IRQs masked, ARM state
	mc.Regs.Set(0, 0x00000092)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.CPSR().Mode(), registers.IRQ)
	test.ExpectSuccess(t, mc.Regs.CPSR().I)
}

func TestOperandPCOffset(t *testing.T) {
	// MOV R0, PC: the observed value is the instruction address plus 8
	mc, _ := prepare(t, 0xE1A0000F)

	mc.Step()
	mc.Step()

	test.ExpectEquality(t, mc.Regs.Get(0), uint32(codeBase+8))
}

func TestIRQEntry(t *testing.T) {
	mc, _ := prepare(t, 0xE1A00000, 0xE1A00000) // MOV R0, R0 x2

	mc.Step() // pipeline refill
	mc.Step() // first instruction retires

	// clear the I mask so the interrupt can be taken
	sr := mc.Regs.CPSR()
	sr.I = false
	mc.Regs.LoadCPSR(sr.Value())

	mc.RaiseIRQ()

	test.ExpectEquality(t, mc.Regs.CPSR().Mode(), registers.IRQ)
	test.ExpectSuccess(t, mc.Regs.CPSR().I)
	test.ExpectEquality(t, mc.Regs.PC(), uint32(0x18))

	// the banked return address is the resume address plus 4, so the
	// conventional SUBS PC,LR,#4 return resumes at the second instruction
	test.ExpectEquality(t, mc.Regs.Get(14), uint32(codeBase+4+4))
}
