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
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/cpu/registers"
	"github.com/jetsetilly/pocketcore/hardware/memory/bus"
	"github.com/jetsetilly/pocketcore/logger"
)

// exception vectors
const (
	vecReset     = 0x00000000
	vecUndefined = 0x00000004
	vecSWI       = 0x00000008
	vecIRQ       = 0x00000018
)

// CPU implements the processor: a two-stage prefetch pipeline in front of a
// fetch/decode/execute loop, with banked registers and exception entry.
//
// While the pipeline is primed the PC register holds the address of the
// instruction being fetched, two instructions ahead of the one being
// executed. Reading R15 as an operand therefore naturally observes the
// prefetch offset (+8 in ARM state, +4 in Thumb state).
type CPU struct {
	env *environment.Environment
	mem bus.Bus

	Regs registers.File

	// the two queued pipeline words. pipeline[0] is the next instruction to
	// execute; pipeline[1] the one after
	pipeline [2]uint32

	// primed is false when a branch has emptied the pipeline. the next Step
	// refills the pipeline without executing an instruction
	primed bool

	// branchTaken is set by any instruction that writes R15. the decoder
	// refills the pipeline on the next step
	branchTaken bool

	// Halted is latched by a write to the halt-control register and
	// cleared by the scheduler when an interrupt is requested
	Halted bool

	// cycle cost reported by the most recent Step
	cycles int
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment, mem bus.Bus) *CPU {
	mc := &CPU{
		env: env,
		mem: mem,
	}
	mc.Reset()
	return mc
}

// Reset places the CPU in the state it is in out of reset: Supervisor mode,
// ARM state, interrupts masked, PC at the reset vector, pipeline empty.
// Register contents are randomised when the preference is enabled.
func (mc *CPU) Reset() {
	mc.Regs = registers.NewFile()

	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		for i := 0; i < 15; i++ {
			mc.Regs.Set(i, uint32(mc.env.Random.NoRewind(0x7fffffff)))
		}
	}

	mc.Regs.SetPC(vecReset)
	mc.pipeline[0] = 0
	mc.pipeline[1] = 0
	mc.primed = false
	mc.branchTaken = false
	mc.Halted = false
}

// Primed returns true if the pipeline is full. Interrupts are only taken
// from the primed state.
func (mc *CPU) Primed() bool {
	return mc.primed
}

// instrSize returns the width of an instruction in the current state.
func (mc *CPU) instrSize() uint32 {
	if mc.Regs.CPSR().T {
		return 2
	}
	return 4
}

// fetch reads an instruction word/halfword at addr, informing the bus of
// the fetch so that firmware read-gating works.
func (mc *CPU) fetch(addr uint32) uint32 {
	thumb := mc.Regs.CPSR().T
	mc.mem.SetExecutingPC(addr, thumb)
	if thumb {
		return uint32(mc.mem.ReadHalf(addr &^ 1))
	}
	return mc.mem.ReadWord(addr &^ 3)
}

// flush empties the pipeline. The next Step refills it from the current PC.
func (mc *CPU) flush() {
	mc.primed = false
	mc.branchTaken = false
}

// Step advances the CPU by one instruction, or by the pipeline refill that
// follows a branch. It returns the number of cycles consumed.
func (mc *CPU) Step() int {
	if mc.Halted {
		return 1
	}

	size := mc.instrSize()

	if !mc.primed {
		// refill the pipeline from the current PC without executing
		pc := mc.Regs.PC()
		mc.pipeline[0] = mc.fetch(pc)
		mc.pipeline[1] = mc.fetch(pc + size)
		mc.Regs.SetPC(pc + 2*size)
		mc.primed = true
		return 2
	}

	op := mc.pipeline[0]
	mc.pipeline[0] = mc.pipeline[1]
	mc.pipeline[1] = mc.fetch(mc.Regs.PC())

	mc.cycles = 1
	if mc.Regs.CPSR().T {
		mc.executeThumb(uint16(op))
	} else {
		mc.executeARM(op)
	}

	// an exception entry has already flushed the pipeline and set the PC
	// to the vector
	if mc.branchTaken || !mc.primed {
		mc.flush()
	} else {
		mc.Regs.SetPC(mc.Regs.PC() + size)
	}

	return mc.cycles
}

// executingAddr is the address of the instruction currently being executed.
func (mc *CPU) executingAddr() uint32 {
	return mc.Regs.PC() - 2*mc.instrSize()
}

// branchTo writes the PC and signals a pipeline flush. The low bits of the
// target are masked per the current state.
func (mc *CPU) branchTo(addr uint32) {
	if mc.Regs.CPSR().T {
		addr &^= 1
	} else {
		addr &^= 3
	}
	mc.Regs.SetPC(addr)
	mc.branchTaken = true
}

// exceptionEntry performs the common part of every exception: bank the
// return address and CPSR, switch mode, enter ARM state with IRQs masked
// and jump to the vector.
func (mc *CPU) exceptionEntry(mode registers.Mode, ret uint32, vector uint32) {
	cpsr := mc.Regs.CPSR()
	mc.Regs.SetMode(mode)
	mc.Regs.SetSPSR(cpsr)
	mc.Regs.Set(14, ret)
	mc.Regs.SetThumb(false)
	mc.Regs.SetIRQDisable(true)
	mc.Regs.SetPC(vector)
	mc.flush()
}

// raiseSWI enters the Supervisor mode software interrupt vector.
func (mc *CPU) raiseSWI() {
	size := mc.instrSize()
	mc.exceptionEntry(registers.Supervisor, mc.Regs.PC()-size, vecSWI)
}

// raiseUndefined enters the Undefined mode trap vector. Reserved
// coprocessor opcodes arrive here too, per the error handling design.
func (mc *CPU) raiseUndefined(opcode uint32) {
	if mc.env != nil && mc.env.Prefs.Diagnostics.Get().(bool) {
		logger.Logf(mc.env, "CPU", "undefined instruction %08x at %08x", opcode, mc.executingAddr())
	}
	size := mc.instrSize()
	mc.exceptionEntry(registers.Undefined, mc.Regs.PC()-size, vecUndefined)
}

// RaiseIRQ enters the IRQ vector. The scheduler calls this between
// instructions when an unmasked interrupt is pending; the pipeline must be
// primed.
//
// The banked return address is the resume address plus 4 in both ARM and
// Thumb state, so the conventional SUBS PC,LR,#4 return works from either.
func (mc *CPU) RaiseIRQ() {
	resume := mc.Regs.PC() - 2*mc.instrSize()
	mc.exceptionEntry(registers.IRQ, resume+4, vecIRQ)
}
