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

// Package bus defines the memory bus interface consumed by the CPU and DMA
// engine. The aggregate implementation lives in hardware/memory; this
// package exists so that hardware/cpu and hardware/dma can depend on the
// contract without importing the concrete RAM/IO/cartridge wiring.
package bus

// Bus is the width-aware read/write surface every memory access goes
// through, whether issued by the CPU fetch/execute loop or by the DMA
// engine's sub-accesses.
type Bus interface {
	ReadByte(addr uint32) uint8
	ReadHalf(addr uint32) uint16
	ReadWord(addr uint32) uint32
	WriteByte(addr uint32, v uint8)
	WriteHalf(addr uint32, v uint16)
	WriteWord(addr uint32, v uint32)

	// SetExecutingPC tells the bus the address the CPU is currently
	// fetching from, so firmware reads outside the firmware region can be
	// gated per spec.md §4.2.
	SetExecutingPC(addr uint32, thumb bool)
}

// DebuggerBus exposes the meta-operations used by diagnostic tooling: reads
// and writes that do not go through the normal open-bus/width machinery.
type DebuggerBus interface {
	PeekByte(addr uint32) uint8
	PokeByte(addr uint32, v uint8)
}
