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

// Package dma implements the four-channel prioritized DMA engine described
// in spec.md §4.4: four trigger classes, working-shadow latching at the
// enable edge, and the per-word increment/decrement/fixed/reload addressing
// modes.
package dma

import (
	"github.com/jetsetilly/pocketcore/hardware/memory/bus"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
)

// TriggerClass identifies when a channel's transfer fires.
type TriggerClass int

const (
	Immediate TriggerClass = iota
	VBlank
	HBlank
	Special
)

const (
	destIncrement = iota
	destDecrement
	destFixed
	destIncrementReload
)

const (
	srcIncrement = iota
	srcDecrement
	srcFixed
)

// sourceAddressMask and destAddressMask are the per-channel address width
// limits from spec.md §3.
var sourceAddressMask = [4]uint32{0x07FFFFFF, 0x0FFFFFFF, 0x0FFFFFFF, 0x0FFFFFFF}
var destAddressMask = [4]uint32{0x07FFFFFF, 0x07FFFFFF, 0x07FFFFFF, 0x0FFFFFFF}

type channel struct {
	srcWorking, dstWorking uint32
	countWorking           uint32
	armed                  bool
}

// Engine is the four-channel DMA controller. It is driven both by the I/O
// register file's enable-edge hook and by the scheduler's trigger calls on
// HBlank/VBlank/timer-FIFO edges.
type Engine struct {
	io  *ioregs.Registers
	bus bus.Bus

	ch [4]channel

	// lastLatched models the "open bus" value DMA reuses when its source
	// falls below work-RAM, per spec.md §4.4 step 2.
	lastLatched uint32

	eepromWidthLatched bool

	// running is true while a transfer is in flight. SRAM reads during a
	// transfer return zero, which the cartridge checks through Active
	running bool

	// FIFONeedsRefill is polled by Engine.Update(Special) and cleared once
	// consumed; the timer cascade sets these when a FIFO's timer overflows.
	FIFONeedsRefill [2]bool

	// EEPROMWidthDetected is called the first time a DMA transfer's count
	// and destination identify the EEPROM address width, per spec.md §4.4.
	EEPROMWidthDetected func(addressBits int)
}

// NewEngine constructs a DMA engine bound to the given register file and
// bus. The register file's DMAEnabled hook must be wired to
// Engine.TriggerImmediate by the caller (hardware.NewGBA).
func NewEngine(io *ioregs.Registers, b bus.Bus) *Engine {
	return &Engine{io: io, bus: b}
}

func (e *Engine) cntH(ch int) uint16 {
	return e.io.Raw(uint32(ioregs.DMA0CNT_H) + uint32(ch)*12)
}

// TriggerImmediate latches and runs channel ch right away. Bound to the
// register file's DMAEnabled hook: the high halfword of a DMA control
// register transitioning 0->1 dispatches with trigger class "now".
func (e *Engine) TriggerImmediate(ch int) {
	cnt := e.cntH(ch)
	startTiming := (cnt >> 12) & 3
	if startTiming != 0 {
		// not an immediate-trigger channel; latch only, the real trigger
		// arrives later via Update.
		e.latch(ch)
		return
	}
	e.latch(ch)
	e.run(ch, Immediate)
}

func (e *Engine) latch(ch int) {
	sadL := uint32(e.io.Raw(uint32(ioregs.DMA0SAD_L) + uint32(ch)*12))
	sadH := uint32(e.io.Raw(uint32(ioregs.DMA0SAD_H) + uint32(ch)*12))
	dadL := uint32(e.io.Raw(uint32(ioregs.DMA0DAD_L) + uint32(ch)*12))
	dadH := uint32(e.io.Raw(uint32(ioregs.DMA0DAD_H) + uint32(ch)*12))
	cntL := uint32(e.io.Raw(uint32(ioregs.DMA0CNT_L) + uint32(ch)*12))

	e.ch[ch].srcWorking = (sadL | sadH<<16) & sourceAddressMask[ch]
	e.ch[ch].dstWorking = (dadL | dadH<<16) & destAddressMask[ch]
	e.ch[ch].countWorking = cntL
	if e.ch[ch].countWorking == 0 {
		if ch == 3 {
			e.ch[ch].countWorking = 0x10000
		} else {
			e.ch[ch].countWorking = 0x4000
		}
	}
	e.ch[ch].armed = true
}

// Update is called by the video and timer components on the HBlank, VBlank
// and FIFO-refill edges. For each channel 0..3, in priority order, whose
// enable bit is set and whose start-timing field matches class, a full
// transfer runs to completion before the next channel is even considered.
func (e *Engine) Update(class TriggerClass) {
	for ch := 0; ch < 4; ch++ {
		if !e.ch[ch].armed {
			continue
		}
		cnt := e.cntH(ch)
		if cnt&0x8000 == 0 {
			e.ch[ch].armed = false
			continue
		}
		startTiming := TriggerClass((cnt >> 12) & 3)
		if startTiming != class {
			continue
		}
		if class == Special {
			if ch == 1 || ch == 2 {
				if !e.specialFIFOEligible(ch) {
					continue
				}
			} else if ch != 3 {
				continue
			}
		}
		e.run(ch, class)
	}
}

func (e *Engine) specialFIFOEligible(ch int) bool {
	dst := e.ch[ch].dstWorking
	if dst != 0x040000A0 && dst != 0x040000A4 {
		return false
	}
	fifo := 0
	if dst == 0x040000A4 {
		fifo = 1
	}
	return e.FIFONeedsRefill[fifo]
}

// Reset disarms every channel and clears the FIFO refill flags.
func (e *Engine) Reset() {
	e.ch = [4]channel{}
	e.lastLatched = 0
	e.FIFONeedsRefill = [2]bool{}
}

// Active reports whether a transfer is in flight.
func (e *Engine) Active() bool {
	return e.running
}

func (e *Engine) run(ch int, class TriggerClass) {
	e.running = true
	defer func() { e.running = false }()

	cnt := e.cntH(ch)
	wide := cnt&0x0400 != 0
	destMode := (cnt >> 5) & 3
	srcMode := (cnt >> 7) & 3
	repeat := cnt&0x0200 != 0
	irq := cnt&0x4000 != 0

	count := e.ch[ch].countWorking
	special := class == Special && (ch == 1 || ch == 2)
	if special {
		count = 4
		wide = true
	}

	for i := uint32(0); i < count; i++ {
		e.transferOne(ch, wide, uint32(srcMode), uint32(destMode), special)
	}

	if class == Special && (ch == 1 || ch == 2) {
		fifo := 0
		if e.ch[ch].dstWorking == 0x040000A4 {
			fifo = 1
		}
		e.FIFONeedsRefill[fifo] = false
	}

	if repeat && class != Immediate {
		if destMode == destIncrementReload {
			dadL := uint32(e.io.Raw(uint32(ioregs.DMA0DAD_L) + uint32(ch)*12))
			dadH := uint32(e.io.Raw(uint32(ioregs.DMA0DAD_H) + uint32(ch)*12))
			e.ch[ch].dstWorking = (dadL | dadH<<16) & destAddressMask[ch]
		}
		cntL := uint32(e.io.Raw(uint32(ioregs.DMA0CNT_L) + uint32(ch)*12))
		e.ch[ch].countWorking = cntL
		if e.ch[ch].countWorking == 0 {
			if ch == 3 {
				e.ch[ch].countWorking = 0x10000
			} else {
				e.ch[ch].countWorking = 0x4000
			}
		}
	} else {
		e.ch[ch].armed = false
		e.io.SetRaw(uint32(ioregs.DMA0CNT_H)+uint32(ch)*12, cnt&^0x8000)
	}

	if irq {
		e.io.RaiseInterrupt(ioregs.IntDMA0 << uint(ch))
	}

	e.detectEEPROMWidth(ch, count)
}

func (e *Engine) transferOne(ch int, wide bool, srcMode, destMode uint32, special bool) {
	src := e.ch[ch].srcWorking
	dst := e.ch[ch].dstWorking

	width := uint32(2)
	if wide {
		width = 4
	}

	// Step 2: reads below work-RAM base reuse the last-latched value
	// (open-bus modeling of an inaccessible source).
	if src < 0x02000000 {
		if wide {
			e.bus.WriteWord(dst, e.lastLatched)
		} else {
			v := uint16(e.lastLatched)
			e.writeHalfDoubled(dst, v)
		}
	} else if wide {
		v := e.bus.ReadWord(src)
		e.lastLatched = v
		e.bus.WriteWord(dst, v)
	} else {
		v := uint32(e.bus.ReadHalf(src))
		e.lastLatched = v | v<<16
		e.writeHalfDoubled(dst, uint16(v))
	}

	src = advance(src, srcMode == srcIncrement, srcMode == srcDecrement, width)
	if !special {
		dst = advance(dst, destMode == destIncrement || destMode == destIncrementReload, destMode == destDecrement, width)
	}

	e.ch[ch].srcWorking = src & sourceAddressMask[ch]
	e.ch[ch].dstWorking = dst & destAddressMask[ch]
}

// writeHalfDoubled implements the rule that a halfword write to an address
// whose bit 1 is set writes the high half of the latched doubled value.
func (e *Engine) writeHalfDoubled(dst uint32, v uint16) {
	if dst&2 != 0 {
		e.bus.WriteHalf(dst, uint16(e.lastLatched>>16))
	} else {
		e.bus.WriteHalf(dst, v)
	}
}

func advance(addr uint32, inc, dec bool, width uint32) uint32 {
	switch {
	case inc:
		return addr + width
	case dec:
		return addr - width
	default:
		return addr
	}
}

// detectEEPROMWidth latches the EEPROM address-register width the first
// time a DMA transfer targets the EEPROM band with a recognised transfer
// count, per spec.md §4.4.
func (e *Engine) detectEEPROMWidth(ch int, count uint32) {
	if e.eepromWidthLatched {
		return
	}
	dst := e.ch[ch].dstWorking
	if dst < 0x0D000000 {
		return
	}
	var bits int
	switch count {
	case 9, 73:
		bits = 6
	case 17, 81:
		bits = 14
	default:
		return
	}
	e.eepromWidthLatched = true
	if e.EEPROMWidthDetected != nil {
		e.EEPROMWidthDetected(bits)
	}
}
