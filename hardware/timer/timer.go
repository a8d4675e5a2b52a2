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

// Package timer implements the four-timer prescaled/cascaded counter
// cascade described in spec.md §4.5, including the audio-FIFO tick output
// that drives DMA's "special" trigger class.
package timer

import (
	"github.com/jetsetilly/pocketcore/hardware/dma"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
)

var prescaleDivider = [4]uint32{1, 64, 256, 1024}

type unit struct {
	counter  uint16
	reload   uint16
	control  uint16
	elapsed  uint32
	overflow bool // overflow signalled to the next timer this tick
}

// Cascade is the four-timer unit. It owns its own counter/reload/control
// shadows (refreshed from the register file on enable) and ticks them
// forward by the cycle delta the scheduler reports each step.
type Cascade struct {
	io  *ioregs.Registers
	dma *dma.Engine

	units [4]unit

	// fifoTick counts overflows of the timer selected for each audio FIFO.
	// the selected timer (0 or 1) is read out of SOUNDCNT_H by
	// soundTimerSelect each time it is needed.
	fifoTick [2]uint8
}

// NewCascade constructs a timer cascade bound to the register file (for
// reload/control access and IF) and the DMA engine (for the "special"
// audio-refill trigger).
func NewCascade(io *ioregs.Registers, d *dma.Engine) *Cascade {
	return &Cascade{io: io, dma: d}
}

// Reset returns every timer to its power-on state.
func (c *Cascade) Reset() {
	c.units = [4]unit{}
	c.fifoTick = [2]uint8{}
}

// ReloadWritten is bound to the register file's TimerReloadWritten hook: a
// write to a timer's counter register sets the reload value without
// touching the live counter.
func (c *Cascade) ReloadWritten(t int, v uint16) {
	c.units[t].reload = v
}

// Enable is bound to the register file's TimerEnabled hook: a timer
// control register's enable bit transitioning 0->1 reloads the counter and
// clears the subcycle accumulator.
func (c *Cascade) Enable(t int) {
	c.units[t].counter = c.units[t].reload
	c.units[t].elapsed = 0
	c.units[t].control = c.io.Raw(uint32(ioregs.TM0CNT_H) + uint32(t)*4)
	c.io.SetRaw(uint32(ioregs.TM0CNT_L)+uint32(t)*4, c.units[t].counter)
}

func (c *Cascade) soundTimerSelect(fifo int) int {
	soundcnt := c.io.Raw(ioregs.SOUNDCNT_H)
	if fifo == 0 {
		if soundcnt&0x0400 != 0 {
			return 1
		}
		return 0
	}
	if soundcnt&0x4000 != 0 {
		return 1
	}
	return 0
}

// Tick advances all four timers by delta cycles, honouring cascade
// ordering (T0 -> T1 -> T2 -> T3, single tick of carry per timer).
func (c *Cascade) Tick(delta uint32) {
	var specialNeeded bool

	for t := 0; t < 4; t++ {
		u := &c.units[t]
		control := c.io.Raw(uint32(ioregs.TM0CNT_H) + uint32(t)*4)
		u.control = control

		enabled := control&0x0080 != 0
		if !enabled {
			u.overflow = false
			continue
		}

		cascade := control&0x0004 != 0
		var increments uint32
		if cascade {
			if t > 0 && c.units[t-1].overflow {
				increments = 1
			}
		} else {
			u.elapsed += delta
			prescale := prescaleDivider[control&3]
			increments = u.elapsed / prescale
			u.elapsed = u.elapsed % prescale
		}

		u.overflow = false
		for i := uint32(0); i < increments; i++ {
			next := uint32(u.counter) + 1
			if next > 0xFFFF {
				u.counter = u.reload
				u.overflow = true
				if control&0x0040 != 0 {
					c.io.RaiseInterrupt(ioregs.IntTimer0 << uint(t))
				}
				c.onOverflow(t, &specialNeeded)
			} else {
				u.counter = uint16(next)
			}
		}

		c.io.SetRaw(uint32(ioregs.TM0CNT_L)+uint32(t)*4, u.counter)
	}

	if specialNeeded {
		c.dma.Update(dma.Special)
	}
}

func (c *Cascade) onOverflow(t int, specialNeeded *bool) {
	for fifo := 0; fifo < 2; fifo++ {
		if c.soundTimerSelect(fifo) != t {
			continue
		}
		c.fifoTick[fifo]++
		if c.fifoTick[fifo]&0x0F == 0 {
			c.dma.FIFONeedsRefill[fifo] = true
			*specialNeeded = true
		}
	}
}

// Reload returns the live counter value for timer t, used when the CPU
// reads TMxCNT_L directly without going through the register file's cache.
func (c *Cascade) Reload(t int) uint16 {
	return c.units[t].counter
}
