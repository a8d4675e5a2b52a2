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

package video

import (
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/clocks"
	"github.com/jetsetilly/pocketcore/hardware/dma"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
	"github.com/jetsetilly/pocketcore/hardware/memory/memorymap"
	"github.com/jetsetilly/pocketcore/hardware/video/coords"
)

// frame dimensions in pixels
const (
	Width  = 240
	Height = 160
)

// DISPSTAT fields
const (
	statVBlank      = 1 << 0
	statHBlank      = 1 << 1
	statVCountMatch = 1 << 2
	statVBlankIRQ   = 1 << 3
	statHBlankIRQ   = 1 << 4
	statVCountIRQ   = 1 << 5
)

// Video is the scan state machine and compositor. It is ticked by the
// scheduler with the cycle cost of each instruction and raises the HBlank,
// VBlank and VCount-match edges as the beam position crosses them.
type Video struct {
	env *environment.Environment
	io  *ioregs.Registers
	dma *dma.Engine

	palette *[memorymap.PaletteRAMSize]byte
	vram    *[memorymap.VRAMSize]byte
	oam     *[memorymap.OAMSize]byte

	// beam position. clock counts within the scanline
	clock    int
	scanline int
	frame    int

	// frameDrawn is set when the cycle counter wraps back to the start of
	// the frame and cleared by the scheduler once it has consumed the frame
	frameDrawn bool

	framebuffer [Width * Height]uint32

	// running affine positions for the two affine-capable backgrounds,
	// 20.8 fixed point. reset from the latched reference registers at
	// scanline 0 and advanced by (pb, pd) after each drawn scanline
	affineX [2]int32
	affineY [2]int32
}

// NewVideo is the preferred method of initialisation for the Video type.
// The palette/vram/oam arguments alias the memory bus's arrays; the
// compositor reads them directly.
func NewVideo(env *environment.Environment, io *ioregs.Registers, d *dma.Engine,
	palette *[memorymap.PaletteRAMSize]byte, vram *[memorymap.VRAMSize]byte, oam *[memorymap.OAMSize]byte) *Video {
	return &Video{
		env:     env,
		io:      io,
		dma:     d,
		palette: palette,
		vram:    vram,
		oam:     oam,
	}
}

// Reset returns the beam to the top of the frame.
func (v *Video) Reset() {
	v.clock = 0
	v.scanline = 0
	v.frame = 0
	v.frameDrawn = false
	v.affineX = [2]int32{}
	v.affineY = [2]int32{}
	for i := range v.framebuffer {
		v.framebuffer[i] = 0
	}
}

// GetCoords returns the current beam position.
func (v *Video) GetCoords() coords.Coords {
	return coords.Coords{
		Frame:    v.frame,
		Scanline: v.scanline,
		Clock:    v.clock,
	}
}

// Frame returns the output frame buffer: Width*Height 32-bit RGBA values,
// complete as of the most recent FrameDrawn signal.
func (v *Video) Frame() *[Width * Height]uint32 {
	return &v.framebuffer
}

// FrameDrawn reports whether a complete frame has been drawn since the last
// call to ResetFrameDrawn.
func (v *Video) FrameDrawn() bool {
	return v.frameDrawn
}

// ResetFrameDrawn acknowledges the frame-drawn signal.
func (v *Video) ResetFrameDrawn() {
	v.frameDrawn = false
}

// Tick advances the beam by delta cycles, processing the HBlank and
// scanline boundaries it crosses.
func (v *Video) Tick(delta int) {
	for delta > 0 {
		boundary := clocks.CyclesPerScanline
		if v.clock < clocks.HBlankStart {
			boundary = clocks.HBlankStart
		}

		step := boundary - v.clock
		if step > delta {
			step = delta
		}
		v.clock += step
		delta -= step

		if v.clock == clocks.HBlankStart {
			v.enterHBlank()
		} else if v.clock == clocks.CyclesPerScanline {
			v.clock = 0
			v.advanceScanline()
		}
	}
}

// enterHBlank handles the crossing of the HBlank boundary within a
// scanline: the scanline is drawn, the affine accumulators advance and the
// HBlank edge is offered to the interrupt and DMA machinery.
func (v *Video) enterHBlank() {
	stat := v.io.Raw(ioregs.DISPSTAT)
	v.io.SetRaw(ioregs.DISPSTAT, stat|statHBlank)

	if stat&statHBlankIRQ != 0 {
		v.io.RaiseInterrupt(ioregs.IntHBlank)
	}

	if v.scanline < clocks.VisibleScanlines {
		v.drawScanline(v.scanline)
		v.advanceAffine()
		v.dma.Update(dma.HBlank)
	}
}

// advanceScanline handles the wrap from the end of one scanline to the
// start of the next.
func (v *Video) advanceScanline() {
	stat := v.io.Raw(ioregs.DISPSTAT) &^ statHBlank

	v.scanline = (v.scanline + 1) % clocks.ScanlinesPerFrame

	switch v.scanline {
	case 0:
		// frame complete; the affine accumulators reset from the latched
		// reference points
		v.frame++
		v.frameDrawn = true
		v.resetAffine()
	case clocks.VisibleScanlines:
		stat |= statVBlank
		v.io.SetRaw(ioregs.DISPSTAT, stat)
		v.dma.Update(dma.VBlank)
	case clocks.VisibleScanlines + 1:
		// the VBlank interrupt is raised one scanline after the VBlank
		// assertion
		if stat&statVBlankIRQ != 0 {
			v.io.RaiseInterrupt(ioregs.IntVBlank)
		}
	case clocks.ScanlinesPerFrame - 1:
		stat &^= statVBlank
	}

	// VCount compare
	if v.scanline == int(stat>>8) {
		stat |= statVCountMatch
		if stat&statVCountIRQ != 0 {
			v.io.RaiseInterrupt(ioregs.IntVCount)
		}
	} else {
		stat &^= statVCountMatch
	}

	v.io.SetRaw(ioregs.DISPSTAT, stat)
	v.io.SetRaw(ioregs.VCOUNT, uint16(v.scanline))
}

// affineRef reads the latched 28-bit 20.8 fixed point reference point for
// affine background bg (0 = BG2, 1 = BG3).
func (v *Video) affineRef(bg int) (int32, int32) {
	base := uint32(ioregs.BG2X_L) + uint32(bg)*0x10
	x := uint32(v.io.Raw(base)) | uint32(v.io.Raw(base+2))<<16
	y := uint32(v.io.Raw(base+4)) | uint32(v.io.Raw(base+6))<<16
	return signExtend28(x), signExtend28(y)
}

// affineParams reads the 8.8 fixed point matrix for affine background bg.
func (v *Video) affineParams(bg int) (pa, pb, pc, pd int32) {
	base := uint32(ioregs.BG2PA) + uint32(bg)*0x10
	pa = int32(int16(v.io.Raw(base)))
	pb = int32(int16(v.io.Raw(base + 2)))
	pc = int32(int16(v.io.Raw(base + 4)))
	pd = int32(int16(v.io.Raw(base + 6)))
	return pa, pb, pc, pd
}

func (v *Video) resetAffine() {
	for bg := 0; bg < 2; bg++ {
		v.affineX[bg], v.affineY[bg] = v.affineRef(bg)
	}
}

func (v *Video) advanceAffine() {
	for bg := 0; bg < 2; bg++ {
		_, pb, _, pd := v.affineParams(bg)
		v.affineX[bg] += pb
		v.affineY[bg] += pd
	}
}

func signExtend28(v uint32) int32 {
	return int32(v<<4) >> 4
}
