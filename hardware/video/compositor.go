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

import "github.com/jetsetilly/pocketcore/hardware/memory/ioregs"

// DISPCNT fields
const (
	dispForcedBlank = 1 << 7
	dispOBJ1DMap    = 1 << 6
	dispMode4Page   = 1 << 4
)

// layer bits, as used by the window enable masks
const (
	layerBG0 = 1 << iota
	layerBG1
	layerBG2
	layerBG3
	layerOBJ
	layerEffects
)

// white, the colour of a force-blanked display
const white = 0xFFFFFFFF

// rgb converts a 15-bit palette colour to 32-bit RGBA.
func rgb(c uint16) uint32 {
	r := uint32(c&0x1F) << 3
	g := uint32((c>>5)&0x1F) << 3
	b := uint32((c>>10)&0x1F) << 3
	return 0xFF000000 | b<<16 | g<<8 | r
}

// paletteColour reads colour index i of the given palette bank (0 = BG,
// 0x100 = OBJ, in halfword units).
func (v *Video) paletteColour(i uint32) uint32 {
	return rgb(uint16(v.palette[i*2]) | uint16(v.palette[i*2+1])<<8)
}

// drawScanline composites one scanline of output into the frame buffer.
func (v *Video) drawScanline(line int) {
	row := v.framebuffer[line*Width : (line+1)*Width]
	dispcnt := v.io.Raw(ioregs.DISPCNT)

	if dispcnt&dispForcedBlank != 0 {
		for x := range row {
			row[x] = white
		}
		return
	}

	// backdrop: palette index zero
	backdrop := v.paletteColour(0)
	for x := range row {
		row[x] = backdrop
	}

	win := v.windowMasks(line, dispcnt)

	mode := dispcnt & 7
	switch mode {
	case 0, 1, 2:
		v.drawTiled(line, row, dispcnt, win)
	case 3, 4, 5:
		if dispcnt&(1<<10) != 0 && win.visibleSomewhere(layerBG2) {
			v.drawBitmap(line, row, dispcnt, win)
		}
		for priority := 3; priority >= 0; priority-- {
			v.drawSprites(line, row, dispcnt, priority, win)
		}
	}
}

// drawTiled composites the tiled modes: priorities 3 down to 0, with the
// backgrounds at each priority drawn before the sprites at that priority.
func (v *Video) drawTiled(line int, row []uint32, dispcnt uint16, win windowState) {
	mode := dispcnt & 7

	for priority := 3; priority >= 0; priority-- {
		for bg := 3; bg >= 0; bg-- {
			if dispcnt&(1<<(8+bg)) == 0 {
				continue
			}
			cnt := v.io.Raw(uint32(ioregs.BG0CNT) + uint32(bg)*2)
			if int(cnt&3) != priority {
				continue
			}

			affine := (mode == 1 && bg == 2) || (mode == 2 && (bg == 2 || bg == 3))
			regular := mode == 0 || (mode == 1 && bg < 2)
			if !affine && !regular {
				continue
			}

			if !win.visibleSomewhere(uint16(1) << bg) {
				continue
			}

			if affine {
				v.drawAffineBG(line, row, bg, cnt, win)
			} else {
				v.drawRegularBG(line, row, bg, cnt, win)
			}
		}

		v.drawSprites(line, row, dispcnt, priority, win)
	}
}
