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

// BGxCNT fields
const (
	bgCnt256Colour = 1 << 7
	bgCntWrap      = 1 << 13
)

// drawRegularBG draws one scanline of a regular (text mode) background
// into row.
func (v *Video) drawRegularBG(line int, row []uint32, bg int, cnt uint16, win windowState) {
	charBase := (uint32(cnt>>2) & 3) * 0x4000
	screenBase := (uint32(cnt>>8) & 0x1F) * 0x800
	colour256 := cnt&bgCnt256Colour != 0
	size := (cnt >> 14) & 3

	// screen size: 256x256, 512x256, 256x512, 512x512
	width := 256
	height := 256
	if size&1 != 0 {
		width = 512
	}
	if size&2 != 0 {
		height = 512
	}

	hofs := int(v.io.Raw(uint32(ioregs.BG0HOFS)+uint32(bg)*4) & 0x1FF)
	vofs := int(v.io.Raw(uint32(ioregs.BG0VOFS)+uint32(bg)*4) & 0x1FF)

	sy := (line + vofs) % height
	layer := uint16(1) << bg

	for x := 0; x < Width; x++ {
		if !win.layerVisible(layer, x) {
			continue
		}

		sx := (x + hofs) % width

		// the 512-wide/high layouts are mapped from 32x32 map quadrants in
		// standard order
		block := 0
		if sx >= 256 {
			block++
		}
		if sy >= 256 {
			block++
			if width == 512 {
				block++
			}
		}

		mapOffset := screenBase + uint32(block)*0x800 + uint32((sy&255)>>3)*64 + uint32((sx&255)>>3)*2
		entry := uint16(v.vram[mapOffset]) | uint16(v.vram[mapOffset+1])<<8

		tile := uint32(entry & 0x3FF)
		tx := sx & 7
		ty := sy & 7
		if entry&0x0400 != 0 {
			tx = 7 - tx
		}
		if entry&0x0800 != 0 {
			ty = 7 - ty
		}

		var index uint32
		if colour256 {
			index = uint32(v.vram[charBase+tile*64+uint32(ty)*8+uint32(tx)])
		} else {
			b := v.vram[charBase+tile*32+uint32(ty)*4+uint32(tx)/2]
			if tx&1 != 0 {
				index = uint32(b >> 4)
			} else {
				index = uint32(b & 0xF)
			}
			if index != 0 {
				index += uint32(entry>>12) * 16
			}
		}

		if index == 0 {
			continue
		}
		row[x] = v.paletteColour(index)
	}
}

// drawAffineBG draws one scanline of an affine background into row. The
// position accumulators were reset at scanline zero and have advanced by
// (pb, pd) per drawn scanline since; within the scanline the position
// advances by (pa, pc) per pixel.
func (v *Video) drawAffineBG(line int, row []uint32, bg int, cnt uint16, win windowState) {
	idx := bg - 2
	charBase := (uint32(cnt>>2) & 3) * 0x4000
	screenBase := (uint32(cnt>>8) & 0x1F) * 0x800
	wrap := cnt&bgCntWrap != 0

	// square sizes 128, 256, 512, 1024
	size := 128 << ((cnt >> 14) & 3)
	tiles := size / 8

	pa, _, pc, _ := v.affineParams(idx)
	px := v.affineX[idx]
	py := v.affineY[idx]

	layer := uint16(1) << bg

	for x := 0; x < Width; x++ {
		sx := int(px >> 8)
		sy := int(py >> 8)
		px += pa
		py += pc

		if wrap {
			sx = ((sx % size) + size) % size
			sy = ((sy % size) + size) % size
		} else if sx < 0 || sx >= size || sy < 0 || sy >= size {
			continue
		}

		if !win.layerVisible(layer, x) {
			continue
		}

		// affine maps are a single byte per tile
		tile := uint32(v.vram[screenBase+uint32(sy/8)*uint32(tiles)+uint32(sx/8)])
		index := uint32(v.vram[charBase+tile*64+uint32(sy&7)*8+uint32(sx&7)])

		if index == 0 {
			continue
		}
		row[x] = v.paletteColour(index)
	}
}
