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

// the OBJ character area starts 64 KiB into video RAM and the OBJ palette
// halfway through palette RAM
const (
	objCharBase    = 0x10000
	objPaletteBase = 0x100
)

// sprite object modes (attribute 0)
const (
	objModeNormal = iota
	objModeAffine
	objModeDisabled
	objModeAffineDouble
)

// spriteSizes maps shape (square/wide/tall) and size fields to pixel
// dimensions. The fourth shape is prohibited.
var spriteSizes = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// drawSprites draws the sprites of one priority level into row. Entries
// are iterated highest index first so that the lowest numbered sprite ends
// up on top.
func (v *Video) drawSprites(line int, row []uint32, dispcnt uint16, priority int, win windowState) {
	if dispcnt&(1<<12) == 0 {
		// OBJ layer disabled
		return
	}
	if !win.visibleSomewhere(layerOBJ) {
		return
	}

	bitmapMode := dispcnt&7 >= 3
	oneDim := dispcnt&dispOBJ1DMap != 0

	for i := 127; i >= 0; i-- {
		attr0 := uint16(v.oam[i*8]) | uint16(v.oam[i*8+1])<<8
		attr1 := uint16(v.oam[i*8+2]) | uint16(v.oam[i*8+3])<<8
		attr2 := uint16(v.oam[i*8+4]) | uint16(v.oam[i*8+5])<<8

		if int(attr2>>10)&3 != priority {
			continue
		}

		objMode := int(attr0>>8) & 3
		if objMode == objModeDisabled {
			continue
		}

		shape := int(attr0>>14) & 3
		if shape == 3 {
			continue
		}
		size := int(attr1>>14) & 3
		w := spriteSizes[shape][size][0]
		h := spriteSizes[shape][size][1]

		// bounding box; doubled for double-size affine sprites
		bw, bh := w, h
		if objMode == objModeAffineDouble {
			bw *= 2
			bh *= 2
		}

		// wrap the 8-bit y and 9-bit x coordinates into signed positions
		yo := int(attr0 & 0xFF)
		if yo+bh > 256 {
			yo -= 256
		}
		xo := int(attr1 & 0x1FF)
		if xo >= 256 {
			xo -= 512
		}

		if line < yo || line >= yo+bh {
			continue
		}

		colour256 := attr0&(1<<13) != 0
		tileBase := uint32(attr2 & 0x3FF)

		// in the bitmap modes the low tile indices overlap the bitmap and
		// are invalid
		if bitmapMode && tileBase < 512 {
			continue
		}

		affine := objMode == objModeAffine || objMode == objModeAffineDouble
		var pa, pb, pc, pd int32
		if affine {
			group := int(attr1>>9) & 0x1F
			pa = oamParam(v.oam, group, 0)
			pb = oamParam(v.oam, group, 1)
			pc = oamParam(v.oam, group, 2)
			pd = oamParam(v.oam, group, 3)
		}

		hflip := !affine && attr1&(1<<12) != 0
		vflip := !affine && attr1&(1<<13) != 0
		palBank := uint32(attr2>>12) & 0xF

		for x := xo; x < xo+bw; x++ {
			if x < 0 || x >= Width {
				continue
			}
			if !win.layerVisible(layerOBJ, x) {
				continue
			}

			var tx, ty int
			if affine {
				// texture coordinates through the inverse transform,
				// centred on the bounding box
				cx := int32(x - (xo + bw/2))
				cy := int32(line - (yo + bh/2))
				tx = int((pa*cx+pb*cy)>>8) + w/2
				ty = int((pc*cx+pd*cy)>>8) + h/2
				if tx < 0 || tx >= w || ty < 0 || ty >= h {
					continue
				}
			} else {
				tx = x - xo
				ty = line - yo
				if hflip {
					tx = w - 1 - tx
				}
				if vflip {
					ty = h - 1 - ty
				}
			}

			index := v.spritePixel(tileBase, tx, ty, w, colour256, oneDim)
			if index == 0 {
				continue
			}
			if !colour256 {
				index += palBank * 16
			}
			row[x] = v.paletteColour(objPaletteBase + index)
		}
	}
}

// spritePixel fetches the palette index of one sprite texel. The tile
// layout is either one dimensional (consecutive tiles) or two dimensional
// (rows of 32 tile slots).
func (v *Video) spritePixel(tileBase uint32, tx, ty, w int, colour256, oneDim bool) uint32 {
	tileX := uint32(tx / 8)
	tileY := uint32(ty / 8)

	if colour256 {
		var stride uint32
		if oneDim {
			stride = uint32(w/8) * 2
		} else {
			stride = 32
		}
		tile := (tileBase + tileY*stride + tileX*2) & 0x3FF
		off := objCharBase + tile*32 + uint32(ty&7)*8 + uint32(tx&7)
		return uint32(v.vram[off])
	}

	var stride uint32
	if oneDim {
		stride = uint32(w / 8)
	} else {
		stride = 32
	}
	tile := (tileBase + tileY*stride + tileX) & 0x3FF
	off := objCharBase + tile*32 + uint32(ty&7)*4 + uint32(tx&7)/2
	b := v.vram[off]
	if tx&1 != 0 {
		return uint32(b >> 4)
	}
	return uint32(b & 0xF)
}

// oamParam reads one element of a 2x2 affine matrix from the shared
// parameter table interleaved through object attribute memory.
func oamParam(oam *[0x400]byte, group, element int) int32 {
	off := group*32 + element*8 + 6
	return int32(int16(uint16(oam[off]) | uint16(oam[off+1])<<8))
}
