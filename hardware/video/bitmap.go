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

// bitmap mode geometry
const (
	mode5Width  = 160
	mode5Height = 128
	mode4Page   = 0xA000
)

// drawBitmap draws one scanline of BG2 in the bitmap modes: a full-screen
// 15-bit bitmap (mode 3), a paletted page-flipped bitmap (mode 4), or a
// letterboxed 160x128 15-bit bitmap (mode 5).
func (v *Video) drawBitmap(line int, row []uint32, dispcnt uint16, win windowState) {
	mode := dispcnt & 7

	page := uint32(0)
	if dispcnt&dispMode4Page != 0 {
		page = mode4Page
	}

	for x := 0; x < Width; x++ {
		if !win.layerVisible(layerBG2, x) {
			continue
		}

		switch mode {
		case 3:
			off := (uint32(line)*Width + uint32(x)) * 2
			v15 := uint16(v.vram[off]) | uint16(v.vram[off+1])<<8
			row[x] = rgb(v15)

		case 4:
			off := page + uint32(line)*Width + uint32(x)
			index := uint32(v.vram[off])
			if index == 0 {
				continue
			}
			row[x] = v.paletteColour(index)

		case 5:
			// the bitmap is letterboxed; the backdrop shows outside it
			if x >= mode5Width || line >= mode5Height {
				continue
			}
			off := page + (uint32(line)*mode5Width+uint32(x))*2
			v15 := uint16(v.vram[off]) | uint16(v.vram[off+1])<<8
			row[x] = rgb(v15)
		}
	}
}
