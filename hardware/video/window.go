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

// DISPCNT window enable bits
const (
	dispWin0   = 1 << 13
	dispWin1   = 1 << 14
	dispWinOBJ = 1 << 15
)

// windowState is the per-scanline window configuration: for each pixel the
// first matching region's enable mask decides which layers are visible.
type windowState struct {
	// any window enabled at all. when false every layer is visible
	// everywhere
	active bool

	// per-window horizontal extents and whether the current scanline is
	// inside the vertical extent
	w0Left, w0Right int
	w1Left, w1Right int
	w0InLine        bool
	w1InLine        bool

	win0Mask, win1Mask, outMask uint16
}

// windowMasks prepares the window state for a scanline.
func (v *Video) windowMasks(line int, dispcnt uint16) windowState {
	var win windowState

	win.active = dispcnt&(dispWin0|dispWin1|dispWinOBJ) != 0
	if !win.active {
		return win
	}

	winin := v.io.Raw(ioregs.WININ)
	winout := v.io.Raw(ioregs.WINOUT)
	win.win0Mask = winin & 0x3F
	win.win1Mask = (winin >> 8) & 0x3F
	win.outMask = winout & 0x3F

	if dispcnt&dispWin0 != 0 {
		h := v.io.Raw(ioregs.WIN0H)
		vv := v.io.Raw(ioregs.WIN0V)
		win.w0Left = int(h >> 8)
		win.w0Right = int(h & 0xFF)
		win.w0InLine = insideSpan(line, int(vv>>8), int(vv&0xFF))
	} else {
		win.w0InLine = false
	}

	if dispcnt&dispWin1 != 0 {
		h := v.io.Raw(ioregs.WIN1H)
		vv := v.io.Raw(ioregs.WIN1V)
		win.w1Left = int(h >> 8)
		win.w1Right = int(h & 0xFF)
		win.w1InLine = insideSpan(line, int(vv>>8), int(vv&0xFF))
	} else {
		win.w1InLine = false
	}

	return win
}

// insideSpan tests a coordinate against a [start, end) span, wrapping when
// end < start.
func insideSpan(v, start, end int) bool {
	if end < start {
		return v >= start || v < end
	}
	return v >= start && v < end
}

// layerVisible tests layer visibility at pixel x. Windows are tested in
// order: win0, then win1, then the outside region.
func (win windowState) layerVisible(layer uint16, x int) bool {
	if !win.active {
		return true
	}

	if win.w0InLine && insideSpan(x, win.w0Left, win.w0Right) {
		return win.win0Mask&layer != 0
	}
	if win.w1InLine && insideSpan(x, win.w1Left, win.w1Right) {
		return win.win1Mask&layer != 0
	}
	return win.outMask&layer != 0
}

// visibleSomewhere reports whether the layer can appear anywhere on the
// scanline, allowing a whole layer to be skipped.
func (win windowState) visibleSomewhere(layer uint16) bool {
	if !win.active {
		return true
	}
	return win.win0Mask&layer != 0 || win.win1Mask&layer != 0 || win.outMask&layer != 0
}
