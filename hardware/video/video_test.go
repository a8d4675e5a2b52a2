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

package video_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/hardware/clocks"
	"github.com/jetsetilly/pocketcore/hardware/dma"
	"github.com/jetsetilly/pocketcore/hardware/memory"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
	"github.com/jetsetilly/pocketcore/hardware/video"
	"github.com/jetsetilly/pocketcore/test"
)

func prepare(t *testing.T) (*video.Video, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory(nil, make([]byte, cartridgeloader.FirmwareSize))
	engine := dma.NewEngine(mem.IO, mem)
	pal, vram, oam := mem.VRAM()
	vid := video.NewVideo(nil, mem.IO, engine, pal, vram, oam)

	return vid, mem
}

func TestFrameGeometry(t *testing.T) {
	vid, mem := prepare(t)

	// count scanline boundaries and VBlank assertions across one frame
	scanlines := 0
	vblankRise := 0
	lastVCount := mem.IO.Raw(ioregs.VCOUNT)
	lastVBlank := false

	for i := 0; i < clocks.CyclesPerFrame; i++ {
		vid.Tick(1)

		vcount := mem.IO.Raw(ioregs.VCOUNT)
		if vcount != lastVCount {
			scanlines++
			lastVCount = vcount
		}

		vblank := mem.IO.Raw(ioregs.DISPSTAT)&0x0001 != 0
		if vblank && !lastVBlank {
			vblankRise++
			test.ExpectEquality(t, vcount, uint16(160))
		}
		lastVBlank = vblank
	}

	// exactly 228 scanline boundaries and one VBlank assertion per frame
	test.ExpectEquality(t, scanlines, 228)
	test.ExpectEquality(t, vblankRise, 1)
	test.ExpectSuccess(t, vid.FrameDrawn())
}

func TestVBlankIRQDelayedOneLine(t *testing.T) {
	vid, mem := prepare(t)

	// enable the VBlank interrupt
	mem.IO.SetRaw(ioregs.DISPSTAT, 0x0008)

	// run into scanline 160: VBlank is asserted but the interrupt is not
	// yet raised
	vid.Tick(clocks.CyclesPerScanline*160 + 100)
	test.ExpectInequality(t, mem.IO.Raw(ioregs.DISPSTAT)&0x0001, uint16(0))
	test.ExpectEquality(t, mem.IO.Raw(ioregs.IF)&ioregs.IntVBlank, uint16(0))

	// one more scanline: the interrupt arrives
	vid.Tick(clocks.CyclesPerScanline)
	test.ExpectInequality(t, mem.IO.Raw(ioregs.IF)&ioregs.IntVBlank, uint16(0))
}

func TestVCountMatch(t *testing.T) {
	vid, mem := prepare(t)

	// compare value 100, with the VCount interrupt enabled
	mem.IO.SetRaw(ioregs.DISPSTAT, uint16(100)<<8|0x0020)

	matches := 0
	for i := 0; i < clocks.CyclesPerFrame; i += clocks.CyclesPerScanline {
		vid.Tick(clocks.CyclesPerScanline)
		if mem.IO.Raw(ioregs.DISPSTAT)&0x0004 != 0 {
			matches++
		}
	}

	// exactly one VCount match per frame
	test.ExpectEquality(t, matches, 1)
	test.ExpectInequality(t, mem.IO.Raw(ioregs.IF)&ioregs.IntVCount, uint16(0))
}

func TestHBlankIRQ(t *testing.T) {
	vid, mem := prepare(t)

	mem.IO.SetRaw(ioregs.DISPSTAT, 0x0010)

	vid.Tick(clocks.HBlankStart)
	test.ExpectInequality(t, mem.IO.Raw(ioregs.DISPSTAT)&0x0002, uint16(0))
	test.ExpectInequality(t, mem.IO.Raw(ioregs.IF)&ioregs.IntHBlank, uint16(0))

	// the flag clears at the end of the scanline
	vid.Tick(clocks.CyclesPerScanline - clocks.HBlankStart)
	test.ExpectEquality(t, mem.IO.Raw(ioregs.DISPSTAT)&0x0002, uint16(0))
}

func TestForcedBlankDrawsWhite(t *testing.T) {
	vid, mem := prepare(t)

	mem.IO.WriteHalf(ioregs.DISPCNT, 0x0080)

	// run one full frame so every scanline is drawn
	vid.Tick(clocks.CyclesPerFrame)

	frame := vid.Frame()
	test.ExpectEquality(t, frame[0], uint32(0xFFFFFFFF))
	test.ExpectEquality(t, frame[len(frame)-1], uint32(0xFFFFFFFF))
}

func TestBackdropColour(t *testing.T) {
	vid, mem := prepare(t)

	// backdrop is palette entry zero: pure red in 15-bit colour
	mem.WriteHalf(0x05000000, 0x001F)

	vid.Tick(clocks.CyclesPerFrame)

	frame := vid.Frame()
	test.ExpectEquality(t, frame[0], uint32(0xFF0000F8))
}

func TestMode3Bitmap(t *testing.T) {
	vid, mem := prepare(t)

	// mode 3 with BG2 enabled; plot a white pixel at (1,0)
	mem.IO.WriteHalf(ioregs.DISPCNT, 0x0403)
	mem.WriteHalf(0x06000002, 0x7FFF)

	vid.Tick(clocks.CyclesPerFrame)

	frame := vid.Frame()
	test.ExpectEquality(t, frame[1], uint32(0xFFF8F8F8))
	test.ExpectEquality(t, frame[0], uint32(0xFF000000))
}
