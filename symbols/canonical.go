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

package symbols

// canonical is the set of symbols every instance starts with: exception
// vectors and the memory-mapped I/O registers.
var canonical = map[uint32]string{
	// exception vectors
	0x00000000: "VEC_RESET",
	0x00000004: "VEC_UNDEFINED",
	0x00000008: "VEC_SWI",
	0x00000018: "VEC_IRQ",

	// display
	0x04000000: "DISPCNT",
	0x04000004: "DISPSTAT",
	0x04000006: "VCOUNT",
	0x04000008: "BG0CNT",
	0x0400000A: "BG1CNT",
	0x0400000C: "BG2CNT",
	0x0400000E: "BG3CNT",
	0x04000010: "BG0HOFS",
	0x04000012: "BG0VOFS",
	0x04000014: "BG1HOFS",
	0x04000016: "BG1VOFS",
	0x04000018: "BG2HOFS",
	0x0400001A: "BG2VOFS",
	0x0400001C: "BG3HOFS",
	0x0400001E: "BG3VOFS",
	0x04000040: "WIN0H",
	0x04000042: "WIN1H",
	0x04000044: "WIN0V",
	0x04000046: "WIN1V",
	0x04000048: "WININ",
	0x0400004A: "WINOUT",
	0x0400004C: "MOSAIC",
	0x04000050: "BLDCNT",
	0x04000052: "BLDALPHA",
	0x04000054: "BLDY",

	// sound
	0x04000082: "SOUNDCNT_H",
	0x04000084: "SOUNDCNT_X",
	0x040000A0: "FIFO_A",
	0x040000A4: "FIFO_B",

	// DMA
	0x040000B0: "DMA0SAD",
	0x040000B4: "DMA0DAD",
	0x040000B8: "DMA0CNT",
	0x040000BC: "DMA1SAD",
	0x040000C0: "DMA1DAD",
	0x040000C4: "DMA1CNT",
	0x040000C8: "DMA2SAD",
	0x040000CC: "DMA2DAD",
	0x040000D0: "DMA2CNT",
	0x040000D4: "DMA3SAD",
	0x040000D8: "DMA3DAD",
	0x040000DC: "DMA3CNT",

	// timers
	0x04000100: "TM0CNT",
	0x04000104: "TM1CNT",
	0x04000108: "TM2CNT",
	0x0400010C: "TM3CNT",

	// keypad
	0x04000130: "KEYINPUT",
	0x04000132: "KEYCNT",

	// interrupt/system control
	0x04000200: "IE",
	0x04000202: "IF",
	0x04000204: "WAITCNT",
	0x04000208: "IME",
	0x04000300: "POSTFLG",
	0x04000301: "HALTCNT",
}
