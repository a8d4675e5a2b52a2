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

package ioregs

// Register offsets, relative to 0x04000000, bit-for-bit per spec.md §4.3 /
// §6 and the target device's published register map.
const (
	DISPCNT   = 0x000
	DISPSTAT  = 0x004
	VCOUNT    = 0x006
	BG0CNT    = 0x008
	BG1CNT    = 0x00A
	BG2CNT    = 0x00C
	BG3CNT    = 0x00E
	BG0HOFS   = 0x010
	BG0VOFS   = 0x012
	BG1HOFS   = 0x014
	BG1VOFS   = 0x016
	BG2HOFS   = 0x018
	BG2VOFS   = 0x01A
	BG3HOFS   = 0x01C
	BG3VOFS   = 0x01E
	BG2PA     = 0x020
	BG2PB     = 0x022
	BG2PC     = 0x024
	BG2PD     = 0x026
	BG2X_L    = 0x028
	BG2X_H    = 0x02A
	BG2Y_L    = 0x02C
	BG2Y_H    = 0x02E
	BG3PA     = 0x030
	BG3PB     = 0x032
	BG3PC     = 0x034
	BG3PD     = 0x036
	BG3X_L    = 0x038
	BG3X_H    = 0x03A
	BG3Y_L    = 0x03C
	BG3Y_H    = 0x03E
	WIN0H     = 0x040
	WIN1H     = 0x042
	WIN0V     = 0x044
	WIN1V     = 0x046
	WININ     = 0x048
	WINOUT    = 0x04A
	MOSAIC    = 0x04C
	BLDCNT    = 0x050
	BLDALPHA  = 0x052
	BLDY      = 0x054
	SOUNDCNT_H = 0x082
	SOUNDCNT_X = 0x084
	FIFO_A    = 0x0A0
	FIFO_B    = 0x0A4
	DMA0SAD_L = 0x0B0
	DMA0SAD_H = 0x0B2
	DMA0DAD_L = 0x0B4
	DMA0DAD_H = 0x0B6
	DMA0CNT_L = 0x0B8
	DMA0CNT_H = 0x0BA
	DMA1SAD_L = 0x0BC
	DMA1SAD_H = 0x0BE
	DMA1DAD_L = 0x0C0
	DMA1DAD_H = 0x0C2
	DMA1CNT_L = 0x0C4
	DMA1CNT_H = 0x0C6
	DMA2SAD_L = 0x0C8
	DMA2SAD_H = 0x0CA
	DMA2DAD_L = 0x0CC
	DMA2DAD_H = 0x0CE
	DMA2CNT_L = 0x0D0
	DMA2CNT_H = 0x0D2
	DMA3SAD_L = 0x0D4
	DMA3SAD_H = 0x0D6
	DMA3DAD_L = 0x0D8
	DMA3DAD_H = 0x0DA
	DMA3CNT_L = 0x0DC
	DMA3CNT_H = 0x0DE
	TM0CNT_L  = 0x100
	TM0CNT_H  = 0x102
	TM1CNT_L  = 0x104
	TM1CNT_H  = 0x106
	TM2CNT_L  = 0x108
	TM2CNT_H  = 0x10A
	TM3CNT_L  = 0x10C
	TM3CNT_H  = 0x10E
	KEYINPUT  = 0x130
	KEYCNT    = 0x132
	IE        = 0x200
	IF        = 0x202
	WAITCNT   = 0x204
	IME       = 0x208
	POSTFLG   = 0x300
	HALTCNT   = 0x301
)

// Interrupt request bits of IE/IF.
const (
	IntVBlank uint16 = 1 << 0
	IntHBlank uint16 = 1 << 1
	IntVCount uint16 = 1 << 2
	IntTimer0 uint16 = 1 << 3
	IntTimer1 uint16 = 1 << 4
	IntTimer2 uint16 = 1 << 5
	IntTimer3 uint16 = 1 << 6
	IntSerial uint16 = 1 << 7
	IntDMA0   uint16 = 1 << 8
	IntDMA1   uint16 = 1 << 9
	IntDMA2   uint16 = 1 << 10
	IntDMA3   uint16 = 1 << 11
	IntKeypad uint16 = 1 << 12
)
