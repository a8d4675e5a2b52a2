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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/digest"
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware"
	"github.com/jetsetilly/pocketcore/hardware/input"
	"github.com/jetsetilly/pocketcore/test"
)

// firmware with an endless branch-to-self at the reset vector
func testFirmware() []byte {
	fw := make([]byte, cartridgeloader.FirmwareSize)

	// B .
	fw[0] = 0xFE
	fw[1] = 0xFF
	fw[2] = 0xFF
	fw[3] = 0xEA

	return fw
}

func prepare(t *testing.T) *hardware.GBA {
	t.Helper()

	gba, err := hardware.NewGBA(environment.Label("test"), testFirmware(), nil)
	test.ExpectSuccess(t, err)

	return gba
}

func TestRunForFrame(t *testing.T) {
	gba := prepare(t)

	gba.RunForFrame(input.Buttons{}, nil)
	test.ExpectSuccess(t, gba.Video.FrameDrawn())

	// the CPU sat in the branch loop the whole time
	test.ExpectEquality(t, gba.CPU.Regs.PC()&^0xF, uint32(0))
}

func TestSingleStepBoundary(t *testing.T) {
	gba := prepare(t)

	// the step callback stops the loop before the frame completes
	steps := 0
	gba.RunForFrame(input.Buttons{}, func() bool {
		steps++
		return steps < 10
	})

	test.ExpectEquality(t, steps, 10)
	test.ExpectFailure(t, gba.Video.FrameDrawn())
}

func TestDeterministicDigest(t *testing.T) {
	run := func() string {
		gba := prepare(t)
		dig := digest.NewVideo(gba.Video)
		for i := 0; i < 3; i++ {
			gba.RunForFrame(input.Buttons{}, nil)
			dig.NewFrame()
		}
		return dig.Hash()
	}

	a := run()
	b := run()
	test.ExpectEquality(t, a, b)
	test.ExpectInequality(t, a, "")
}

func TestHaltWokenByInterrupt(t *testing.T) {
	gba := prepare(t)

	// enable the VBlank interrupt source and halt the CPU
	gba.Mem.WriteHalf(0x04000004, 0x0008) // DISPSTAT: VBlank IRQ enable
	gba.Mem.WriteHalf(0x04000200, 0x0001) // IE: VBlank
	gba.Mem.WriteByte(0x04000301, 0x00)   // HALTCNT

	test.ExpectSuccess(t, gba.CPU.Halted)

	// the frame still completes: the video pipeline ticks while the CPU
	// is halted, and the VBlank interrupt request wakes it
	gba.RunForFrame(input.Buttons{}, nil)
	test.ExpectFailure(t, gba.CPU.Halted)
}
