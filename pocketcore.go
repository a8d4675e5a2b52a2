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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/digest"
	"github.com/jetsetilly/pocketcore/emulation"
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware"
	"github.com/jetsetilly/pocketcore/hardware/cpu/arm"
	"github.com/jetsetilly/pocketcore/hardware/input"
	"github.com/jetsetilly/pocketcore/logger"
	"github.com/jetsetilly/pocketcore/modalflag"
	"github.com/jetsetilly/pocketcore/prefs"
)

const defaultFirmware = "firmware.bin"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		err = run(md)
	case "DISASM":
		md.NewMode()
		err = disasm(md, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// headless is the emulation.Emulation implementation behind the RUN mode.
// There is no GUI to drive it so the state transitions are trivial, but
// keeping the interface means a driver can be swapped in without touching
// the hardware package.
type headless struct {
	gba   *hardware.GBA
	state emulation.State
}

func (h *headless) TV() emulation.TV {
	return h.gba.Video
}

func (h *headless) Console() emulation.Console {
	return h.gba
}

func (h *headless) State() emulation.State {
	return h.state
}

func (h *headless) Pause(set bool) {
	if set {
		h.state = emulation.Paused
	} else {
		h.state = emulation.Running
	}
}

// run executes a ROM headlessly for a fixed number of frames and reports
// the video digest, the shape used by performance measurement and
// regression recording.
func run(md *modalflag.Modes) error {
	firmware := md.AddString("firmware", defaultFirmware, "path to firmware image")
	frames := md.AddInt("frames", 60, "number of frames to emulate")
	prefsOverride := md.AddString("prefs", "", "preference overrides (key::value; ...)")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one ROM file required")
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}
	if *echoLog {
		logger.SetEcho(os.Stderr, false)
	}

	fw, err := cartridgeloader.LoadFirmware(*firmware)
	if err != nil {
		return err
	}

	loader, err := cartridgeloader.NewLoaderFromFilename(md.RemainingArgs()[0])
	if err != nil {
		return err
	}

	gba, err := hardware.NewGBA(environment.MainEmulation, fw, nil)
	if err != nil {
		return err
	}

	if err := gba.AttachCartridge(loader); err != nil {
		return err
	}

	emul := &headless{gba: gba, state: emulation.Initialising}
	vid := digest.NewVideo(gba.Video)
	aud := digest.NewAudio(gba.Audio)

	emul.state = emulation.Running
	for i := 0; i < *frames && emul.State() == emulation.Running; i++ {
		gba.RunForFrame(input.Buttons{}, nil)
		vid.NewFrame()
		aud.Drain()
	}
	emul.state = emulation.Ending

	fmt.Printf("%s\n  frames: %d\n  video: %s\n  audio: %s\n", loader.Name, *frames, vid.Hash(), aud.Hash())

	return gba.SaveBackup()
}

// disasm prints a static disassembly of the head of the ROM.
func disasm(md *modalflag.Modes, output io.Writer) error {
	count := md.AddInt("n", 64, "number of instructions to disassemble")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one ROM file required")
	}

	loader, err := cartridgeloader.NewLoaderFromFilename(md.RemainingArgs()[0])
	if err != nil {
		return err
	}

	for i := 0; i < *count; i++ {
		off := i * 4
		if off+4 > len(loader.Data) {
			break
		}
		op := uint32(loader.Data[off]) | uint32(loader.Data[off+1])<<8 |
			uint32(loader.Data[off+2])<<16 | uint32(loader.Data[off+3])<<24
		fmt.Fprintf(output, "%08x  %08x  %s\n", 0x08000000+off, op, arm.Disassemble(op))
	}

	return nil
}
