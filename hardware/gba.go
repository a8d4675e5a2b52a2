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

package hardware

import (
	"bytes"

	"github.com/jetsetilly/pocketcore/cartridgeloader"
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/audio"
	"github.com/jetsetilly/pocketcore/hardware/cpu"
	"github.com/jetsetilly/pocketcore/hardware/dma"
	"github.com/jetsetilly/pocketcore/hardware/input"
	"github.com/jetsetilly/pocketcore/hardware/memory"
	"github.com/jetsetilly/pocketcore/hardware/memory/cartridge"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
	"github.com/jetsetilly/pocketcore/hardware/memory/memorymap"
	"github.com/jetsetilly/pocketcore/hardware/preferences"
	"github.com/jetsetilly/pocketcore/hardware/timer"
	"github.com/jetsetilly/pocketcore/hardware/video"
	"github.com/jetsetilly/pocketcore/logger"
	"github.com/jetsetilly/pocketcore/resources/fs"
	"github.com/jetsetilly/pocketcore/symbols"
)

// GBA is the console hardware: every component, wired together, plus the
// scheduler that drives them.
type GBA struct {
	Env *environment.Environment

	CPU    *cpu.CPU
	Mem    *memory.Memory
	DMA    *dma.Engine
	Timers *timer.Cascade
	Video  *video.Video
	Audio  *audio.Audio
	Input  *input.Input

	// address labels: the canonical register/vector names plus anything
	// loaded from the ROM's companion symbols file
	Sym *symbols.Symbols

	// a known busy-wait address for the loaded ROM, used by the idle-loop
	// optimisation
	idleLoop    uint32
	hasIdleLoop bool
}

// NewGBA is the preferred method of initialisation for the GBA type. The
// firmware argument must be a full firmware image as returned by
// cartridgeloader.LoadFirmware().
//
// The prefs argument can be nil, in which case fresh preferences are
// created.
func NewGBA(label environment.Label, firmware []byte, prefs *preferences.Preferences) (*GBA, error) {
	env, err := environment.NewEnvironment(label, nil, prefs)
	if err != nil {
		return nil, err
	}

	gba := &GBA{
		Env: env,
		Sym: symbols.NewSymbols(),
	}

	gba.Mem = memory.NewMemory(env, firmware)
	gba.DMA = dma.NewEngine(gba.Mem.IO, gba.Mem)
	gba.Timers = timer.NewCascade(gba.Mem.IO, gba.DMA)

	pal, vram, oam := gba.Mem.VRAM()
	gba.Video = video.NewVideo(env, gba.Mem.IO, gba.DMA, pal, vram, oam)
	env.AttachTelevision(gba.Video)

	gba.Audio = audio.NewAudio()
	gba.Input = input.NewInput(env, gba.Mem.IO)

	// the CPU is created last: its reset state may draw on the environment's
	// randomisation, which needs the video pipeline attached
	gba.CPU = cpu.NewCPU(env, gba.Mem)

	gba.Mem.IO.Hooks.DMAEnabled = gba.DMA.TriggerImmediate
	gba.Mem.IO.Hooks.TimerEnabled = gba.Timers.Enable
	gba.Mem.IO.Hooks.TimerReloadWritten = gba.Timers.ReloadWritten
	gba.Mem.IO.Hooks.FIFOWrite = gba.Audio.Enqueue
	gba.Mem.IO.Hooks.Halt = func(_ uint8) {
		gba.CPU.Halted = true
	}

	return gba, nil
}

// AttachCartridge inserts the ROM described by the loader, restores any
// companion save file into backup memory and prepares per-ROM information.
func (gba *GBA) AttachCartridge(loader cartridgeloader.Loader) error {
	var kind cartridge.BackupKind
	switch loader.Backup {
	case cartridgeloader.MarkerEEPROM:
		kind = cartridge.BackupEEPROM
	case cartridgeloader.MarkerFlash1M:
		kind = cartridge.BackupFlash128
	case cartridgeloader.MarkerFlash, cartridgeloader.MarkerFlash512:
		kind = cartridge.BackupFlash64
	case cartridgeloader.MarkerSRAM, cartridgeloader.MarkerSRAMF:
		kind = cartridge.BackupSRAM
	default:
		kind = cartridge.BackupNone
	}

	cart, err := cartridge.NewCartridge(gba.Env, loader.Data, kind, loader.HasRTC)
	if err != nil {
		return err
	}

	cart.SetDMAActive(gba.DMA.Active)
	gba.Mem.AttachCartridge(cart)
	gba.Env.Loader = loader

	if eeprom := cart.EEPROM(); eeprom != nil {
		gba.DMA.EEPROMWidthDetected = eeprom.SetAddressWidth
	}

	if save, err := loader.ReadSaveFile(); err != nil {
		return err
	} else if save != nil {
		cart.LoadBackupData(save)
	}

	gba.idleLoop, gba.hasIdleLoop = symbols.IdleLoop(loader.HashSHA1)

	gba.Sym.Add(memorymap.CartridgeROMBase, "entrypoint")
	if pth := loader.SymbolsFilePath(); pth != "" && fs.Exists(pth) {
		if data, err := fs.ReadFile(pth); err == nil {
			if err := gba.Sym.ReadSymbolsFile(bytes.NewReader(data)); err != nil {
				logger.Log(gba.Env, "symbols", err)
			}
		}
	}

	logger.Logf(gba.Env, "cartridge", "%s attached (%s backup, rtc=%v)", loader.Name, kind, loader.HasRTC)

	gba.Reset()
	return nil
}

// SaveBackup rewrites the companion save file from the current backup
// memory. Call on clean shutdown.
func (gba *GBA) SaveBackup() error {
	if gba.Mem.Cart == nil {
		return nil
	}
	data, ok := gba.Mem.Cart.BackupData()
	if !ok {
		return nil
	}
	return gba.Env.Loader.WriteSaveFile(data)
}

// Reset re-initialises every component except cartridge backup memory,
// which is preserved unless explicitly erased.
func (gba *GBA) Reset() {
	gba.Mem.Reset()
	gba.DMA.Reset()
	gba.Timers.Reset()
	gba.Video.Reset()
	gba.Audio.Reset()
	gba.Input.Reset()
	gba.CPU.Reset()
}

// Step drives one instruction of CPU execution, ticks the peripherals by
// the elapsed cycles and re-checks interrupts. It returns true when the
// video component has signalled "frame drawn".
func (gba *GBA) Step() bool {
	gba.checkIdleLoop()

	cycles := gba.CPU.Step()
	gba.Timers.Tick(uint32(cycles))
	gba.Video.Tick(cycles)

	// interrupt check: a pending request wakes a halted CPU even when
	// interrupts are masked; it is only serviced when unmasked
	ie := gba.Mem.IO.Raw(ioregs.IE)
	ifl := gba.Mem.IO.Raw(ioregs.IF)
	if ie&ifl != 0 {
		gba.CPU.Halted = false
		ime := gba.Mem.IO.Raw(ioregs.IME)
		if gba.CPU.Primed() && !gba.CPU.Regs.CPSR().I && ime&1 != 0 {
			gba.CPU.RaiseIRQ()
		}
	}

	return gba.Video.FrameDrawn()
}

// checkIdleLoop halts the CPU when the program counter sits at a known
// idle loop with no unhandled VBlank interrupt pending.
func (gba *GBA) checkIdleLoop() {
	if !gba.hasIdleLoop || gba.CPU.Halted || !gba.CPU.Primed() {
		return
	}
	if !gba.Env.Prefs.IdleLoops.Get().(bool) {
		return
	}

	size := uint32(4)
	if gba.CPU.Regs.CPSR().T {
		size = 2
	}
	if gba.CPU.Regs.PC()-2*size != gba.idleLoop {
		return
	}

	pending := gba.Mem.IO.Raw(ioregs.IE) & gba.Mem.IO.Raw(ioregs.IF)
	if pending&ioregs.IntVBlank == 0 {
		gba.CPU.Halted = true
	}
}

// RunForFrame runs the emulation until the video component signals that a
// frame has been drawn. The buttons argument is the host's input snapshot
// for the frame.
//
// The step callback, which can be nil, is called after every CPU step; a
// false return stops the loop before the frame is complete (the debugger's
// single-step boundary).
func (gba *GBA) RunForFrame(buttons input.Buttons, step func() bool) {
	gba.Video.ResetFrameDrawn()
	gba.Input.SetButtons(buttons)

	for !gba.Step() {
		if step != nil && !step() {
			return
		}
	}
}
