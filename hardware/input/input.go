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

// Package input maps the host's once-per-frame button snapshot onto the
// key-input register and evaluates the keypad interrupt condition.
package input

import (
	"github.com/jetsetilly/pocketcore/environment"
	"github.com/jetsetilly/pocketcore/hardware/memory/ioregs"
)

// key-input register bits. the register is inverted: a zero bit means the
// button is pressed
const (
	KeyA uint16 = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
)

const keyMask = 0x03FF

// key-interrupt control register fields
const (
	keyCntIRQEnable = 0x4000
	keyCntANDMode   = 0x8000
)

// Buttons is the host's input snapshot, updated once per frame.
type Buttons struct {
	A, B           bool
	Select, Start  bool
	Right, Left    bool
	Up, Down       bool
	R, L           bool
}

// Input owns the key-input register state.
type Input struct {
	env *environment.Environment
	io  *ioregs.Registers

	// current register value (inverted: 0 = pressed)
	keyinput uint16
}

// NewInput is the preferred method of initialisation for the Input type.
// The register file's keypad hooks are bound here.
func NewInput(env *environment.Environment, io *ioregs.Registers) *Input {
	inp := &Input{
		env:      env,
		io:       io,
		keyinput: keyMask,
	}
	io.Hooks.KeyControlWritten = inp.evaluateInterrupt
	io.Hooks.KeyInputRead = inp.readKeyInput
	return inp
}

// Reset releases every button.
func (inp *Input) Reset() {
	inp.keyinput = keyMask
	inp.io.SetRaw(ioregs.KEYINPUT, inp.keyinput)
}

// SetButtons applies the host's input snapshot. Opposing directions are
// forced to both-released before the register is updated.
func (inp *Input) SetButtons(b Buttons) {
	if b.Left && b.Right {
		b.Left = false
		b.Right = false
	}
	if b.Up && b.Down {
		b.Up = false
		b.Down = false
	}

	var pressed uint16
	set := func(on bool, bit uint16) {
		if on {
			pressed |= bit
		}
	}
	set(b.A, KeyA)
	set(b.B, KeyB)
	set(b.Select, KeySelect)
	set(b.Start, KeyStart)
	set(b.Right, KeyRight)
	set(b.Left, KeyLeft)
	set(b.Up, KeyUp)
	set(b.Down, KeyDown)
	set(b.R, KeyR)
	set(b.L, KeyL)

	inp.keyinput = ^pressed & keyMask
	inp.io.SetRaw(ioregs.KEYINPUT, inp.keyinput)
	inp.evaluateInterrupt()
}

// readKeyInput is bound to the register file's KeyInputRead hook: reads of
// the key-input register re-evaluate the keypad interrupt before returning.
func (inp *Input) readKeyInput() uint16 {
	inp.evaluateInterrupt()
	return inp.keyinput
}

// evaluateInterrupt raises the keypad interrupt if the key-interrupt
// control register's condition is met by the currently pressed buttons.
func (inp *Input) evaluateInterrupt() {
	keycnt := inp.io.Raw(ioregs.KEYCNT)
	if keycnt&keyCntIRQEnable == 0 {
		return
	}

	mask := keycnt & keyMask
	pressed := ^inp.keyinput & keyMask

	var match bool
	if keycnt&keyCntANDMode != 0 {
		match = mask != 0 && pressed&mask == mask
	} else {
		match = pressed&mask != 0
	}

	if match {
		inp.io.RaiseInterrupt(ioregs.IntKeypad)
	}
}
