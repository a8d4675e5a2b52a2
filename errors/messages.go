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

package errors

// error messages
const (
	// panics
	PanicError = "panic: %v: %v"

	// sentinals
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
	PowerOff      = "emulated machine has been powered off"

	// program modes
	PlayError        = "error emulating console: %v"
	PerformanceError = "error during performance profiling: %v"

	// commandline
	ParserError     = "parser error: %v"
	HelpError       = "help error: %v"
	ValidationError = "%v"

	// loader
	LoaderError       = "loader error: %v"
	LoaderFileError   = "loader error: cannot open file (%v)"
	FirmwareMissing   = "firmware error: cannot open firmware image (%v)"
	FirmwareBadSize   = "firmware error: image is %d bytes; expected %d"
	SaveFileError     = "save file error: %v"
	ArchiveError      = "archive error: %v"

	// cpu
	UnimplementedInstruction = "cpu error: unimplemented instruction (%08x) at %08x"
	UndefinedInstruction     = "cpu error: undefined instruction (%08x) at %08x"
	CoprocessorAccess        = "cpu error: coprocessor access (%08x) at %08x"

	// memory
	UnmappedAddress   = "memory error: unmapped address (%08x)"
	ReadOnlyAddress   = "memory error: address is read-only (%08x)"
	UnpeekableAddress = "memory error: cannot peek address (%08x)"
	UnpokeableAddress = "memory error: cannot poke address (%08x)"

	// cartridge backup
	BackupError        = "backup error: %v"
	EEPROMBadSequence  = "backup error: eeprom: malformed command sequence"
	EEPROMWidthUnknown = "backup error: eeprom: address width not yet detected"
	FlashBadSequence   = "backup error: flash: malformed command sequence (%02x at %04x)"

	// video
	VideoError = "video error: %v"

	// digests
	VideoDigest = "video digest: %v"
	AudioDigest = "audio digest: %v"

	// symbols
	SymbolsFileError = "symbols error: %v"
	SymbolUnknown    = "unknown symbol: %v"

	// prefs
	Prefs         = "prefs: %v"
	PrefsNoFile   = "prefs: no file (%s)"
	PrefsNotValid = "prefs: not a valid prefs file (%s)"
)
