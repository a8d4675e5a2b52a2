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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and the flags associated with each mode.
//
// A program mode is the first non-flag argument at a given parse depth.
// After a successful Parse() the program can interrogate Mode(), descend
// into the sub-mode with NewMode(), add that mode's flags and Parse() again.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult is returned by Parse(). It indicates how the program should
// proceed after the parse.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue indicates that the program should continue with the
	// parsed mode and flags.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help has been requested and printed to the
	// Output writer. The program should exit without error.
	ParseHelp

	// ParseError indicates a parsing error. The error is returned alongside.
	ParseError
)

// Modes brings together the modes and flags of the program.
type Modes struct {
	// Output is where help text and parse errors are printed. It must be set
	// before Parse() is called.
	Output io.Writer

	// arguments not yet consumed by a Parse()
	args []string

	// the mode path so far: every mode selected by previous Parse() calls
	path []string

	// the sub-modes valid at the current parse depth. the first entry is the
	// default mode
	subModes []string

	flags *flag.FlagSet

	// arguments remaining after flag parsing and mode selection
	remaining []string
}

// NewArgs supplies the program arguments to be parsed, excluding the program
// name. Typically called with os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.subModes = md.subModes[:0]
	md.newFlagSet()
}

// NewMode descends into the mode selected by the previous Parse(), readying
// the Modes instance for that mode's flags and sub-modes.
func (md *Modes) NewMode() {
	md.path = append(md.path, md.mode())
	md.args = md.RemainingArgs()
	md.subModes = md.subModes[:0]
	md.newFlagSet()
}

func (md *Modes) newFlagSet() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.remaining = nil
}

// AddSubModes declares the list of sub-modes valid at this parse depth. The
// first mode listed is the default, used when no mode argument is given.
func (md *Modes) AddSubModes(modes ...string) {
	md.subModes = append(md.subModes, modes...)
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 adds a float flag to the current mode.
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// Parse the current arguments against the flags and sub-modes registered at
// this depth.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("flag error: %v", err)
	}

	md.remaining = md.flags.Args()

	// validate any mode argument against the declared sub-modes
	if len(md.subModes) > 0 && len(md.remaining) > 0 {
		candidate := strings.ToUpper(md.remaining[0])
		for _, m := range md.subModes {
			if strings.ToUpper(m) == candidate {
				md.remaining[0] = candidate
				return ParseContinue, nil
			}
		}
		return ParseError, fmt.Errorf("%s is not a valid mode for %s", md.remaining[0], md.String())
	}

	return ParseContinue, nil
}

// writeHelp prints flag defaults and the list of valid sub-modes to the
// Output writer.
func (md *Modes) writeHelp() {
	numFlags := 0
	md.flags.VisitAll(func(_ *flag.Flag) { numFlags++ })

	if numFlags == 0 && len(md.subModes) == 0 {
		fmt.Fprintln(md.Output, "No help available")
		return
	}

	fmt.Fprintln(md.Output, "Usage:")

	if numFlags > 0 {
		md.flags.SetOutput(md.Output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}

// mode returns the mode selected by the most recent Parse(), taking the
// default sub-mode into account.
func (md *Modes) mode() string {
	if len(md.remaining) > 0 {
		for _, m := range md.subModes {
			if strings.EqualFold(m, md.remaining[0]) {
				return strings.ToUpper(md.remaining[0])
			}
		}
	}
	if len(md.subModes) > 0 {
		return strings.ToUpper(md.subModes[0])
	}
	return ""
}

// Mode returns the mode selected by the most recent Parse(). The empty
// string is returned when no sub-modes have been declared.
func (md *Modes) Mode() string {
	if len(md.subModes) == 0 {
		return ""
	}
	return md.mode()
}

// Path returns the mode path descended so far, not including the current
// mode.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// String returns the mode path including the current mode.
func (md *Modes) String() string {
	p := md.Path()
	m := md.Mode()
	if p == "" {
		return m
	}
	if m == "" {
		return p
	}
	return p + "/" + m
}

// RemainingArgs returns the arguments not consumed by Parse(). If sub-modes
// have been declared the first remaining argument is the selected mode.
func (md *Modes) RemainingArgs() []string {
	if len(md.subModes) > 0 && len(md.remaining) > 0 {
		return md.remaining[1:]
	}
	return md.remaining
}
