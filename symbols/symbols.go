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

// Package symbols maps addresses to human readable labels: exception
// vectors, memory-mapped registers and any symbols loaded from a companion
// symbols file. Used by the hardware aggregate, which loads the companion
// symbols file and looks up the ROM's idle-loop address.
package symbols

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/pocketcore/errors"
)

// Symbols is a two-way mapping of address to label.
type Symbols struct {
	crit sync.Mutex

	byAddr  map[uint32]string
	byLabel map[string]uint32
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The returned instance is preloaded with the exception vectors and the
// memory-mapped register names.
func NewSymbols() *Symbols {
	sym := &Symbols{
		byAddr:  make(map[uint32]string),
		byLabel: make(map[string]uint32),
	}

	for a, l := range canonical {
		sym.add(a, l)
	}

	return sym
}

func (sym *Symbols) add(addr uint32, label string) {
	sym.byAddr[addr] = label
	sym.byLabel[label] = addr
}

// Add a symbol to the table, replacing any existing symbol at the same
// address.
func (sym *Symbols) Add(addr uint32, label string) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	sym.add(addr, label)
}

// LookupAddress returns the label for the address, if one exists.
func (sym *Symbols) LookupAddress(addr uint32) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	l, ok := sym.byAddr[addr]
	return l, ok
}

// LookupLabel returns the address for the label, if one exists.
func (sym *Symbols) LookupLabel(label string) (uint32, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	a, ok := sym.byLabel[label]
	return a, ok
}

// Labels returns every label in the table sorted by address.
func (sym *Symbols) Labels() []string {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	addrs := make([]uint32, 0, len(sym.byAddr))
	for a := range sym.byAddr {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	labels := make([]string, 0, len(addrs))
	for _, a := range addrs {
		labels = append(labels, sym.byAddr[a])
	}
	return labels
}

// ReadSymbolsFile reads symbols from the io.Reader. The expected format is
// one symbol per line:
//
//	<label> <hex address>
//
// Empty lines and lines beginning with a semi-colon are skipped.
func (sym *Symbols) ReadSymbolsFile(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return errors.Errorf(errors.SymbolsFileError, fmt.Sprintf("badly formatted line (%s)", line))
		}

		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			return errors.Errorf(errors.SymbolsFileError, err)
		}

		sym.Add(uint32(addr), fields[0])
	}

	return scanner.Err()
}
