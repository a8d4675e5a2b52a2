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

package symbols_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pocketcore/symbols"
	"github.com/jetsetilly/pocketcore/test"
)

func TestCanonicalSymbols(t *testing.T) {
	sym := symbols.NewSymbols()

	l, ok := sym.LookupAddress(0x04000004)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "DISPSTAT")

	a, ok := sym.LookupLabel("IE")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x04000200))

	_, ok = sym.LookupAddress(0x12345678)
	test.ExpectFailure(t, ok)
}

func TestAddReplaces(t *testing.T) {
	sym := symbols.NewSymbols()

	sym.Add(0x08000000, "entrypoint")
	l, ok := sym.LookupAddress(0x08000000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "entrypoint")

	sym.Add(0x08000000, "start")
	l, _ = sym.LookupAddress(0x08000000)
	test.ExpectEquality(t, l, "start")
}

func TestReadSymbolsFile(t *testing.T) {
	sym := symbols.NewSymbols()

	f := `; comment line
main 0x08000100
irq_handler 0x03000200

`
	err := sym.ReadSymbolsFile(strings.NewReader(f))
	test.ExpectSuccess(t, err)

	a, ok := sym.LookupLabel("main")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x08000100))

	a, ok = sym.LookupLabel("irq_handler")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x03000200))

	err = sym.ReadSymbolsFile(strings.NewReader("too many fields here"))
	test.ExpectFailure(t, err)
}
