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

package test

import "strings"

// Writer is an implementation of the io.Writer interface. It should be used
// to capture output employed by the test and to compare with expected output.
type Writer struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.b.Write(p)
}

// Compare the string argument with the accumulated contents of the writer.
func (tw *Writer) Compare(s string) bool {
	return s == tw.b.String()
}

// Clear the accumulated contents of the writer.
func (tw *Writer) Clear() {
	tw.b.Reset()
}

// String returns the accumulated contents of the writer.
func (tw *Writer) String() string {
	return tw.b.String()
}
