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

import "fmt"

// CappedWriter is an implementation of the io.Writer interface. It accepts
// writes up to a maximum accumulated size and silently drops everything after
// that.
type CappedWriter struct {
	buffer []byte
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type. The cap argument is the maximum number of bytes the
// writer will accept.
func NewCappedWriter(cap int) (*CappedWriter, error) {
	if cap <= 0 {
		return nil, fmt.Errorf("capped writer: cap must be greater than zero")
	}
	return &CappedWriter{
		buffer: make([]byte, 0, cap),
	}, nil
}

// Write implements the io.Writer interface. The number of bytes written is
// always reported as len(p), even when some or all of the bytes have been
// dropped.
func (c *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := cap(c.buffer) - len(c.buffer)
	if remaining > len(p) {
		remaining = len(p)
	}
	c.buffer = append(c.buffer, p[:remaining]...)
	return len(p), nil
}

// Reset the contents of the writer.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
}

// String returns the accepted contents of the writer.
func (c *CappedWriter) String() string {
	return string(c.buffer)
}
