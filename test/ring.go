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

// RingWriter is an implementation of the io.Writer interface. It keeps only
// the most recent bytes written to it, up to the size of its buffer.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size argument is the maximum number of bytes retained.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be greater than zero")
	}
	return &RingWriter{
		buffer: make([]byte, 0, size),
		size:   size,
	}, nil
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// a write larger than the buffer only keeps the tail of the write
	if len(p) > r.size {
		p = p[len(p)-r.size:]
	}

	excess := len(r.buffer) + len(p) - r.size
	if excess > 0 {
		r.buffer = r.buffer[excess:]
	}
	r.buffer = append(r.buffer, p...)

	return n, nil
}

// Reset the contents of the writer.
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// String returns the retained contents of the writer.
func (r *RingWriter) String() string {
	return string(r.buffer)
}
