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

// Package logger is the central log facility for the project. All generated
// log entries accumulate in a ring buffer of a fixed number of entries and
// can be written or tailed on demand.
//
// Every entry is tagged with the name of the component making the entry
// ("CPU", "memory", "backup", "cartridge", "symbols") and each log request
// carries a Permissions argument so that secondary emulation instances can be
// prevented from logging.
package logger

import "io"

const maxCentral = 256

// central is the single log used by the package-level functions. Most code
// logs through these; a private Logger instance is only needed when a
// completely separate log is required.
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permissions, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permissions, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// WriteRecent writes the entries added to the central logger since the last
// call to WriteRecent.
func WriteRecent(output io.Writer) {
	central.WriteRecent(output)
}

// Tail writes the last N entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints entries to io.Writer as they are added to the central
// logger.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// BorrowLog gives the provided function the critical section and access to
// the central logger's entries.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
