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

package logger

// Permissions indicates whether the environment making a log request is
// allowed to create new log entries. The environment type satisfies this
// interface, meaning that secondary emulations (thumbnailers, previews) can
// be prevented from flooding the log.
type Permissions interface {
	AllowLogging() bool
}

// Allow can be used in place of a Permissions implementation when logging
// should proceed unconditionally.
var Allow Permissions = allow{}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}
