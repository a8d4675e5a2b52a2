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

package cartridgeloader

// FileExtensions is the list of ROM file extensions recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{
	".GBA", ".AGB", ".BIN", ".ROM",
}

// ArchiveExtensions is the list of archive file extensions the loader can
// open to find a ROM inside.
var ArchiveExtensions = [...]string{
	".7Z",
}

// SaveFileExtension is the extension used for the companion save file.
const SaveFileExtension = ".sav"
