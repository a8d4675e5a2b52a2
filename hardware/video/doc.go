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

// Package video implements the scan state machine and the compositor: the
// HDraw/HBlank/VBlank cycle, VCount comparison, the four tiled and three
// bitmap background modes, 128 sprites with affine transforms, and the two
// rectangular windows.
//
// The scan machine is driven by the scheduler with the cycle cost of each
// executed instruction. Scanlines are drawn whole at the HBlank boundary;
// the running affine positions advance per drawn scanline and reset from
// the latched reference registers at the top of the frame.
package video
