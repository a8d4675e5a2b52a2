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

// Package coords represents a discrete moment in the video pipeline's output:
// the frame number, the scanline within the frame and the clock (cycle)
// within the scanline.
package coords

import "fmt"

// Coords identifies an exact point in the video output.
type Coords struct {
	Frame    int
	Scanline int
	Clock    int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Scanline: %d  Clock: %d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two instances of Coords.
func Equal(a, b Coords) bool {
	return a == b
}

// GreaterThanOrEqual compares two instances of Coords and returns true if A
// is after or at the same moment as B.
func GreaterThanOrEqual(a, b Coords) bool {
	if a.Frame != b.Frame {
		return a.Frame > b.Frame
	}
	if a.Scanline != b.Scanline {
		return a.Scanline > b.Scanline
	}
	return a.Clock >= b.Clock
}

// Diff returns the difference between two instances of Coords expressed as a
// Coords value. The scanlinesPerFrame and clocksPerScanline arguments define
// the geometry of a frame.
func Diff(a, b Coords, scanlinesPerFrame, clocksPerScanline int) Coords {
	ac := ((a.Frame*scanlinesPerFrame)+a.Scanline)*clocksPerScanline + a.Clock
	bc := ((b.Frame*scanlinesPerFrame)+b.Scanline)*clocksPerScanline + b.Clock
	d := ac - bc

	coords := Coords{}
	coords.Clock = d % clocksPerScanline
	d /= clocksPerScanline
	coords.Scanline = d % scanlinesPerFrame
	coords.Frame = d / scanlinesPerFrame
	return coords
}
