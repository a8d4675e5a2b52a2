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

// Package clocks defines the constant values that define the speed of the
// main clock in the console and the geometry of the video frame expressed in
// that clock.
package clocks

// Master is the speed of the main clock in MHz.
const Master = 16.777216

// Frame geometry in master clock cycles. A scanline is CyclesPerScanline
// cycles of which the first HBlankStart are the visible draw period; a frame
// is ScanlinesPerFrame scanlines of which the first VisibleScanlines are
// drawn.
const (
	CyclesPerScanline = 1232
	HBlankStart       = 960
	ScanlinesPerFrame = 228
	VisibleScanlines  = 160
	CyclesPerFrame    = CyclesPerScanline * ScanlinesPerFrame
)

// FramesPerSecond is the refresh rate implied by the clock and frame
// geometry.
const FramesPerSecond = Master * 1e6 / CyclesPerFrame
