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

// Package registers implements the banked general-purpose register file and
// the CPSR/SPSR status registers of the CPU.
//
// The register file is modelled as a single "visible" array of sixteen
// registers plus a set of per-mode shadow slots. Mode changes are the only
// place the shadows are swapped, per the design note in spec.md §9: nothing
// outside File.SetMode ever reshuffles a shadow, and nothing hands out a
// pointer to a shadow slot directly.
package registers
