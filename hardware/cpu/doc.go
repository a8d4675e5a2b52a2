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

// Package cpu implements the processor: the ARM and Thumb interpreters, the
// barrel shifter and ALU with their exact flag semantics, the condition
// predicates, the prefetch pipeline and exception entry.
//
// The CPU interprets one instruction per call to Step(). Decode is a table
// lookup through the arm and thumb sub-packages; execution dispatches on the
// decoded category. Memory accesses go through the bus interface supplied at
// construction.
package cpu
