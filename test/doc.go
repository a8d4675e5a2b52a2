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

// Package test contains helper functions to help with testing. Rather than
// depending on a thirdparty testing framework, the test functions required by
// the project are defined here.
//
// The Expect*() functions compare values against an expected outcome and call
// t.Errorf() with a standardised message on failure. The Writer type is an
// implementation of io.Writer that can be used to compare emitted text with
// expected text.
package test
