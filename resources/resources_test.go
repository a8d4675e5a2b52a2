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

package resources_test

import (
	"testing"

	"github.com/jetsetilly/pocketcore/resources"
	"github.com/jetsetilly/pocketcore/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".pocketcore/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".pocketcore/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".pocketcore/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".pocketcore/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".pocketcore")
}
