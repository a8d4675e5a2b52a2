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

package prefs

import (
	"sort"
	"strings"
)

// the commandline stack allows preference values to be supplied on the
// command line, overriding whatever is stored on disk. values are pushed in
// groups; each group is popped as a whole once it has been consumed.
var commandLineStack []map[string]string

// PushCommandLineStack parses a preferences string of the form
//
//	key::value; key::value; ...
//
// and pushes the result onto the command line stack. Fragments that do not
// contain the :: separator are dropped.
func PushCommandLineStack(s string) {
	group := make(map[string]string)
	for _, f := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(f, "::")
		if !ok {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack pops the most recent group and returns the unconsumed
// values in the same form accepted by PushCommandLineStack, with the entries
// sorted by key. An empty stack returns the empty string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	group := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			s.WriteString("; ")
		}
		s.WriteString(k)
		s.WriteString("::")
		s.WriteString(group[k])
	}
	return s.String()
}

// GetCommandLinePref looks up key in the most recent command line group. The
// entry is consumed: a successful lookup removes it from the group.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	group := commandLineStack[len(commandLineStack)-1]
	v, ok := group[key]
	if !ok {
		return false, ""
	}
	delete(group, key)
	return true, v
}
