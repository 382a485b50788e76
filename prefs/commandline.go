// This file is part of Mifgen.
//
// Mifgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mifgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mifgen.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// a group of parameter values taken from a single prefs string. values are
// removed from the group as they are claimed by a preference, leaving only
// the values nothing has asked for
type commandLineGroup map[string]Value

// unclaimed values in the group formatted as a prefs string, sorted by key
func (g commandLineGroup) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%v", k, g[k]))
	}
	return strings.Join(s, "; ")
}

// the most recently pushed group is the only one consulted by
// GetCommandLinePref()
var commandLineStack []commandLineGroup

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). The values in the group that were never claimed are
// returned as a prefs string, sorted by key. An unknown parameter on the
// command line will therefore be found in the returned string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return top.String()
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// prefs string is a list of key/value pairs separated by semi-colons. Keys and
// values are separated by a double colon. For example:
//
//	noisefloor::20; limiter::10000
//
// Pairs without a double colon, or with more than one, are ignored. So are
// pairs with an empty key.
func PushCommandLineStack(prefs string) {
	g := make(commandLineGroup)

	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		g[k] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, g)
}

// GetCommandLinePref claims the value for key from the most recent group. A
// claimed value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]

	v, ok := g[key]
	if !ok {
		return false, nil
	}
	delete(g, key)

	return true, v
}
