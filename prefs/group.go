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
	"strings"
)

// Group is an ordered collection of named preferences.
type Group struct {
	keys    []string
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the group. The key must be unique within the group.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key already in group (%s)", key)
	}
	g.keys = append(g.keys, key)
	g.entries[key] = p
	return nil
}

// Keys returns the keys of the group in the order in which they were added.
func (g *Group) Keys() []string {
	return g.keys
}

// LoadCommandLine sets every preference in the group that has a value in the
// current command line group. Values that are used are removed from the
// command line group.
func (g *Group) LoadCommandLine() error {
	for _, key := range g.keys {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

// String returns the preferences in the same format as used by
// PushCommandLineStack().
func (g *Group) String() string {
	s := strings.Builder{}
	for _, key := range g.keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, g.entries[key].String()))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
