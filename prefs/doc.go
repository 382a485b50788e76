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

// Package prefs holds typed preference values. Each type (String, Int, Float)
// stores its value atomically and can have a hook called before and after
// the value changes. The pre-hook can reject a value by returning an error,
// which is how validation of a preference is implemented.
//
// Preferences are collected in a Group. Values can be specified on the
// command line as a prefs string and are pushed onto the command line stack
// with PushCommandLineStack(). A call to Group.LoadCommandLine() then sets
// the preferences from the most recent command line group.
package prefs
