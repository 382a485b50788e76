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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SINE", "TRANSFER")
//	p, err := md.Parse()
//
// The first sub-mode is the default. After Parse() the Mode() function
// returns the selected mode. Each mode then starts a new layer of flags with
// NewMode(), adds its flags and calls Parse() again:
//
//	switch md.Mode() {
//	case "TRANSFER":
//		md.NewMode()
//		fn := md.AddString("f", "", "write table to file")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//	}
//
// Sub-mode comparisons are case insensitive. Help for each layer is printed
// automatically when the -help flag is given, in which case Parse() returns
// ParseHelp.
package modalflag
