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

package modalflag_test

import (
	"testing"

	"github.com/fpgafx/mifgen/modalflag"
	"github.com/fpgafx/mifgen/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("sine", "transfer", "audition")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: SINE, TRANSFER, AUDITION\n" +
		"    default: SINE\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"transfer", "-f", "out.mif", "-s"})
	md.AddSubModes("SINE", "TRANSFER")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TRANSFER")

	md.NewMode()
	fn := md.AddString("f", "", "output file")
	show := md.AddBool("s", false, "show plot")

	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *fn, "out.mif")
	test.ExpectEquality(t, *show, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
	test.ExpectEquality(t, md.Path(), "TRANSFER")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"table.mif"})
	md.AddSubModes("ANALYSE", "AUDITION")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "ANALYSE")

	md.NewMode()
	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "table.mif")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}
