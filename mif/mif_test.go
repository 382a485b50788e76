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

package mif_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/mif"
	"github.com/fpgafx/mifgen/test"
)

const expectedSmall = `-- test table
-- second line

WIDTH=16;
DEPTH=4;
ADDRESS_RADIX=HEX;
DATA_RADIX=HEX;

CONTENT BEGIN
0000    :    0000;
0001    :    2710;
0002    :    0000;
0003    :    d8f0;
END;
`

func smallTable() *mif.Table {
	return &mif.Table{
		Header: []string{"test table", "second line"},
		Width:  16,
		Data:   []uint32{0x0000, 0x2710, 0x0000, 0xd8f0},
	}
}

func TestWrite(t *testing.T) {
	var w test.CompareWriter
	test.DemandSuccess(t, mif.Write(&w, smallTable()))
	if diff := cmp.Diff(expectedSmall, w.String()); diff != "" {
		t.Errorf("unexpected MIF output (-want +got):\n%s", diff)
	}
}

func TestWritePadding(t *testing.T) {
	tbl := &mif.Table{Width: 15, Data: make([]uint32, 0x12)}
	tbl.Data[0x11] = 0xa

	var w test.CompareWriter
	test.DemandSuccess(t, mif.Write(&w, tbl))

	// no header lines means the output starts with the blank separator line
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "\nWIDTH=15;\nDEPTH=18;\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "\n0011    :    000a;\nEND;\n"))
}

func TestWriteInvalid(t *testing.T) {
	var w test.CompareWriter

	err := mif.Write(&w, &mif.Table{Width: 15, Data: []uint32{0x8000}})
	test.ExpectSuccess(t, curated.Is(err, mif.InvalidTable))

	err = mif.Write(&w, &mif.Table{Width: 15})
	test.ExpectSuccess(t, curated.Is(err, mif.InvalidTable))

	err = mif.Write(&w, &mif.Table{Width: 0, Data: []uint32{0}})
	test.ExpectSuccess(t, curated.Is(err, mif.InvalidTable))

	// nothing is written for an invalid table
	test.ExpectEquality(t, w.String(), "")
}

func TestRoundTrip(t *testing.T) {
	tbl, err := mif.Parse(strings.NewReader(expectedSmall))
	test.DemandSuccess(t, err)

	if diff := cmp.Diff(smallTable(), tbl); diff != "" {
		t.Errorf("unexpected table (-want +got):\n%s", diff)
	}

	test.ExpectEquality(t, tbl.Depth(), 4)
	test.ExpectEquality(t, tbl.Signed(1), 10000)
	test.ExpectEquality(t, tbl.Signed(3), -9999)
	test.ExpectEquality(t, tbl.Peak(), 10000)
}

func TestParseErrors(t *testing.T) {
	bad := map[string]string{
		"depth":    strings.Replace(expectedSmall, "DEPTH=4;", "DEPTH=5;", 1),
		"sequence": strings.Replace(expectedSmall, "0002    :", "0005    :", 1),
		"radix":    strings.Replace(expectedSmall, "DATA_RADIX=HEX;", "DATA_RADIX=DEC;", 1),
		"no end":   strings.Replace(expectedSmall, "END;\n", "", 1),
		"semi":     strings.Replace(expectedSmall, "2710;", "2710", 1),
		"data":     strings.Replace(expectedSmall, "2710;", "27g0;", 1),
		"key":      strings.Replace(expectedSmall, "WIDTH=16;", "BREADTH=16;", 1),
		"after":    expectedSmall + "0004    :    0000;\n",
	}

	for name, s := range bad {
		_, err := mif.Parse(strings.NewReader(s))
		test.ExpectSuccess(t, curated.Is(err, mif.ParseError), name)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "table.mif")

	test.DemandSuccess(t, mif.WriteFile(fn, smallTable()))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), expectedSmall)

	tbl, err := mif.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl.Depth(), 4)
}

func TestWriteFileUnwritable(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "no", "such", "dir", "table.mif")

	err := mif.WriteFile(fn, smallTable())
	test.ExpectSuccess(t, curated.Is(err, mif.WriteError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteFileFailure(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "table.mif")

	// a failed write does not leave a file behind
	bad := &mif.Table{Width: 15, Data: []uint32{0x8000}}
	test.ExpectSuccess(t, curated.Is(mif.WriteFile(fn, bad), mif.WriteError))
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	// nor does it disturb an existing file
	test.DemandSuccess(t, mif.WriteFile(fn, smallTable()))
	test.ExpectFailure(t, mif.WriteFile(fn, bad))
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), expectedSmall)

	// the directory holds only the completed table
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}
