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

package mif

import (
	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/quantize"
)

// InvalidTable is the pattern for errors returned when a table is internally
// inconsistent.
const InvalidTable = "mif: invalid table: %s"

// Table is a memory initialisation table. Addresses are implicit: the code
// for address n is Data[n].
type Table struct {
	// header lines are written as comments at the top of the file. they
	// should not contain the comment prefix
	Header []string

	// width of each code in bits
	Width int

	// one code per address. the depth of the table is len(Data)
	Data []uint32
}

// Depth returns the number of addresses in the table.
func (t *Table) Depth() int {
	return len(t.Data)
}

// Validate checks that the width is supported and that every code fits
// within the width.
func (t *Table) Validate() error {
	if t.Width < 1 || t.Width > quantize.MaxWidth {
		return curated.Errorf(InvalidTable, "unsupported width")
	}
	if len(t.Data) == 0 {
		return curated.Errorf(InvalidTable, "no data")
	}
	mask := quantize.Mask(t.Width)
	for _, d := range t.Data {
		if d&^mask != 0 {
			return curated.Errorf(InvalidTable, "code wider than table width")
		}
	}
	return nil
}

// Signed returns the code at the address interpreted as a signed value. See
// quantize.Signed() for details.
func (t *Table) Signed(address int) int64 {
	return quantize.Signed(t.Data[address], t.Width)
}

// Peak returns the largest magnitude of any code in the table when
// interpreted as a signed value.
func (t *Table) Peak() int64 {
	var p int64
	for i := range t.Data {
		v := t.Signed(i)
		if v < 0 {
			v = -v
		}
		p = max(p, v)
	}
	return p
}
