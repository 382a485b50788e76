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

// Package rom simulates the lookup of a generated table by the FPGA. The
// magnitude of a sample is used as the address and the sign of the sample is
// restored on the value read from the table.
package rom

import (
	"fmt"
	"math"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/mif"
)

// AddressError is the pattern for errors returned by Read() when the address
// is outside of the table.
const AddressError = "rom: address out of range (%#04x)"

// ROM is a read-only copy of a table.
type ROM struct {
	data  []int64
	width int
}

// New creates a ROM from a table. The table is validated before it is
// copied.
func New(t *mif.Table) (*ROM, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("rom: %w", err)
	}

	r := &ROM{
		data:  make([]int64, t.Depth()),
		width: t.Width,
	}
	for i := range r.data {
		r.data[i] = t.Signed(i)
	}

	return r, nil
}

// Depth returns the number of addresses in the ROM.
func (r *ROM) Depth() int {
	return len(r.data)
}

// Width returns the width of each value in bits.
func (r *ROM) Width() int {
	return r.width
}

// Read the signed value at the address.
func (r *ROM) Read(address int) (int64, error) {
	if address < 0 || address >= len(r.data) {
		return 0, curated.Errorf(AddressError, address)
	}
	return r.data[address], nil
}

// Shape a sample. Magnitudes beyond the last address saturate at the last
// address.
func (r *ROM) Shape(sample int64) int64 {
	// magnitude is unsigned so that the most negative sample does not
	// overflow
	neg := sample < 0
	mag := uint64(sample)
	if neg {
		mag = -mag
	}
	a := min(mag, uint64(len(r.data)-1))

	v := r.data[a]
	if neg {
		return -v
	}
	return v
}

// ShapeFloat shapes a normalised sample. The sample is multiplied by drive
// and scaled so that 1.0 is the final address of the ROM. The result is
// scaled back by the same amount.
//
// Driven samples beyond full scale saturate at the final address. A NaN
// sample is treated as zero.
func (r *ROM) ShapeFloat(v float64, drive float64) float64 {
	full := float64(len(r.data) - 1)
	if full == 0 {
		return 0
	}
	d := v * drive * full
	if math.IsNaN(d) {
		d = 0
	}
	d = math.Max(-full, math.Min(full, d))
	return float64(r.Shape(int64(math.Round(d)))) / full
}

// Oscillate returns the value of the ROM as a wavetable. The phase is in the
// range [0, 1) and is rounded to the nearest address. The final address is
// the start of the next period.
func (r *ROM) Oscillate(phase float64) int64 {
	n := len(r.data) - 1
	if n < 1 {
		return r.data[0]
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		phase = 0
	}
	phase -= math.Floor(phase)
	return r.data[int(math.Round(phase*float64(n)))%n]
}
