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

// Package quantize maps real valued samples to fixed width codes suitable
// for a ROM image.
//
// Rounding is always towards positive infinity (ceiling). Negative values are
// wrapped into the unsigned range by adding the all-ones mask of the width,
// which is one less than the more usual two's complement offset of 2^w. This
// matches the existing ROM images that are consumed by the hardware and must
// not be "corrected". Codes are masked to the width so values that are out of
// range alias rather than being clamped.
package quantize

import (
	"fmt"
	"math"
)

// MaxWidth is the widest code supported.
const MaxWidth = 32

// Mask returns the all-ones value for the width. ie. 2^width - 1
func Mask(width int) uint32 {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("quantize: unsupported width (%d)", width))
	}
	return uint32((uint64(1) << width) - 1)
}

// Round returns the ceiling of v as an integer.
func Round(v float64) int64 {
	return int64(math.Ceil(v))
}

// Code returns the quantized code for value v at the specified width.
func Code(v float64, width int) uint32 {
	return Wrap(Round(v), width)
}

// Wrap maps an already rounded value into the code space for the width.
func Wrap(r int64, width int) uint32 {
	mask := Mask(width)
	if r < 0 {
		r += int64(mask)
	}
	return uint32(r) & mask
}

// Signed reverses Wrap() for codes with the top bit of the width set. Codes
// without the top bit set are returned unchanged.
func Signed(code uint32, width int) int64 {
	mask := Mask(width)
	code &= mask
	if code&(1<<(width-1)) != 0 {
		return int64(code) - int64(mask)
	}
	return int64(code)
}
