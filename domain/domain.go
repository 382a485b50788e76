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

// Package domain generates the address sequence of a lookup table.
package domain

import "github.com/fpgafx/mifgen/curated"

// InvalidDepth is the pattern for errors returned when the final index of the
// domain is negative.
const InvalidDepth = "domain: invalid final index (%d)"

// Indices returns the strictly increasing sequence 0, 1, ..., n. The length
// of the sequence is n+1, which is the depth of a table addressed by the
// sequence.
func Indices(n int) ([]int, error) {
	if n < 0 {
		return nil, curated.Errorf(InvalidDepth, n)
	}

	idx := make([]int, n+1)
	for i := range idx {
		idx[i] = i
	}

	return idx, nil
}

// Chunks divides the domain 0..n into consecutive ranges of at most size
// indices. Each range is returned as a [from, to) pair. Useful for dividing
// work between goroutines.
func Chunks(n int, size int) ([][2]int, error) {
	if n < 0 {
		return nil, curated.Errorf(InvalidDepth, n)
	}
	size = max(1, size)

	var c [][2]int
	for from := 0; from <= n; from += size {
		c = append(c, [2]int{from, min(from+size, n+1)})
	}

	return c, nil
}
