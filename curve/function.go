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

package curve

import "github.com/fpgafx/mifgen/curated"

// OutOfDomain is the pattern for errors returned when a function is
// evaluated outside of its domain.
const OutOfDomain = "curve: index %d outside of domain [0, %d]"

// Function is sampled at every index in the domain [0, Depth()].
type Function interface {
	// Eval returns the real value of the function at index x. Implementations
	// must be safe to call from more than one goroutine.
	Eval(x int) (float64, error)

	// Depth returns the final index of the domain. The number of samples is
	// one more than this value.
	Depth() int
}

func checkDomain(x int, n int) error {
	if x < 0 || x > n {
		return curated.Errorf(OutOfDomain, x, n)
	}
	return nil
}
