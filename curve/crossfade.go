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

// Crossfade mixes the dry (unprocessed) signal with the output of a Transfer
// function. The mix only applies below the input limiter, above which the
// output is the wet signal only. This imitates the crossfader in the effect
// design and is used for visualisation.
type Crossfade struct {
	Wet *Transfer

	// proportion of the dry signal in the output. 0.0 is 100% wet
	Dry float64
}

// Depth implements the Function interface.
func (c Crossfade) Depth() int {
	return c.Wet.Depth()
}

// Eval implements the Function interface.
func (c Crossfade) Eval(x int) (float64, error) {
	y, err := c.Wet.Eval(x)
	if err != nil {
		return 0, err
	}
	if x < c.Wet.cfg.InputLimiter {
		return c.Dry*float64(x) + (1-c.Dry)*y, nil
	}
	return y, nil
}
