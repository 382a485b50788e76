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

import (
	"fmt"
	"math"

	"github.com/fpgafx/mifgen/curated"
)

// Default values for the sinusoid table.
const (
	DefaultSineDepth     = 255
	DefaultSineAmplitude = 10000.0
)

// Sine is one period of a sinusoid over the domain [0, N]. The period is N so
// the final index is the start of the next period.
type Sine struct {
	depth     int
	amplitude float64
}

// NewSine is the preferred method of initialisation for the Sine type.
func NewSine(depth int, amplitude float64) (*Sine, error) {
	if depth < 1 {
		return nil, curated.Errorf(InvalidConfig, fmt.Sprintf("depth must be positive (%d)", depth))
	}
	return &Sine{
		depth:     depth,
		amplitude: amplitude,
	}, nil
}

// Amplitude returns the peak value of the sinusoid.
func (s *Sine) Amplitude() float64 {
	return s.amplitude
}

// Depth implements the Function interface.
func (s *Sine) Depth() int {
	return s.depth
}

// Eval implements the Function interface.
func (s *Sine) Eval(x int) (float64, error) {
	if err := checkDomain(x, s.depth); err != nil {
		return 0, err
	}
	return s.amplitude * math.Sin(float64(x)*2*math.Pi/float64(s.depth)), nil
}
