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

package audition

import (
	"math"
	"time"
)

// DefaultSampleRate is the sample rate of synthesised tones.
const DefaultSampleRate = 44100

// Signal is a mono stream of normalised samples in the range [-1, 1].
type Signal struct {
	SampleRate int
	Data       []float64
}

// Duration of the signal.
func (s *Signal) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(len(s.Data)) / float64(s.SampleRate) * float64(time.Second))
}

// Peak returns the largest magnitude in the signal.
func (s *Signal) Peak() float64 {
	var p float64
	for _, v := range s.Data {
		p = max(p, math.Abs(v))
	}
	return p
}

// Tone synthesises a sine wave of full amplitude.
func Tone(freq float64, secs float64, sampleRate int) *Signal {
	n := max(0, int(secs*float64(sampleRate)))
	s := &Signal{
		SampleRate: sampleRate,
		Data:       make([]float64, n),
	}
	for i := range s.Data {
		s.Data[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return s
}
