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

// Package analysis measures the harmonic content that a table adds to a pure
// tone.
//
// A sine of exactly one second is driven through the ROM so that every FFT
// bin is one hertz wide and the harmonics of an integer frequency fall
// exactly on a bin. No window is required.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/rom"
	"github.com/mjibson/go-dsp/fft"
)

// InvalidAnalysis is the pattern for errors returned by Harmonics() when the
// parameters are unusable.
const InvalidAnalysis = "analysis: %s"

// SampleRate of the test tone. The tone lasts for one second.
const SampleRate = 48000

// NumHarmonics is the number of harmonics measured, including the
// fundamental.
const NumHarmonics = 10

// Result of the analysis.
type Result struct {
	Frequency int
	Drive     float64

	// amplitude of the fundamental and each harmonic. index 0 is the
	// fundamental. harmonics at or above the Nyquist frequency are not
	// measured and are zero
	Harmonics []float64

	// DC offset of the output
	DC float64
}

// THD is the total harmonic distortion as a ratio of the fundamental.
func (r Result) THD() float64 {
	if len(r.Harmonics) == 0 || r.Harmonics[0] == 0 {
		return 0
	}
	var sum float64
	for _, h := range r.Harmonics[1:] {
		sum += h * h
	}
	return math.Sqrt(sum) / r.Harmonics[0]
}

// Decibels returns the level of each harmonic relative to the fundamental.
func (r Result) Decibels() []float64 {
	db := make([]float64, len(r.Harmonics))
	for i, h := range r.Harmonics {
		if h == 0 || r.Harmonics[0] == 0 {
			db[i] = math.Inf(-1)
			continue
		}
		db[i] = 20 * math.Log10(h/r.Harmonics[0])
	}
	return db
}

func (r Result) String() string {
	return fmt.Sprintf("%dHz drive %.02f: THD %.02f%%", r.Frequency, r.Drive, r.THD()*100)
}

// Harmonics drives a sine of the frequency through the ROM and measures the
// amplitude of the resulting harmonics. The frequency is rounded to the
// nearest hertz.
func Harmonics(r *rom.ROM, freq float64, drive float64) (Result, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return Result{}, curated.Errorf(InvalidAnalysis, "frequency must be finite")
	}
	f := int(math.Round(freq))
	if f < 1 || f >= SampleRate/2 {
		return Result{}, curated.Errorf(InvalidAnalysis, fmt.Sprintf("frequency out of range (%dHz)", f))
	}
	if math.IsNaN(drive) || math.IsInf(drive, 0) || drive <= 0 {
		return Result{}, curated.Errorf(InvalidAnalysis, "drive must be positive and finite")
	}

	x := make([]float64, SampleRate)
	for i := range x {
		v := math.Sin(2 * math.Pi * float64(f) * float64(i) / SampleRate)
		x[i] = r.ShapeFloat(v, drive)
	}

	spectrum := fft.FFTReal(x)

	res := Result{
		Frequency: f,
		Drive:     drive,
		Harmonics: make([]float64, NumHarmonics),
		DC:        real(spectrum[0]) / SampleRate,
	}

	// single sided amplitude
	for h := range res.Harmonics {
		bin := f * (h + 1)
		if bin >= SampleRate/2 {
			break
		}
		res.Harmonics[h] = 2 * cmplx.Abs(spectrum[bin]) / SampleRate
	}

	return res, nil
}
