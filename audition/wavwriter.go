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
	"os"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
	"github.com/youpy/go-wav"
)

// WavWriter collects samples and writes them to a mono 16 bit WAV file when
// EndMixing() is called.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, sampleRate int) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}
}

// SetAudio adds normalised samples to the buffer. Values outside of the
// range [-1, 1] are clipped.
func (aw *WavWriter) SetAudio(data []float64) {
	for _, v := range data {
		v = math.Max(-1, math.Min(1, v))
		w := wav.Sample{}
		w.Values[0] = int(math.Round(v * math.MaxInt16))
		aw.buffer = append(aw.buffer, w)
	}
}

// EndMixing writes the buffer to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// WriteSignal writes the signal to the named file.
func WriteSignal(filename string, s *Signal) error {
	aw := NewWavWriter(filename, s.SampleRate)
	aw.SetAudio(s.Data)
	return aw.EndMixing()
}
