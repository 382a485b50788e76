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

package audition_test

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fpgafx/mifgen/audition"
	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/curve"
	"github.com/fpgafx/mifgen/pipeline"
	"github.com/fpgafx/mifgen/rom"
	"github.com/fpgafx/mifgen/test"
	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/youpy/go-wav"
)

func TestTone(t *testing.T) {
	s := audition.Tone(1000, 0.5, 8000)
	test.ExpectEquality(t, len(s.Data), 4000)
	test.ExpectEquality(t, s.Duration(), 500*time.Millisecond)

	// 8 samples per cycle
	test.ExpectApproximate(t, s.Data[2], 1.0, 1e-9)
	test.ExpectApproximate(t, s.Data[6], -1.0, 1e-9)
	test.ExpectApproximate(t, s.Peak(), 1.0, 1e-9)
}

// writes a stereo 16 bit wav file with go-audio. the left channel is a ramp
// and the right channel is silent
func stereoWAV(t *testing.T) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "ramp.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := gowav.NewEncoder(f, 22050, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 22050},
		SourceBitDepth: 16,
	}
	for _, v := range []int{0, 8192, 16384, -16384, -32768} {
		buf.Data = append(buf.Data, v, 0)
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	return fn
}

func TestLoadWAV(t *testing.T) {
	s, err := audition.Load(stereoWAV(t))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.SampleRate, 22050)
	test.DemandEquality(t, len(s.Data), 5)
	test.ExpectEquality(t, s.Data[1], 0.25)
	test.ExpectEquality(t, s.Data[2], 0.5)
	test.ExpectEquality(t, s.Data[3], -0.5)
	test.ExpectEquality(t, s.Data[4], -1.0)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := audition.Load(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, audition.DecodeError))

	fn := filepath.Join(dir, "notes.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not audio"), 0o644))
	_, err = audition.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, audition.DecodeError))

	_, err = audition.DecodeWAV(bytes.NewReader([]byte("not a wav file at all")))
	test.ExpectSuccess(t, curated.Is(err, audition.DecodeError))

	_, err = audition.DecodeMP3(bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Is(err, audition.DecodeError))
}

func TestWriteSignal(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")
	s := &audition.Signal{
		SampleRate: 8000,
		Data:       []float64{0, 0.5, -0.5, 1, -1, 2, -2},
	}
	test.DemandSuccess(t, audition.WriteSignal(fn, s))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	r := wav.NewReader(bytes.NewReader(b))
	format, err := r.Format()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format.NumChannels, uint16(1))
	test.ExpectEquality(t, format.SampleRate, uint32(8000))
	test.ExpectEquality(t, format.BitsPerSample, uint16(16))

	var got []int
	for {
		samples, err := r.ReadSamples()
		for _, s := range samples {
			got = append(got, r.IntValue(s, 0))
		}
		if err == io.EOF {
			break
		}
		test.DemandSuccess(t, err)
	}

	// values beyond full scale are clipped
	exp := []int{0, 16384, -16384, math.MaxInt16, -math.MaxInt16, math.MaxInt16, -math.MaxInt16}
	test.DemandEquality(t, len(got), len(exp))
	for i := range exp {
		test.ExpectEquality(t, got[i], exp[i], i)
	}
}

func TestRender(t *testing.T) {
	tab, err := pipeline.Transfer(context.Background(), curve.DefaultConfig())
	test.DemandSuccess(t, err)
	r, err := rom.New(tab)
	test.DemandSuccess(t, err)

	in := audition.Tone(441, 0.1, audition.DefaultSampleRate)
	out := audition.Render(r, in, 0.5)

	test.ExpectEquality(t, out.SampleRate, in.SampleRate)
	test.ExpectEquality(t, len(out.Data), len(in.Data))

	// the compression curve lifts a half scale input and the output keeps
	// the sign of the input
	test.ExpectSuccess(t, out.Peak() > 0.5)
	test.ExpectSuccess(t, out.Peak() < float64(curve.DefaultInputLimiter)/float64(curve.DefaultDepth))
	for i := range in.Data {
		if in.Data[i]*out.Data[i] < 0 {
			t.Fatalf("sign of sample %d has changed", i)
		}
	}
}
