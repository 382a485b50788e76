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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// DecodeError is the pattern for errors returned when an audio file cannot be
// loaded.
const DecodeError = "audition: %v"

// Load the named audio file. The type of file is decided by the file
// extension.
func Load(filename string) (*Signal, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}
	defer f.Close()

	var s *Signal

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		s, err = DecodeWAV(f)
	case ".mp3":
		s, err = DecodeMP3(f)
	default:
		return nil, curated.Errorf(DecodeError, "unsupported file type")
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "audition", "%s: sample rate: %dHz", filepath.Base(filename), s.SampleRate)
	logger.Logf(logger.Allow, "audition", "%s: total time: %.02fs", filepath.Base(filename), s.Duration().Seconds())

	return s, nil
}

// DecodeWAV decodes a WAV stream. Integer PCM of any bit depth is normalised
// to the range [-1, 1].
func DecodeWAV(r io.ReadSeeker) (*Signal, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, curated.Errorf(DecodeError, "wav: error decoding")
	}
	if !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, curated.Errorf(DecodeError, "wav: no channels")
	}
	if dec.BitDepth < 2 {
		return nil, curated.Errorf(DecodeError, "wav: unsupported bit depth")
	}
	scale := float64(int64(1) << (dec.BitDepth - 1))

	// 8 bit wav data is unsigned
	var bias float64
	if dec.BitDepth == 8 {
		bias = scale
	}

	s := &Signal{
		SampleRate: int(dec.SampleRate),
		Data:       make([]float64, 0, len(buf.Data)/chans),
	}

	// copy first channel only
	for i := 0; i < len(buf.Data); i += chans {
		s.Data = append(s.Data, (float64(buf.Data[i])-bias)/scale)
	}

	return s, nil
}

// DecodeMP3 decodes an MP3 stream. The decoded stream is always 16 bit
// little endian stereo.
func DecodeMP3(r io.Reader) (*Signal, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	s := &Signal{
		SampleRate: dec.SampleRate(),
	}

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)

		// four bytes per frame. the left channel is the first two bytes
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			s.Data = append(s.Data, float64(v)/32768)
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, curated.Errorf(DecodeError, err)
		}
	}

	return s, nil
}
