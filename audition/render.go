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
	"github.com/fpgafx/mifgen/logger"
	"github.com/fpgafx/mifgen/rom"
)

// Render the signal through the ROM. The signal is multiplied by drive
// before it is looked up.
func Render(r *rom.ROM, in *Signal, drive float64) *Signal {
	out := &Signal{
		SampleRate: in.SampleRate,
		Data:       make([]float64, len(in.Data)),
	}
	for i, v := range in.Data {
		out.Data[i] = r.ShapeFloat(v, drive)
	}

	logger.Logf(logger.Allow, "audition", "rendered %d samples. peak in %.03f, peak out %.03f",
		len(out.Data), in.Peak()*drive, out.Peak())

	return out
}
