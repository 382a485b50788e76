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

// Zone identifies a region of the Transfer function domain.
type Zone int

// List of valid Zone values.
const (
	// input is below the sensitivity threshold of the effect
	ZoneA Zone = iota

	// the working range of the effect where the signal is compressed
	ZoneB

	// above the input limiter. the output decays towards zero
	ZoneC
)

func (z Zone) String() string {
	switch z {
	case ZoneA:
		return "noise floor"
	case ZoneB:
		return "compression"
	case ZoneC:
		return "saturation"
	}
	return "unknown zone"
}

// ZoneAShape is the shape of the function in Zone A.
type ZoneAShape int

// List of valid ZoneAShape values.
const (
	// output is the same as the input. this is the shape used by the ROMs
	// built for the hardware
	ShapeIdentity ZoneAShape = iota

	// an exponential bend that acts as a gentle noise gate. the curve meets
	// the identity at both ends of the zone
	ShapeExponential
)

func (s ZoneAShape) String() string {
	switch s {
	case ShapeIdentity:
		return "identity"
	case ShapeExponential:
		return "exponential"
	}
	return "unknown shape"
}

// ParseZoneAShape returns the ZoneAShape named by s. The name is one of the
// values returned by ZoneAShape.String().
func ParseZoneAShape(s string) (ZoneAShape, bool) {
	for _, v := range []ZoneAShape{ShapeIdentity, ShapeExponential} {
		if v.String() == s {
			return v, true
		}
	}
	return ShapeIdentity, false
}
