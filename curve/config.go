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

// InvalidConfig is the pattern for errors returned when a Config cannot be
// used to create a Transfer.
const InvalidConfig = "curve: invalid configuration: %s"

// Default values for the Transfer configuration. The shape constants (Sigma,
// ScaleDivisor and Angle) were chosen by eye and must be preserved exactly
// for the output to match existing ROM images.
const (
	DefaultDepth        = 1<<14 - 1
	DefaultNoiseFloor   = 20
	DefaultInputLimiter = 10000
	DefaultSigma        = 2000000.0
	DefaultScaleDivisor = 3.0
	DefaultAngle        = -math.Pi / 4
	DefaultBend         = 2.0

	// the informative parameters do not affect the calculation
	DefaultSoftStrum = 5000
	DefaultHardStrum = 8000
	DefaultPeak      = 10000
)

// Config describes a Transfer function.
type Config struct {
	// the final index of the domain (N)
	Depth int

	// boundaries of Zone B. NoiseFloor is inclusive to Zone B and
	// InputLimiter is inclusive to Zone C
	NoiseFloor   int
	InputLimiter int

	// width of the bell in Zone C
	Sigma float64

	// the height of the half-sine in Zone B is InputLimiter / ScaleDivisor
	ScaleDivisor float64

	// rotation of the frame in which the Zone B half-sine is drawn
	Angle float64

	// shape of Zone A. Bend is only used by ShapeExponential
	ZoneA ZoneAShape
	Bend  float64

	// informative parameters. used to annotate the table header and the plot
	SoftStrum int
	HardStrum int
	Peak      int
}

// DefaultConfig returns the configuration used for the overdrive ROM.
func DefaultConfig() Config {
	return Config{
		Depth:        DefaultDepth,
		NoiseFloor:   DefaultNoiseFloor,
		InputLimiter: DefaultInputLimiter,
		Sigma:        DefaultSigma,
		ScaleDivisor: DefaultScaleDivisor,
		Angle:        DefaultAngle,
		ZoneA:        ShapeIdentity,
		Bend:         DefaultBend,
		SoftStrum:    DefaultSoftStrum,
		HardStrum:    DefaultHardStrum,
		Peak:         DefaultPeak,
	}
}

// Validate returns an error if the zone boundaries are out of order or if a
// shape parameter cannot be used.
func (cfg Config) Validate() error {
	if cfg.Depth < 1 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("depth must be positive (%d)", cfg.Depth))
	}
	if cfg.NoiseFloor < 0 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("noise floor is negative (%d)", cfg.NoiseFloor))
	}
	if cfg.NoiseFloor >= cfg.InputLimiter {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("noise floor (%d) must be less than input limiter (%d)",
			cfg.NoiseFloor, cfg.InputLimiter))
	}
	if cfg.InputLimiter > cfg.Depth {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("input limiter (%d) is beyond the domain (%d)",
			cfg.InputLimiter, cfg.Depth))
	}
	if cfg.Sigma <= 0 {
		return curated.Errorf(InvalidConfig, "sigma must be positive")
	}
	if cfg.ScaleDivisor <= 0 {
		return curated.Errorf(InvalidConfig, "scale divisor must be positive")
	}
	if cfg.ZoneA == ShapeExponential && cfg.NoiseFloor == 0 {
		return curated.Errorf(InvalidConfig, "exponential zone A requires a noise floor")
	}
	return nil
}
