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
	"math"
	"sort"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
)

// UnreachableSample is the pattern for errors returned when the Zone B search
// cannot find a point on the compression curve for an input. This can only
// happen with a misconfigured noise floor, input limiter or scale.
const UnreachableSample = "curve: compression curve does not reach input %d"

// Transfer is the overdrive/compressor transfer function. It must be created
// with NewTransfer() and is immutable once created.
type Transfer struct {
	cfg Config

	// ends of the compression half-sine measured along the diagonal
	x1 float64
	x2 float64

	sina  float64
	cosa  float64
	scale float64

	// the rotated compression curve for every integer parameter i in the
	// range [first, ceil(x2)). the point for parameter i is at index i-first
	first     int
	xr        []float64
	yr        []float64
	monotonic bool
}

// NewTransfer validates the configuration and precomputes the compression
// curve.
func NewTransfer(cfg Config) (*Transfer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tr := &Transfer{
		cfg:   cfg,
		x1:    math.Hypot(float64(cfg.NoiseFloor), float64(cfg.NoiseFloor)),
		x2:    math.Hypot(float64(cfg.InputLimiter), float64(cfg.InputLimiter)),
		sina:  math.Sin(cfg.Angle),
		cosa:  math.Cos(cfg.Angle),
		scale: float64(cfg.InputLimiter) / cfg.ScaleDivisor,
	}

	tr.first = int(math.Ceil(tr.x1))
	end := int(math.Ceil(tr.x2))

	n := max(0, end-tr.first)
	tr.xr = make([]float64, n)
	tr.yr = make([]float64, n)

	tr.monotonic = true
	for k := range n {
		tr.xr[k], tr.yr[k] = tr.rotate(tr.first + k)
		if k > 0 && tr.xr[k] < tr.xr[k-1] {
			tr.monotonic = false
		}
	}

	if !tr.monotonic {
		logger.Logf(logger.Allow, "curve", "compression curve is not monotonic. using linear search")
	}

	return tr, nil
}

// rotate returns the point on the compression curve for parameter i, rotated
// by the configured angle about the origin.
func (tr *Transfer) rotate(i int) (float64, float64) {
	x := float64(i)
	y := tr.scale * math.Sin(math.Pi*(x-tr.x1)/(tr.x2-tr.x1))
	return x*tr.cosa + y*tr.sina, -x*tr.sina + y*tr.cosa
}

// Config returns the configuration used to create the Transfer.
func (tr *Transfer) Config() Config {
	return tr.cfg
}

// Depth implements the Function interface.
func (tr *Transfer) Depth() int {
	return tr.cfg.Depth
}

// Zone returns the zone that x belongs to.
func (tr *Transfer) Zone(x int) Zone {
	if x < tr.cfg.NoiseFloor {
		return ZoneA
	}
	if x < tr.cfg.InputLimiter {
		return ZoneB
	}
	return ZoneC
}

// Eval implements the Function interface.
func (tr *Transfer) Eval(x int) (float64, error) {
	if err := checkDomain(x, tr.cfg.Depth); err != nil {
		return 0, err
	}

	switch tr.Zone(x) {
	case ZoneA:
		return tr.noiseFloor(x), nil
	case ZoneB:
		return tr.compress(x)
	}
	return tr.saturate(x), nil
}

func (tr *Transfer) noiseFloor(x int) float64 {
	if tr.cfg.ZoneA == ShapeIdentity {
		return float64(x)
	}

	nf := float64(tr.cfg.NoiseFloor)
	adjust := nf * math.Exp(-tr.cfg.Bend)
	k := (nf + adjust) / nf
	return nf*k*math.Exp((float64(x)-nf)/nf*tr.cfg.Bend) - adjust
}

// the search starts at the parameter where the unrotated curve would be if
// it had no height
func (tr *Transfer) searchStart(x int) int {
	return int(math.Ceil(math.Hypot(float64(x), float64(x)))) - tr.first
}

func (tr *Transfer) compress(x int) (float64, error) {
	if !tr.monotonic {
		return tr.compressLinear(x)
	}

	start := tr.searchStart(x)
	if start < 0 || start >= len(tr.xr) {
		return 0, curated.Errorf(UnreachableSample, x)
	}

	fx := float64(x)
	xr := tr.xr[start:]
	k := sort.Search(len(xr), func(j int) bool {
		return xr[j] >= fx
	})
	if k == len(xr) {
		return 0, curated.Errorf(UnreachableSample, x)
	}

	return tr.yr[start+k], nil
}

func (tr *Transfer) compressLinear(x int) (float64, error) {
	start := tr.searchStart(x)
	if start < 0 {
		return 0, curated.Errorf(UnreachableSample, x)
	}

	fx := float64(x)
	for k := start; k < len(tr.xr); k++ {
		if tr.xr[k] >= fx {
			return tr.yr[k], nil
		}
	}

	return 0, curated.Errorf(UnreachableSample, x)
}

func (tr *Transfer) saturate(x int) float64 {
	d := float64(x - tr.cfg.InputLimiter)
	return float64(tr.cfg.InputLimiter) * math.Exp(-(d*d)/tr.cfg.Sigma)
}
