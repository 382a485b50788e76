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

	"github.com/fpgafx/mifgen/prefs"
)

// Preferences are the tunable values of a Transfer configuration. The values
// can be set from the command line with a prefs string, for example:
//
//	noisefloor::20; limiter::10000; sigma::2e6; scale::3; zonea::identity
//
// The angle of the Zone B rotation is in radians.
type Preferences struct {
	NoiseFloor   prefs.Int
	InputLimiter prefs.Int
	Sigma        prefs.Float
	ScaleDivisor prefs.Float
	Angle        prefs.Float
	ZoneA        prefs.String
	Bend         prefs.Float

	group *prefs.Group
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are initialised with the defaults of
// DefaultConfig().
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	positive := func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("value must be positive")
		}
		return nil
	}
	p.Sigma.SetHookPre(positive)
	p.ScaleDivisor.SetHookPre(positive)
	p.Angle.SetHookPre(func(v prefs.Value) error {
		if math.IsNaN(v.(float64)) || math.IsInf(v.(float64), 0) {
			return fmt.Errorf("angle must be finite")
		}
		return nil
	})

	p.ZoneA.SetHookPre(func(v prefs.Value) error {
		if _, ok := ParseZoneAShape(v.(string)); !ok {
			return fmt.Errorf("unknown zone A shape (%s)", v)
		}
		return nil
	})

	cfg := DefaultConfig()
	for _, v := range []struct {
		key string
		p   prefs.Pref
		def prefs.Value
	}{
		{key: "noisefloor", p: &p.NoiseFloor, def: cfg.NoiseFloor},
		{key: "limiter", p: &p.InputLimiter, def: cfg.InputLimiter},
		{key: "sigma", p: &p.Sigma, def: cfg.Sigma},
		{key: "scale", p: &p.ScaleDivisor, def: cfg.ScaleDivisor},
		{key: "angle", p: &p.Angle, def: cfg.Angle},
		{key: "zonea", p: &p.ZoneA, def: cfg.ZoneA.String()},
		{key: "bend", p: &p.Bend, def: cfg.Bend},
	} {
		if err := v.p.Set(v.def); err != nil {
			return nil, err
		}
		if err := p.group.Add(v.key, v.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// LoadCommandLine sets preferences from the most recent command line group.
func (p *Preferences) LoadCommandLine() error {
	return p.group.LoadCommandLine()
}

// Config returns a Transfer configuration using the current preference
// values. Values not covered by the preferences are taken from
// DefaultConfig(). The configuration is not validated.
func (p *Preferences) Config() Config {
	cfg := DefaultConfig()
	cfg.NoiseFloor = p.NoiseFloor.Get().(int)
	cfg.InputLimiter = p.InputLimiter.Get().(int)
	cfg.Sigma = p.Sigma.Get().(float64)
	cfg.ScaleDivisor = p.ScaleDivisor.Get().(float64)
	cfg.Angle = p.Angle.Get().(float64)
	cfg.ZoneA, _ = ParseZoneAShape(p.ZoneA.String())
	cfg.Bend = p.Bend.Get().(float64)
	return cfg
}

func (p *Preferences) String() string {
	return p.group.String()
}
