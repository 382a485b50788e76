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

package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/curve"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderError is the pattern for errors returned when a plot cannot be
// written.
const RenderError = "plot: %v"

// Series is a single line in the plot. There is one value per sample index.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// Band is a shaded square with one corner at the origin and the other at
// (Level, Level).
type Band struct {
	Name  string
	Level int
	Color string
}

// Plot describes a chart. Bands are drawn in the order they are listed so
// larger bands should come first.
type Plot struct {
	Title    string
	Subtitle string

	// range of the Y axis
	Min float64
	Max float64

	Series []Series
	Bands  []Band
}

// Sine returns the plot of a sinusoid table.
func Sine(values []float64, amplitude float64) *Plot {
	return &Plot{
		Title:    "sine",
		Subtitle: fmt.Sprintf("%d samples", len(values)),
		Min:      -amplitude,
		Max:      amplitude,
		Series: []Series{
			{Name: "100% wet", Color: "red", Values: values},
		},
	}
}

// Transfer returns the plot of a transfer function table. The mix series is
// optional.
func Transfer(cfg curve.Config, wet []float64, mix []float64) *Plot {
	dry := make([]float64, len(wet))
	for i := range dry {
		dry[i] = float64(i)
	}

	p := &Plot{
		Title:    "transfer function",
		Subtitle: fmt.Sprintf("noise floor %d, input limiter %d", cfg.NoiseFloor, cfg.InputLimiter),
		Min:      0,
		Max:      float64(cfg.Depth),
		Series: []Series{
			{Name: "100% dry", Color: "blue", Values: dry},
			{Name: "100% wet", Color: "red", Values: wet},
		},
		Bands: []Band{
			{Name: "zone above limiter", Level: cfg.Depth, Color: "rgba(128,128,128,0.1)"},
			{Name: "top peaks", Level: cfg.InputLimiter, Color: "rgba(255,0,0,0.1)"},
			{Name: "hard strum", Level: cfg.Peak, Color: "rgba(255,165,0,0.1)"},
			{Name: "soft strum", Level: cfg.HardStrum, Color: "rgba(0,100,0,0.1)"},
			{Name: "quietest notes", Level: cfg.SoftStrum, Color: "rgba(144,238,144,0.5)"},
			{Name: "zone under noise floor", Level: cfg.NoiseFloor, Color: "rgba(211,211,211,1.0)"},
		},
	}

	if mix != nil {
		p.Series = append(p.Series, Series{Name: "mix", Color: "orange", Values: mix})
	}

	return p
}

func (p *Plot) chart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("mifgen: %s", p.Title),
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    p.Title,
			Subtitle: p.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "dry",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "wet",
			Min:  p.Min,
			Max:  p.Max,
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	n := 0
	for _, s := range p.Series {
		n = max(n, len(s.Values))
	}
	x := make([]int, n)
	for i := range x {
		x[i] = i
	}
	line.SetXAxis(x)

	for i, s := range p.Series {
		items := make([]opts.LineData, len(s.Values))
		for j, v := range s.Values {
			items[j] = opts.LineData{Value: v}
		}

		var so []charts.SeriesOpts
		so = append(so, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))

		// bands are attached to the first series only
		if i == 0 {
			for _, b := range p.Bands {
				so = append(so, charts.WithMarkAreaNameCoordItemOpts(opts.MarkAreaNameCoordItem{
					Name:        b.Name,
					Coordinate0: []interface{}{0, 0},
					Coordinate1: []interface{}{b.Level, b.Level},
					ItemStyle:   &opts.ItemStyle{Color: b.Color},
				}))
			}
		}

		line.AddSeries(s.Name, items, so...)
	}

	return line
}

// Render the plot as an HTML page.
func (p *Plot) Render(w io.Writer) error {
	if err := p.chart().Render(w); err != nil {
		return curated.Errorf(RenderError, err)
	}
	return nil
}

// WriteFile renders the plot to the named file.
func (p *Plot) WriteFile(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(RenderError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(RenderError, err)
		}
	}()
	return p.Render(f)
}
