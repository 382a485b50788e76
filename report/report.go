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

// Package report summarises a generated table for the terminal. Output is
// styled with lipgloss when the caller asks for it, normally only when the
// output is a terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/fpgafx/mifgen/curve"
	"github.com/fpgafx/mifgen/digest"
	"github.com/fpgafx/mifgen/mif"
)

// Region of the table to summarise. From is inclusive and To is exclusive.
type Region struct {
	Name string
	From int
	To   int
}

// TransferRegions returns the three zones of a transfer function.
func TransferRegions(cfg curve.Config) []Region {
	return []Region{
		{Name: curve.ZoneA.String(), From: 0, To: cfg.NoiseFloor},
		{Name: curve.ZoneB.String(), From: cfg.NoiseFloor, To: cfg.InputLimiter},
		{Name: curve.ZoneC.String(), From: cfg.InputLimiter, To: cfg.Depth + 1},
	}
}

// Row of the summary for a single region.
type Row struct {
	Region
	Min int64
	Max int64
}

// Summary of a table.
type Summary struct {
	Title string
	Width int
	Depth int
	Peak  int64
	Rows  []Row

	// digest of the table's codes
	Digest string
}

// Summarise the table. Regions that are empty or outside of the table are
// omitted.
func Summarise(title string, t *mif.Table, regions []Region) Summary {
	s := Summary{
		Title: title,
		Width: t.Width,
		Depth: t.Depth(),
		Peak:  t.Peak(),

		Digest: digest.Sum(t),
	}

	for _, r := range regions {
		from := max(0, r.From)
		to := min(t.Depth(), r.To)
		if from >= to {
			continue
		}

		row := Row{
			Region: Region{Name: r.Name, From: from, To: to},
			Min:    t.Signed(from),
			Max:    t.Signed(from),
		}
		for a := from + 1; a < to; a++ {
			v := t.Signed(a)
			row.Min = min(row.Min, v)
			row.Max = max(row.Max, v)
		}
		s.Rows = append(s.Rows, row)
	}

	return s
}

// Render the summary. The styled argument should be false if the output is
// not a terminal.
func (s Summary) Render(styled bool) string {
	st := newStyles(styled)

	var b strings.Builder

	b.WriteString(st.title.Render(fmt.Sprintf(" %s ", s.Title)))
	b.WriteString("\n")

	field := func(label string, value string) {
		b.WriteString(st.label.Render(fmt.Sprintf("%-8s", label)))
		b.WriteString(st.value.Render(value))
		b.WriteString("\n")
	}
	field("width", fmt.Sprintf("%d bits", s.Width))
	field("depth", fmt.Sprintf("%d", s.Depth))
	field("peak", fmt.Sprintf("%d (%#04x)", s.Peak, s.Peak))
	field("digest", s.Digest)

	for _, r := range s.Rows {
		b.WriteString(st.region.Render(fmt.Sprintf("%-12s", r.Name)))
		b.WriteString(fmt.Sprintf(" %04x-%04x ", r.From, r.To-1))
		b.WriteString(st.value.Render(fmt.Sprintf("%6d .. %-6d", r.Min, r.Max)))
		b.WriteString("\n")
	}

	return b.String()
}
