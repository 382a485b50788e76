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

package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	region lipgloss.Style
}

// ANSI Color reference
// 2	Green
// 3	Yellow
// 4	Blue
// 6	Cyan
// 7	White

func newStyles(styled bool) styles {
	if !styled {
		return styles{
			title:  lipgloss.NewStyle(),
			label:  lipgloss.NewStyle(),
			value:  lipgloss.NewStyle(),
			region: lipgloss.NewStyle(),
		}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		label:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		value:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		region: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
	}
}
