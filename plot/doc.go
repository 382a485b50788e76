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

// Package plot draws the diagnostic chart of a generated table. The chart is
// an HTML page built with go-echarts and can be written to a file or served
// on a local address.
//
// The transfer function chart shows the dry signal (the identity), the wet
// signal (the table) and the dry/wet mix. The informative regions of the
// input range are shaded as nested squares, from the zone above the input
// limiter down to the zone below the noise floor.
package plot
