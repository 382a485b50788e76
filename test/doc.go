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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf(). Demand is
// useful when later parts of a test depend on the value being correct, for
// example the length of a slice that is about to be iterated over.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. A bool is successful if it is true and an
// error is successful if it is nil. The nil type is considered a success.
//
// The CompareWriter type implements the io.Writer interface and can be used to
// capture output for comparison.
package test
