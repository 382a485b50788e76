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

//go:build !statsview

package statsview_test

import (
	"bytes"
	"testing"

	"github.com/fpgafx/mifgen/statsview"
	"github.com/fpgafx/mifgen/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	var b bytes.Buffer
	stop := statsview.Launch(&b)
	stop()
	test.ExpectEquality(t, b.Len(), 0)
}
