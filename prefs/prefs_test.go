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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/fpgafx/mifgen/prefs"
	"github.com/fpgafx/mifgen/test"
)

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(20))
	test.ExpectEquality(t, v.Get().(int), 20)

	test.ExpectSuccess(t, v.Set(" 10000"))
	test.ExpectEquality(t, v.Get().(int), 10000)

	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(int), 10000)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)

	test.ExpectSuccess(t, v.Set("2e6"))
	test.ExpectEquality(t, v.Get().(float64), 2000000.0)
	test.ExpectEquality(t, v.String(), "2e+06")

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.String(), "3")
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set(" identity "))
	test.ExpectEquality(t, v.String(), "identity")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative value")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// rejected by pre-hook. value and post-hook are untouched
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestGroup(t *testing.T) {
	var a prefs.Int
	var b prefs.Float
	test.DemandSuccess(t, a.Set(20))
	test.DemandSuccess(t, b.Set(3.0))

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("noisefloor", &a))
	test.ExpectSuccess(t, g.Add("scale", &b))
	test.ExpectFailure(t, g.Add("scale", &b))

	test.ExpectEquality(t, g.String(), "noisefloor::20; scale::3")

	prefs.PushCommandLineStack("scale::2.5; unused::1")
	test.ExpectSuccess(t, g.LoadCommandLine())
	test.ExpectEquality(t, b.Get().(float64), 2.5)
	test.ExpectEquality(t, a.Get().(int), 20)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	prefs.PushCommandLineStack("noisefloor::many")
	test.ExpectFailure(t, g.LoadCommandLine())
	prefs.PopCommandLineStack()
}
