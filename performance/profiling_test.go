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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/performance"
	"github.com/fpgafx/mifgen/test"
)

func TestParseProfile(t *testing.T) {
	for s, exp := range map[string]performance.Profile{
		"":     performance.ProfileNone,
		"none": performance.ProfileNone,
		"CPU":  performance.ProfileCPU,
		"mem":  performance.ProfileMem,
		"Both": performance.ProfileCPU | performance.ProfileMem,
	} {
		p, err := performance.ParseProfile(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, p, exp, s)
	}

	_, err := performance.ParseProfile("trace")
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	for _, fn := range []string{prefix + "_cpu.profile", prefix + "_mem.profile"} {
		_, err := os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}
}

func TestRunProfilerError(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")
	e := errors.New("test error")

	err := performance.RunProfiler(performance.ProfileMem, prefix, func() error {
		return e
	})
	test.ExpectSuccess(t, errors.Is(err, e))

	// no memory profile is written if the function fails
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectFailure(t, err)
}

func TestNoProfile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")
	test.ExpectSuccess(t, performance.RunProfiler(performance.ProfileNone, prefix, func() error { return nil }))

	m, err := filepath.Glob(prefix + "*")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m), 0)
}
