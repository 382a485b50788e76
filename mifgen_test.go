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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fpgafx/mifgen/mif"
	"github.com/fpgafx/mifgen/test"
)

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var b bytes.Buffer
	v := launch(context.Background(), args, &b, false)
	return v, b.String()
}

func TestTransferMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transfer.mif")

	v, out := run(t, "TRANSFER", "-f", fn, "-summary")
	test.DemandEquality(t, v, 0, out)
	test.ExpectSuccess(t, strings.Contains(out, "16384 entries written to"))
	test.ExpectSuccess(t, strings.Contains(out, "compression"))

	tab, err := mif.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Width, 15)
	test.ExpectEquality(t, tab.Depth(), 16384)
	test.ExpectEquality(t, tab.Data[10000], uint32(10000))
}

func TestDefaultMode(t *testing.T) {
	// TRANSFER is the default mode. with no flags nothing is written
	v, out := run(t)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, out, "")

	// mode names are case insensitive
	dir := t.TempDir()
	v, out = run(t, "TRANSFER", "-f", filepath.Join(dir, "a.mif"))
	test.DemandEquality(t, v, 0, out)
	v, out = run(t, "transfer", "-f", filepath.Join(dir, "b.mif"))
	test.DemandEquality(t, v, 0, out)

	a, err := os.ReadFile(filepath.Join(dir, "a.mif"))
	test.DemandSuccess(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.mif"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(a, b))
}

func TestTransferParams(t *testing.T) {
	dir := t.TempDir()

	v, out := run(t, "TRANSFER", "-params", "noisefloor::100; zonea::exponential", "-f", filepath.Join(dir, "a.mif"))
	test.DemandEquality(t, v, 0, out)

	tab, err := mif.ReadFile(filepath.Join(dir, "a.mif"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(strings.Join(tab.Header, "\n"), "Noise floor: 100 (exponential)"))

	// invalid configuration
	v, out = run(t, "TRANSFER", "-params", "noisefloor::20000")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in TRANSFER mode: curve: invalid configuration"))

	// unknown parameter
	v, out = run(t, "TRANSFER", "-params", "knee::10")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(out, "unknown parameters: knee::10"))

	// rejected parameter value
	v, _ = run(t, "TRANSFER", "-params", "sigma::-1")
	test.ExpectEquality(t, v, exitMode)

	// the rotation angle is a parameter like any other
	v, out = run(t, "TRANSFER", "-params", "angle::-0.5", "-f", filepath.Join(dir, "b.mif"))
	test.DemandEquality(t, v, 0, out)
	v, _ = run(t, "TRANSFER", "-params", "angle::Inf")
	test.ExpectEquality(t, v, exitMode)
}

func TestSineMode(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "sine.mif")
	html := filepath.Join(dir, "sine.html")

	v, out := run(t, "SINE", "-f", fn, "-html", html)
	test.DemandEquality(t, v, 0, out)
	test.ExpectSuccess(t, strings.Contains(out, "256 entries written to"))
	test.ExpectSuccess(t, strings.Contains(out, "plot written to"))

	tab, err := mif.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Width, 16)
	test.ExpectEquality(t, tab.Data[64], uint32(0x2710))
	test.ExpectEquality(t, tab.Data[191], uint32(0xd8f0))

	_, err = os.Stat(html)
	test.ExpectSuccess(t, err)
}

func TestUnwritable(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "sine.mif")
	v, out := run(t, "SINE", "-f", fn)
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in SINE mode: mif: "))
}

func TestCommandLineErrors(t *testing.T) {
	v, out := run(t, "-nosuchflag")
	test.ExpectEquality(t, v, exitCommandLine)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error: "))

	v, _ = run(t, "SINE", "-nosuchflag")
	test.ExpectEquality(t, v, exitMode)

	v, _ = run(t, "SINE", "extra")
	test.ExpectEquality(t, v, exitMode)

	v, out = run(t, "SINE", "-profile", "trace")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(out, "unknown profile (trace)"))

	v, out = run(t, "-help")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out, "AUDITION"))
}

func TestAuditionAndAnalyse(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "transfer.mif")
	wav := filepath.Join(dir, "out.wav")

	v, out := run(t, "TRANSFER", "-f", fn)
	test.DemandEquality(t, v, 0, out)

	v, out = run(t, "AUDITION", "-o", wav, "-secs", "0.1", "-drive", "0.5", fn)
	test.DemandEquality(t, v, 0, out)
	test.ExpectSuccess(t, strings.Contains(out, "0.10s of audio written to"))

	// the rendered audio can itself be auditioned
	v, out = run(t, "AUDITION", "-o", filepath.Join(dir, "again.wav"), fn, wav)
	test.DemandEquality(t, v, 0, out)

	v, out = run(t, "ANALYSE", "-freq", "1000", "-drive", "0.5", fn)
	test.DemandEquality(t, v, 0, out)
	test.ExpectSuccess(t, strings.HasPrefix(out, "1000Hz drive 0.50: THD "))
	test.ExpectSuccess(t, strings.Contains(out, " 3:   3000Hz"))

	v, out = run(t, "ANALYSE")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(out, "MIF file required"))

	v, _ = run(t, "AUDITION", filepath.Join(dir, "missing.mif"))
	test.ExpectEquality(t, v, exitMode)

	// non-finite parameters are rejected before any audio is rendered
	v, out = run(t, "AUDITION", "-o", wav, "-drive", "NaN", fn)
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(out, "drive must be finite"))
	v, _ = run(t, "AUDITION", "-o", wav, "-secs", "+Inf", fn)
	test.ExpectEquality(t, v, exitMode)
	v, _ = run(t, "ANALYSE", "-drive", "Inf", fn)
	test.ExpectEquality(t, v, exitMode)

	// very large drive saturates rather than failing
	v, out = run(t, "AUDITION", "-o", wav, "-secs", "0.1", "-drive", "1e300", fn)
	test.DemandEquality(t, v, 0, out)
}

func TestVersionMode(t *testing.T) {
	v, out := run(t, "VERSION")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "mifgen "))
}
