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

// Package performance profiles the generation of a table. CPU and heap
// profiles are written in the format expected by "go tool pprof".
package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
)

// ProfileError is the pattern for errors returned when profiling fails.
const ProfileError = "performance: %v"

// Profile indicates which profiles should be created.
type Profile int

// List of valid Profile values. Profiles can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfile parses the profile names "none", "cpu", "mem" and "both".
// Names are case insensitive.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "both":
		return ProfileCPU | ProfileMem, nil
	}
	return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile (%s)", s))
}

// RunProfiler runs the function with the requested profiles. Profiles are
// written to files named with the prefix, for example "transfer_cpu.profile".
func RunProfiler(profile Profile, prefix string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", prefix))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	err := run()
	logger.Logf(logger.Allow, "performance", "%s: completed in %s", prefix, time.Since(start))
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", prefix))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
