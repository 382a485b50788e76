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

// Package version reports the version of the mifgen binary. The version
// number is set at link time, for example:
//
//	go build -ldflags "-X github.com/fpgafx/mifgen/version.number=v1.0.0"
//
// Without a version number the revision is taken from the VCS information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "mifgen"

// set by the linker
var number string

var (
	version   string
	revision  string
	goVersion string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the binary was built from a VCS
// checkout without a version number and "local" if there is no VCS
// information either. The revision is suffixed with "+dirty" if the checkout
// had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line description of the version suitable for the
// VERSION mode.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s (%s)", ApplicationName, v, goVersion)
	}
	return fmt.Sprintf("%s %s %s (%s)", ApplicationName, v, r, goVersion)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	goVersion = "unknown go version"

	info, ok := debug.ReadBuildInfo()
	if ok {
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
