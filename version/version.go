// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the version of the application. The version
// number is set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/zube/version.number=v0.1.0"
//
// Other builds report "unreleased" or "local" along with the vcs revision
// recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Zube"

// set by the linker for release builds
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line description of the application version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

// fromBuildInfo decides on the version and revision strings from the number
// set by the linker and the vcs settings in the build information.
func fromBuildInfo(number string, readBuildInfo func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
