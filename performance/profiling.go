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


package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. Valid names are CPU, MEM, ALL and NONE.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, f := range strings.Split(strings.ToUpper(s), ",") {
		switch strings.TrimSpace(f) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileCPU | ProfileMem
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", f)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function, generating the requested profiles.
// Profile files are named with the supplied prefix.
func RunProfiler(profile Profile, filenamePrefix string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenamePrefix))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenamePrefix))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	return nil
}
