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


package govern

// Mode indicates the broad condition of the application.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "RUN"
	case ModeMonitor:
		return "MONITOR"
	case ModeSoak:
		return "SOAK"
	case ModeMemviz:
		return "MEMVIZ"
	case ModePerformance:
		return "PERFORMANCE"
	case ModeRegress:
		return "REGRESS"
	}

	return ""
}

// List of defined modes.
const (
	ModeNone Mode = iota
	ModeRun
	ModeMonitor
	ModeSoak
	ModeMemviz
	ModePerformance
	ModeRegress
)

// ParseMode returns the Mode named by s. The second return value is false if
// the string does not name a mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{ModeRun, ModeMonitor, ModeSoak, ModeMemviz, ModePerformance, ModeRegress} {
		if m.String() == s {
			return m, true
		}
	}
	return ModeNone, false
}
