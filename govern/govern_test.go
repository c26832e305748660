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


package govern_test

import (
	"testing"

	"github.com/jetsetilly/zube/govern"
	"github.com/jetsetilly/zube/test"
)

func TestParseMode(t *testing.T) {
	m, ok := govern.ParseMode("SOAK")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, govern.ModeSoak)

	_, ok = govern.ParseMode("soak")
	test.ExpectEquality(t, ok, false)

	for _, m := range []govern.Mode{govern.ModeRun, govern.ModeMonitor, govern.ModeSoak,
		govern.ModeMemviz, govern.ModePerformance, govern.ModeRegress} {
		p, ok := govern.ParseMode(m.String())
		test.ExpectEquality(t, ok, true)
		test.ExpectEquality(t, p, m)
	}
}

func TestStateIntegrity(t *testing.T) {
	test.ExpectEquality(t, govern.StateIntegrity(govern.Initialising, govern.Running), true)
	test.ExpectEquality(t, govern.StateIntegrity(govern.Running, govern.Paused), true)
	test.ExpectEquality(t, govern.StateIntegrity(govern.Running, govern.Initialising), false)
	test.ExpectEquality(t, govern.StateIntegrity(govern.Ending, govern.Running), false)
	test.ExpectEquality(t, govern.StateIntegrity(govern.Ending, govern.Ending), true)
}
