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

// State indicates the state of the run loop.
type State int

// List of possible states.
//
// Initialising is the default state and should not be re-entered once the
// bridge has begun running.
const (
	Initialising State = iota
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// StateIntegrity checks whether a transition from one state to another makes
// sense.
//
// Rules:
//
//  1. No state can transition to Initialising
//
//  2. Ending is final
func StateIntegrity(from State, to State) bool {
	if to == Initialising && from != Initialising {
		return false
	}
	if from == Ending && to != Ending {
		return false
	}
	return true
}
