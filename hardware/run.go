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


package hardware

import (
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/govern"
)

// While the continueCheck() function runs on every clock it can still be
// expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the bridge running as quickly as possible. The bridge runs until
// continueCheck returns the Ending state or an error.
func (b *Bridge) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running, govern.Stepping:
			b.Step()
		case govern.Paused:
		default:
			return curated.Errorf("bridge: unsupported state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the bridge running for the specified number of fast
// clocks.
func (b *Bridge) RunForCycles(numCycles int, continueCheck func(cycle int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(cycle int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for i := 0; i < numCycles && state != govern.Ending; i++ {
		b.Step()

		var err error
		state, err = continueCheck(i)
		if err != nil {
			return err
		}
	}

	return nil
}
