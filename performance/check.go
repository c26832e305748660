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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/govern"
	"github.com/jetsetilly/zube/hardware"
	"github.com/jetsetilly/zube/hardware/clocks"
	"github.com/jetsetilly/zube/hardware/fabric"
	"github.com/jetsetilly/zube/hardware/hostbus"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// load drives both buses of the bridge on every clock. The host writes DATA
// on every other slow clock and the fabric continuously reads its flag word.
type load struct {
	b   *hardware.Bridge
	clk int
}

func (l *load) drive() {
	l.clk++
	if l.clk >= clocks.FastPerSlow {
		l.clk = 0
		pins := &l.b.Host.Pins
		pins.Address = l.b.Config.HostBase
		pins.DataIn++
		pins.WriteStrobeB = !pins.WriteStrobeB
	}
}

// Check the performance of the bridge.
//
// The bridge will run for the specified duration, after the specified lead
// time, and will create profiles as defined by the Profile argument.
func Check(output io.Writer, env *environment.Environment, profile Profile, duration string, leadtime string) error {
	b := hardware.NewBridge(env)
	b.Host.Pins = hostbus.Idle()
	b.Fabric.Pins = fabric.Pins{
		Cyc:  true,
		Stb:  true,
		Addr: b.Config.FabricBase + fabric.OffsetData + uint32(b.Config.Registers)*4,
	}
	ld := &load{b: b}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	lead, err := time.ParseDuration(leadtime)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startClock := b.Cycles()

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake
		// clocks. checking the timerChan is relatively expensive
		performanceBrake := 0

		return b.Run(func() (govern.State, error) {
			ld.drive()

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startClock = b.Cycles()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numClocks := b.Cycles() - startClock
	mhz, accuracy := CalcRate(numClocks, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d clocks in %.2f seconds) %.1f%%\n", mhz, numClocks, dur.Seconds(), accuracy)

	return nil
}
