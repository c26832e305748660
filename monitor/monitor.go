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


package monitor

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/govern"
	"github.com/jetsetilly/zube/logger"
	"github.com/jetsetilly/zube/rewind"
	"github.com/jetsetilly/zube/script"
)

const help = `space/enter: step   b: back   c: continue   r: reset   s: state   l: log   q: quit`

// number of log entries shown by the l key
const logTail = 10

// Monitor steps a script under user control.
type Monitor struct {
	scr   *script.Script
	bench *bench.Bench

	// history of the session. can be nil
	rw *rewind.Rewind

	input  io.Reader
	output io.Writer

	state govern.State
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The script must have been created with the same bench. If the rewind
// argument is nil then the monitor cannot step backwards.
func NewMonitor(scr *script.Script, bn *bench.Bench, rw *rewind.Rewind, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		scr:    scr,
		bench:  bn,
		rw:     rw,
		input:  input,
		output: output,
		state:  govern.Initialising,
	}
}

// State returns the current state of the monitor.
func (m *Monitor) State() govern.State {
	return m.state
}

func (m *Monitor) setState(state govern.State) {
	if !govern.StateIntegrity(m.state, state) {
		logger.Logf(logger.Allow, "monitor", "illegal state change (%s to %s)", m.state, state)
		return
	}
	m.state = state
}

func (m *Monitor) showState() {
	fmt.Fprintf(m.output, "%s: next line %d\n", m.scr.Name(), m.scr.Line())
	fmt.Fprintln(m.output, m.bench.Bridge)
}

// step executes one command. Script errors are reported but do not stop the
// monitor.
func (m *Monitor) step() {
	if m.scr.Done() {
		fmt.Fprintln(m.output, "end of script")
		return
	}
	m.record()
	if err := m.scr.Step(); err != nil {
		fmt.Fprintf(m.output, "* %v\n", err)
	}
	m.showState()
}

func (m *Monitor) record() {
	if m.rw != nil {
		m.rw.Record()
	}
}

func (m *Monitor) back() {
	if m.rw == nil {
		fmt.Fprintln(m.output, "rewind not available")
		return
	}
	if !m.rw.Back() {
		fmt.Fprintln(m.output, "start of history")
		return
	}
	m.showState()
}

// Run the monitor until the user quits or the input ends.
func (m *Monitor) Run() error {
	m.setState(govern.Paused)
	fmt.Fprintln(m.output, help)
	m.showState()

	b := make([]byte, 1)
	for m.state != govern.Ending {
		_, err := m.input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.setState(govern.Ending)
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		switch b[0] {
		case ' ', '\n', '\r':
			m.setState(govern.Stepping)
			m.step()
			m.setState(govern.Paused)

		case 'c':
			m.setState(govern.Running)
			for !m.scr.Done() {
				m.record()
				if err := m.scr.Step(); err != nil {
					fmt.Fprintf(m.output, "* %v\n", err)
					break // for loop
				}
			}
			m.showState()
			m.setState(govern.Paused)

		case 'r':
			if err := m.bench.Reset(); err != nil {
				fmt.Fprintf(m.output, "* %v\n", err)
			}
			m.scr.Rewind()
			if m.rw != nil {
				m.rw.Reset()
			}
			m.showState()

		case 'b':
			m.back()

		case 's':
			m.showState()

		case 'l':
			logger.Tail(m.output, logTail)

		case 'q':
			m.setState(govern.Ending)

		case '?':
			fmt.Fprintln(m.output, help)
		}
	}

	return nil
}
