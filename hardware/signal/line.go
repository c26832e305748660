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

package signal

// the number of samples kept in the activity history
const activityLength = 64

// Line is a sampled single bit signal.
type Line struct {
	Label string

	// most recent samples. new samples are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

// NewLine is the preferred method of initialisation for the Line type.
func NewLine(label string) Line {
	return Line{
		Label:    label,
		Activity: make([]bool, activityLength),
	}
}

// Snapshot creates a copy of the Line in its current state.
func (ln *Line) Snapshot() *Line {
	cp := *ln
	cp.Activity = make([]bool, len(ln.Activity))
	copy(cp.Activity, ln.Activity)
	return &cp
}

// Reset forces the line low for both the current and previous sample. A line
// that is high immediately after reset will therefore register a rising edge
// on the first sample.
func (ln *Line) Reset() {
	ln.from = false
	ln.to = false
	for i := range ln.Activity {
		ln.Activity[i] = false
	}
}

// Tick samples the line. Should be called once per clock.
func (ln *Line) Tick(v bool) {
	ln.from = ln.to
	ln.to = v
	if len(ln.Activity) > 0 {
		ln.Activity = append(ln.Activity[1:], v)
	}
}

// Changed returns true if the most recent sample differs from the previous one.
func (ln *Line) Changed() bool {
	return ln.from != ln.to
}

// Rising returns true if the line has changed from low to high.
func (ln *Line) Rising() bool {
	return !ln.from && ln.to
}

// Falling returns true if the line has changed from high to low.
func (ln *Line) Falling() bool {
	return ln.from && !ln.to
}

// Hi returns true if the most recent sample is high.
func (ln *Line) Hi() bool {
	return ln.to
}

// Lo returns true if the most recent sample is low.
func (ln *Line) Lo() bool {
	return !ln.to
}

// String returns the activity history as a simple waveform.
func (ln *Line) String() string {
	b := make([]byte, len(ln.Activity))
	for i, v := range ln.Activity {
		if v {
			b[i] = '-'
		} else {
			b[i] = '_'
		}
	}
	return string(b)
}
