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
	"github.com/jetsetilly/zube/curated"
	"github.com/pkg/term"
)

// Terminal is the controlling terminal in cbreak mode.
type Terminal struct {
	t *term.Term
}

// OpenTerminal opens the controlling terminal and puts it into cbreak mode.
// The terminal must be closed with Close() to restore the previous mode.
func OpenTerminal() (*Terminal, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return nil, curated.Errorf("monitor: terminal: %v", err)
	}

	if err := t.SetCbreak(); err != nil {
		_ = t.Close()
		return nil, curated.Errorf("monitor: terminal: %v", err)
	}

	return &Terminal{t: t}, nil
}

// Read implements the io.Reader interface.
func (tm *Terminal) Read(p []byte) (int, error) {
	return tm.t.Read(p)
}

// Close restores the terminal to the mode it was in before OpenTerminal().
func (tm *Terminal) Close() error {
	if err := tm.t.Restore(); err != nil {
		_ = tm.t.Close()
		return curated.Errorf("monitor: terminal: %v", err)
	}
	if err := tm.t.Close(); err != nil {
		return curated.Errorf("monitor: terminal: %v", err)
	}
	return nil
}
