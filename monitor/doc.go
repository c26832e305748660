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


// Package monitor steps through a script one command per key press, showing
// the state of the bridge after every command.
//
// Keys:
//
//	space, enter	execute the next command
//	b		go back to before the previous command
//	c		continue to the end of the script
//	r		reset the bridge and rewind the script
//	s		show the state of the bridge
//	l		show the tail of the log
//	q		quit
//	?		help
//
// Going back requires a rewind.Rewind recording the session. The history is
// cleared when the bridge is reset.
//
// Input is normally from a Terminal, which puts the controlling terminal into
// cbreak mode so that key presses are seen without waiting for a newline.
// Any io.Reader will do.
package monitor
