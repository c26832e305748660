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

// Package logger is the central log repository for the bridge model. Log
// entries are not written to any output by default. Output is requested
// explicitly with Write() or Tail(), or continuously with SetEcho().
//
// Every call to Log() or Logf() is gated by a Permission. Components of the
// bridge pass their environment.Environment as the permission, which means
// that only the main instance of the bridge writes to the log. Instances
// created for soak testing or for shadow comparison stay quiet.
//
// Consecutive log entries with the same tag and detail are folded into a
// single entry with a repeat count. This is important for the bridge because
// protocol misuse (an out-of-window address for example) will often be seen
// on many consecutive clocks.
package logger
