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


// Package regression facilitates the regression testing of the bridge. A
// regression entry is a script run against a bridge with a particular set
// of preferences. When the entry is added to the database the script is run
// and a digest of the bridge activity is recorded. Running the regression
// tests replays every script and compares the new digest with the recorded
// value. If the digests differ then the behaviour of the bridge has changed.
//
// A copy of the script is kept alongside the database so that later changes
// to the original file do not cause false failures.
package regression
