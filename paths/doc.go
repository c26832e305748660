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

// Package paths contains functions to prepare paths for resources that are
// stored on disk, such as the preferences file.
//
// If a directory named ".zube" exists in the current working directory then
// that directory is used as the base for all resources. This is useful during
// development. Otherwise the base is a "zube" directory in the user's
// configuration directory (os.UserConfigDir).
package paths
