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


package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Format of the returned string:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// Where name is the base of the supplied filename without the extension. If
// there is no name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
}
