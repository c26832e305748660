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


package regression

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/zube/curated"
	"github.com/jetsetilly/zube/paths"
)

// Location of the regression database and the copies of the scripts used by
// the entries in the database.
type Location struct {
	DBFile     string
	ScriptsDir string
}

const regressionPath = "regression"
const regressionDBFile = "db"
const regressionScripts = "scripts"

// DefaultLocation returns the location of the regression database in the
// resource path.
func DefaultLocation() (Location, error) {
	db, err := paths.ResourcePath(regressionPath, regressionDBFile)
	if err != nil {
		return Location{}, err
	}
	return NewLocation(filepath.Dir(db))
}

// NewLocation returns the location of a regression database in the specified
// directory. The scripts directory is created if it does not exist.
func NewLocation(dir string) (Location, error) {
	loc := Location{
		DBFile:     filepath.Join(dir, regressionDBFile),
		ScriptsDir: filepath.Join(dir, regressionScripts),
	}
	if err := os.MkdirAll(loc.ScriptsDir, 0700); err != nil {
		return Location{}, curated.Errorf(RegressionError, err)
	}
	return loc, nil
}

// uniqueFilename creates a unique filename in the scripts directory for a
// copy of the named script.
func (loc Location) uniqueFilename(name string) string {
	base := paths.UniqueFilename("script", name)
	pth := filepath.Join(loc.ScriptsDir, base)
	for i := 1; ; i++ {
		if _, err := os.Stat(pth); os.IsNotExist(err) {
			return pth
		}
		pth = filepath.Join(loc.ScriptsDir, fmt.Sprintf("%s_%d", base, i))
	}
}
