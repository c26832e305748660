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
	"os"
	"path/filepath"

	"github.com/jetsetilly/zube/curated"
)

const localResourcePath = ".zube"
const configResourcePath = "zube"

// Sentinal error pattern.
const PathError = "paths: %v"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The sub-directories leading to the
// resource are created if they do not exist. The final element is assumed to
// be a filename and is not created.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(localResourcePath); err == nil && info.IsDir() {
		return localResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return filepath.Join(cfg, configResourcePath), nil
}
