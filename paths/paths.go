// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base directory for all resources. if a directory of this name is
// present in the working directory it is preferred over the per-user config
// directory, which keeps everything in one place for "portable"
// installations.
const baseResourceDir = ".gopher8"

// ResourcePath returns the path to the named resource, prepended with the
// resource base path. Empty path segments are allowed and are dropped.
//
// The function creates all directories necessary to reach the end of the
// sub-path. It does not otherwise touch or create the named file.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	pth := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return "", err
	}

	return pth, nil
}

// getBasePath returns baseResourceDir if it can be found in the current
// directory. if it cannot, the per-user config directory is used (see
// os.UserConfigDir() documentation for details of what that means on each
// operating system).
func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, "gopher8"), nil
}
