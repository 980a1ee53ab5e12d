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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kehitt/gopher8/paths"
	"github.com/kehitt/gopher8/test"
)

func TestPaths(t *testing.T) {
	// a .gopher8 directory in the working directory takes precedence over the
	// per-user config directory, which makes the result predictable for the
	// test
	err := os.Mkdir(".gopher8", 0700)
	test.ExpectedSuccess(t, err)
	defer os.RemoveAll(".gopher8")

	pth, err := paths.ResourcePath("foo", "baz")
	test.ExpectedSuccess(t, err)
	test.Equate(t, pth, filepath.Join(".gopher8", "foo", "baz"))

	// directories up to the named file should now exist
	_, err = os.Stat(filepath.Join(".gopher8", "foo"))
	test.ExpectedSuccess(t, err)

	// empty path segments are dropped
	pth, err = paths.ResourcePath("", "baz")
	test.ExpectedSuccess(t, err)
	test.Equate(t, pth, filepath.Join(".gopher8", "baz"))

	pth, err = paths.ResourcePath("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, pth, ".gopher8")
}
