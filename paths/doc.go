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

// Package paths contains functions to prepare paths to Gopher8 resources,
// such as the preferences file and the regression database.
//
// The ResourcePath() function prepends the supplied resource name with the
// appropriate config directory. For example, the following returns the path
// to the regression database:
//
//	db, err := paths.ResourcePath("regressionDB")
//
// The policy of ResourcePath() is simple: if the base resource directory,
// currently defined to be ".gopher8", is present in the program's current
// directory then that is the base path that will be used. If it is not
// present then the user's config directory is used, as returned by
// os.UserConfigDir() in the Go standard library.
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/gopher8/regressionDB
package paths
