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

// Package regression facilitates the regression testing of emulation code. By
// adding test results to a database, the tests can be rerun automatically and
// checked for consistency.
//
// The digest test runs a ROM for a set number of frames with a fixed random
// number seed and compares the video and/or audio hash against the hash taken
// when the test was added. The ROM file itself is also pinned by hash, so a
// test cannot silently start exercising a different ROM.
//
// Keys of tests that failed on the previous run are remembered. Passing the
// keyword "fails" to RegressRunTests() in the filter list reruns just those.
package regression
