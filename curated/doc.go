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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, but the pattern string is also the error's identity:
//
//	e := curated.Errorf("display: pixel out of range (%d, %d)", x, y)
//
//	if curated.Is(e, "display: pixel out of range (%d, %d)") {
//		fmt.Println("true")
//	}
//
// Packages that return curated errors should export the patterns they use so
// that callers can test for them. By convention the exported pattern is
// declared close to the code that returns it.
//
// The Has() function is like Is() but checks the entire error chain, which is
// useful when an error has been wrapped by an intermediate layer:
//
//	e := curated.Errorf("display: pixel out of range (%d, %d)", x, y)
//	f := curated.Errorf("chip8: %v", e)
//
//	curated.Is(f, "display: pixel out of range (%d, %d)")   // false
//	curated.Has(f, "display: pixel out of range (%d, %d)")  // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated and
// uncurated errors as the difference between 'expected' and 'unexpected'
// errors; how to handle each is the caller's decision.
//
// The Error() function for curated errors normalises the message chain,
// removing duplicate adjacent parts. A chain built up through several layers
// of wrapping reads cleanly as a result.
package curated
