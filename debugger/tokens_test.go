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

package debugger

import (
	"testing"

	"github.com/kehitt/gopher8/test"
)

func TestTokeniser(t *testing.T) {
	tkn := tokeniseInput("  break  $200 ")
	test.Equate(t, tkn.num(), 2)

	s, ok := tkn.get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "break")

	// the $ shorthand has been normalised
	s, ok = tkn.get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "0x200")

	_, ok = tkn.get()
	test.ExpectedFailure(t, ok)

	tkn.unget()
	s, ok = tkn.get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "0x200")

	tkn.reset()
	s, ok = tkn.peek()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "break")
	test.Equate(t, tkn.remaining(), 2)
	test.Equate(t, tkn.remainder(), "break 0x200")
}

func TestTokeniserEmptyInput(t *testing.T) {
	tkn := tokeniseInput("   ")
	test.Equate(t, tkn.num(), 0)
	test.Equate(t, tkn.remainder(), "")

	_, ok := tkn.get()
	test.ExpectedFailure(t, ok)
}
