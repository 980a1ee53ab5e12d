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
	"strings"
)

// tokens represents tokenised input. the tokens can be walked through with
// get(), unget() and peek() for eas(ier) parsing.
type tokens struct {
	tokens []string
	curr   int
}

// tokeniseInput creates a new instance of the tokens type. numbers can be
// written with a $ prefix in place of the more verbose 0x.
func tokeniseInput(input string) *tokens {
	tkn := &tokens{}

	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "$", "0x")
	tkn.tokens = strings.Fields(input)

	return tkn
}

func (tkn *tokens) String() string {
	return strings.Join(tkn.tokens, " ")
}

// reset begins the token walk from the beginning.
func (tkn *tokens) reset() {
	tkn.curr = 0
}

// remainder returns the tokens that have not yet been consumed, joined back
// into a single string.
func (tkn *tokens) remainder() string {
	return strings.Join(tkn.tokens[tkn.curr:], " ")
}

// remaining returns the count of tokens that have not yet been consumed.
func (tkn *tokens) remaining() int {
	return len(tkn.tokens) - tkn.curr
}

// num returns the total number of tokens.
func (tkn *tokens) num() int {
	return len(tkn.tokens)
}

// get returns the next token and advances. the second return value is false
// if there are no tokens left.
func (tkn *tokens) get() (string, bool) {
	if tkn.curr >= len(tkn.tokens) {
		return "", false
	}

	t := tkn.tokens[tkn.curr]
	tkn.curr++

	return t, true
}

// unget undoes the most recent call to get().
func (tkn *tokens) unget() {
	if tkn.curr > 0 {
		tkn.curr--
	}
}

// peek returns the next token without advancing.
func (tkn *tokens) peek() (string, bool) {
	if tkn.curr >= len(tkn.tokens) {
		return "", false
	}

	return tkn.tokens[tkn.curr], true
}
