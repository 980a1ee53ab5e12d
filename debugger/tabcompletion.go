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
	"sort"
	"strings"
	"time"
)

// the maximum time between completion requests that are considered to be
// part of the same cycling session.
const cycleDuration = 500 * time.Millisecond

// tabCompletion implements the terminal.TabCompletion interface, completing
// the final word of the input against the debugger's command names. repeated
// requests in quick succession cycle through the available matches.
type tabCompletion struct {
	options []string

	// matches for the most recent guess and the index of the match last
	// returned
	matches  []string
	matchIdx int

	// everything before the word being completed. prepended to each match
	// when building the result
	prefix string

	// the result of the previous Complete(). a new request for this exact
	// string within cycleDuration means the user is cycling
	lastCompletion string
	lastTime       time.Time
}

func newTabCompletion() *tabCompletion {
	tc := &tabCompletion{
		options: make([]string, len(commandList)),
	}
	copy(tc.options, commandList)
	sort.Strings(tc.options)

	return tc
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if input == tc.lastCompletion && time.Since(tc.lastTime) < cycleDuration {
		if len(tc.matches) > 0 {
			tc.matchIdx = (tc.matchIdx + 1) % len(tc.matches)
			tc.lastCompletion = tc.prefix + tc.matches[tc.matchIdx] + " "
			tc.lastTime = time.Now()
			return tc.lastCompletion
		}
		return input
	}

	// too slow or different input. start a new guess from the final word
	tc.Reset()

	p := strings.LastIndex(input, " ")
	tc.prefix = input[:p+1]

	partial := strings.ToUpper(input[p+1:])
	if partial == "" {
		return input
	}

	for _, opt := range tc.options {
		if strings.HasPrefix(opt, partial) {
			tc.matches = append(tc.matches, opt)
		}
	}
	if len(tc.matches) == 0 {
		return input
	}

	// the trailing space means the user can continue typing the next part of
	// the command immediately
	tc.matchIdx = 0
	tc.lastCompletion = tc.prefix + tc.matches[0] + " "
	tc.lastTime = time.Now()

	return tc.lastCompletion
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.matchIdx = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}
