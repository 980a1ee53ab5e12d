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
	"fmt"
	"strings"

	"github.com/kehitt/gopher8/debugger/terminal"
)

// all print operations from the debugger should be made with the printLine()
// function. output will be normalised and sent to the attached terminal.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	// resolve placeholders if necessary. help text in particular may contain
	// verbatim % characters
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines. the terminal implementation decides how
	// lines are separated
	s = strings.TrimRight(s, "\n")

	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface and is useful for when
// console output is being generated by a function that expects an io.Writer.
// it allows the application of a single style to all output.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, string(p))
	return len(p), nil
}
