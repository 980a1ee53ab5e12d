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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	// the content. for the debugger this is the disassembly of the next
	// instruction to be executed
	Content string

	// a confirm prompt poses a question rather than soliciting a command. it
	// is printed without decoration
	Confirm bool
}

// Style returns the terminal style appropriate for the prompt.
func (p Prompt) Style() Style {
	if p.Confirm {
		return StylePromptConfirm
	}
	return StylePrompt
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.Confirm {
		return p.Content
	}
	return fmt.Sprintf("[ %s ] >> ", strings.TrimSpace(p.Content))
}
