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

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input that has been normalised by the debugger. terminals that echo
	// input as it is typed have no need for this style.
	StyleEcho Style = iota

	// the prompt printed before input is accepted. the confirm variation is
	// used for questions that expect a y/n answer.
	StylePrompt
	StylePromptConfirm

	// help text
	StyleHelp

	// non-error information from the debugger about what it has just done
	StyleFeedback

	// like StyleFeedback but for responses that have not been solicited from
	// an interactive source
	StyleFeedbackNonInteractive

	// the result of a machine step, ie. the instruction that has just been
	// executed
	StyleInstructionStep

	// the internal state of the machine: registers, memory, the display
	StyleMachineInfo

	// a terminal implementation should always print messages of this style,
	// even when it has been silenced
	StyleError
)

// IsPrompt returns true if the style is one of the prompt styles. Terminal
// implementations should not terminate the line when printing a prompt.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt || sty == StylePromptConfirm
}
