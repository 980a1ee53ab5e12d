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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/debugger/terminal"
	"github.com/kehitt/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/kehitt/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// a result of a read from the input stream. if err is not nil then r and n
// are meaningless.
type readRune struct {
	r   rune
	n   int
	err error
}

// runeReader decouples the read of the input stream from the TermRead()
// function, allowing TermRead() to select between keypresses and the
// ReadEvents channels.
type runeReader struct {
	ch chan readRune
}

func initRuneReader(input io.Reader) runeReader {
	// the single entry buffer means TermReadCheck() can detect a keypress
	// without consuming it
	rr := runeReader{ch: make(chan readRune, 1)}

	br := bufio.NewReader(input)

	go func() {
		for {
			var rd readRune
			rd.r, rd.n, rd.err = br.ReadRune()
			rr.ch <- rd
		}
	}()

	return rr
}

// readRune blocks until the next rune arrives. used for the continuation
// bytes of an escape sequence, which follow the escape byte immediately.
func (rr runeReader) readRune() readRune {
	return <-rr.ch
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	// before the loop begins
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style(), fmt.Sprintf("%s%s", ansi.ClearLine, prompt.String()))
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rd readRune

		select {
		case rd = <-ct.reader.ch:
		case <-events.IntEvents:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		}

		if rd.err != nil {
			return n, rd.err
		}

		switch rd.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return n + 1, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			// the terminal is in raw mode so the suspend character must be
			// acted upon manually. restore canonical mode before stopping so
			// that the shell behaves as the user expects while we're away
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append a
			// new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rd = ct.reader.readRune()
			if rd.err != nil {
				return n, rd.err
			}
			switch rd.r {
			case easyterm.EscCursor:
				// CURSOR KEY
				rd = ct.reader.readRune()
				if rd.err != nil {
					return n, rd.err
				}

				switch rd.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then store
						// the current input in buffInput for possible later
						// editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}

				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}

				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}

				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscHome:
					ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
					cursor = 0

				case easyterm.EscEnd:
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n

				case easyterm.EscDelete:
					// the delete key sequence ends with a trailing tilde.
					// consume it before editing the input
					rd = ct.reader.readRune()
					if rd.err != nil {
						return n, rd.err
					}
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rd.r) {
				ct.EasyTerm.TermPrint(string(rd.r))
				m := utf8.EncodeRune(er, rd.r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
