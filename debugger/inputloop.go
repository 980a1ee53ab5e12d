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
	"io"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/debugger/terminal"
)

// inputLoop has two modes, driven by the continueEmulation and runUntilHalt
// flags. with both flags unset the loop blocks on TermRead() and services one
// command at a time. continueEmulation on its own causes the machine to step,
// while runUntilHalt hands control to runMachine() until a halt condition is
// met.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	var err error

	for dbg.running {
		// checkTerm is true when a free-running machine was halted because
		// input is waiting to be serviced. once the input has been dealt with
		// the machine is resumed
		checkTerm := false

		if dbg.continueEmulation {
			dbg.continueEmulation = false

			if dbg.runUntilHalt {
				checkTerm, err = dbg.runMachine(inputter)
				if err != nil {
					if !curated.IsAny(err) {
						return err
					}
					dbg.printLine(terminal.StyleError, "%v", err)
				}

				if !checkTerm {
					dbg.runUntilHalt = false
					dbg.printLastStep()
				}
			} else {
				dbg.stepMachine()
			}
		}

		inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
		if err != nil {
			if !curated.IsAny(err) {
				if err != io.EOF {
					return err
				}

				// the end of the input stream is the non-interactive
				// equivalent of the user asking to leave
				err = curated.Errorf(terminal.UserAbort)
			}

			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt(inputter)
			} else if curated.Is(err, terminal.UserAbort) {
				dbg.running = false
			} else {
				return err
			}

			continue // for loop
		}

		if inputLen > 0 {
			// the final character of the input is the terminating newline
			err = dbg.parseInput(string(dbg.input[:inputLen-1]))
			if err != nil {
				dbg.printLine(terminal.StyleError, "%v", err)
			}
		}

		if checkTerm {
			dbg.continueEmulation = true
		}
	}

	return nil
}

// runMachine runs the machine until a halt condition is met or an error
// occurs. the returned flag is true when the halt was caused by terminal
// input waiting to be serviced.
func (dbg *Debugger) runMachine(inputter terminal.Input) (bool, error) {
	checkTerm := false

	dbg.breakpoints.prepare()

	err := dbg.vm.Run(func() (bool, error) {
		select {
		case <-dbg.events.IntEvents:
			return false, nil
		default:
		}

		if inputter.TermReadCheck() {
			checkTerm = true
			return false, nil
		}

		if dbg.breakpoints.check() {
			dbg.printLine(terminal.StyleFeedback, "break at $%03X", dbg.vm.CPU.PC)
			return false, nil
		}

		return true, nil
	})

	return checkTerm, err
}

// stepMachine advances the machine by whole instructions. the STEP command
// sets the number of instructions.
func (dbg *Debugger) stepMachine() {
	steps := dbg.stepping
	if steps < 1 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		if err := dbg.vm.Tick(); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			return
		}
		dbg.printLastStep()
	}
}

// printLastStep prints the most recently executed instruction.
func (dbg *Debugger) printLastStep() {
	dbg.printLine(terminal.StyleInstructionStep, "$%03X %s",
		dbg.vm.CPU.LastAddress, dbg.vm.CPU.LastInstruction.String())
}

// handleInterrupt is called when TermRead() returns a UserInterrupt. the user
// is asked to confirm the quit request, except when the terminal is not
// interactive, in which case the debugger ends immediately.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	confirm := make([]byte, 32)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Content: "really quit (y/n) ",
			Confirm: true,
		}, dbg.events)

	if err != nil {
		// another interrupt is treated the same as a confirmation
		if curated.Is(err, terminal.UserInterrupt) {
			dbg.running = false
		}
		return
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
