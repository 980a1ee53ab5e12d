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
	"os"
	"os/signal"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/debugger/terminal"
	"github.com/kehitt/gopher8/disassembly"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm   *hardware.CHIP8
	disp *display.Display

	// the most recent disassembly of the attached cartridge. nil until a
	// cartridge has been attached
	dsm *disassembly.Disassembly

	// the terminal the debugger is connected to
	term terminal.Terminal

	// events the terminal implementation must monitor during a TermRead()
	events *terminal.ReadEvents

	breakpoints *breakpoints

	// buffer for user input
	input []byte

	// the debugger is to continue accepting input until running is false
	running bool

	// the last parsed command asked the machine to advance
	continueEmulation bool

	// the machine is to run freely rather than step once
	runUntilHalt bool

	// number of instructions the next step will advance by
	stepping int
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	disp, err := display.NewDisplay(display.SpecCHIP8)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		vm:   hardware.NewCHIP8(disp),
		disp: disp,
		term: term,
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
		input: make([]byte, 255),
	}

	// the debugger always paces the machine to the wall clock. the run loop
	// then executes at most one instruction between checks of the halt
	// conditions
	dbg.vm.SetFPSCap(true)

	dbg.breakpoints = newBreakpoints(dbg)

	return dbg, nil
}

// Start the main debugger sequence. The debugger can be launched without a
// cartridge, with one being attached later with the INSERT command.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	// arrange for os signals to interrupt the input loop
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	if cartload.Filename != "" {
		if err := dbg.attachCartridge(cartload); err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	dbg.running = true
	if err := dbg.inputLoop(dbg.term); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// attach the cartridge and make a new disassembly of it. the machine is reset
// by the attach so the program will run from the beginning.
func (dbg *Debugger) attachCartridge(cartload cartridgeloader.Loader) error {
	if err := dbg.vm.AttachCartridge(cartload); err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(dbg.vm.Mem, uint16(dbg.vm.ROMSize()))
	if err != nil {
		// a cartridge that cannot be disassembled can still be debugged
		logger.Logf("debugger", "%v", err)
		dsm = nil
	}
	dbg.dsm = dsm

	logger.Logf("debugger", "attached %s (%d bytes)", cartload.ShortName(), dbg.vm.ROMSize())

	return nil
}
