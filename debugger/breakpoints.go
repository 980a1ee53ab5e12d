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
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/debugger/terminal"
)

// breakpoints keeps track of the addresses a free-running machine should halt
// at. breaks are on the program counter only.
type breakpoints struct {
	dbg    *Debugger
	breaks []uint16

	// address the machine was resumed from. a breakpoint on that address is
	// ignored until the program counter has moved away, so that resuming from
	// a break does not halt again before anything has happened
	resumeAddr uint16
	armed      bool
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	return &breakpoints{
		dbg:    dbg,
		breaks: make([]uint16, 0, 10),
	}
}

// prepare must be called whenever the machine is about to run freely.
func (bp *breakpoints) prepare() {
	bp.resumeAddr = bp.dbg.vm.CPU.PC
	bp.armed = false
}

// check returns true if the program counter is at an address a breakpoint has
// been defined for.
func (bp *breakpoints) check() bool {
	pc := bp.dbg.vm.CPU.PC

	if !bp.armed {
		if pc == bp.resumeAddr {
			return false
		}
		bp.armed = true
	}

	for _, b := range bp.breaks {
		if b == pc {
			return true
		}
	}

	return false
}

func (bp *breakpoints) add(addr uint16) error {
	for _, b := range bp.breaks {
		if b == addr {
			return curated.Errorf("breakpoint already exists at $%03X", addr)
		}
	}

	bp.breaks = append(bp.breaks, addr)

	return nil
}

// drop removes the numbered breakpoint. the number is the one shown by
// list().
func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return curated.Errorf("breakpoint #%d is not defined", num)
	}

	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)

	return nil
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}

	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "% 2d: $%03X", i, b)
	}
}
