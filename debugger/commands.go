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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/debugger/terminal"
	"github.com/kehitt/gopher8/disassembly"
	"github.com/kehitt/gopher8/hardware/memory"
)

// debugger keywords.
const (
	cmdBreak     = "BREAK"
	cmdClear     = "CLEAR"
	cmdDisasm    = "DISASM"
	cmdDisplay   = "DISPLAY"
	cmdDrop      = "DROP"
	cmdExit      = "EXIT"
	cmdGrep      = "GREP"
	cmdHelp      = "HELP"
	cmdInsert    = "INSERT"
	cmdList      = "LIST"
	cmdMemory    = "MEM"
	cmdQuit      = "QUIT"
	cmdRegisters = "REGS"
	cmdReset     = "RESET"
	cmdRun       = "RUN"
	cmdStep      = "STEP"
	cmdViz       = "VIZ"
)

// commandList is the list of commands available at the terminal, in
// alphabetical order. used for tab completion and by the HELP command.
var commandList = []string{
	cmdBreak, cmdClear, cmdDisasm, cmdDisplay, cmdDrop, cmdExit, cmdGrep,
	cmdHelp, cmdInsert, cmdList, cmdMemory, cmdQuit, cmdRegisters, cmdReset,
	cmdRun, cmdStep, cmdViz,
}

// parseInput tokenises the input and echoes the normalised form before
// processing. commands that advance the machine do so by setting the
// continueEmulation and runUntilHalt flags for the input loop to act on.
func (dbg *Debugger) parseInput(input string) error {
	tkn := tokeniseInput(input)
	if tkn.num() == 0 {
		return nil
	}

	// echo the normalised input so that logs show what was actually executed
	tkn.tokens[0] = strings.ToUpper(tkn.tokens[0])
	dbg.printLine(terminal.StyleEcho, tkn.String())

	return dbg.processTokens(tkn)
}

func (dbg *Debugger) processTokens(tkn *tokens) error {
	command, _ := tkn.get()

	switch command {
	default:
		return curated.Errorf("unrecognised command (%s)", command)

	case cmdHelp:
		if topic, ok := tkn.get(); ok {
			topic = strings.ToUpper(topic)
			if txt, ok := helps[topic]; ok {
				dbg.printLine(terminal.StyleHelp, txt)
			} else {
				return curated.Errorf("no help for %s", topic)
			}
		} else {
			dbg.printLine(terminal.StyleHelp, strings.Join(commandList, " "))
		}

	case cmdQuit, cmdExit:
		dbg.running = false

	case cmdReset:
		if err := dbg.vm.Reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.runUntilHalt = true
		dbg.continueEmulation = true

	case cmdStep:
		num := 1
		if s, ok := tkn.get(); ok {
			n, err := strconv.ParseUint(s, 0, 16)
			if err != nil || n == 0 {
				return curated.Errorf("not a valid step count (%s)", s)
			}
			num = int(n)
		}
		dbg.stepping = num
		dbg.runUntilHalt = false
		dbg.continueEmulation = true

	case cmdBreak:
		addr, err := dbg.parseAddress(tkn)
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.add(addr); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at $%03X", addr)

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdList:
		dbg.breakpoints.list()

	case cmdDrop:
		s, ok := tkn.get()
		if !ok {
			return curated.Errorf("breakpoint number required")
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return curated.Errorf("not a valid breakpoint number (%s)", s)
		}
		if err := dbg.breakpoints.drop(n); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", n)

	case cmdRegisters:
		dbg.printLine(terminal.StyleMachineInfo, dbg.vm.CPU.String())

	case cmdMemory:
		addr, err := dbg.parseAddress(tkn)
		if err != nil {
			return err
		}
		length := 64
		if s, ok := tkn.get(); ok {
			n, err := strconv.ParseUint(s, 0, 16)
			if err != nil || n == 0 {
				return curated.Errorf("not a valid length (%s)", s)
			}
			length = int(n)
		}
		dbg.printMemory(addr, length)

	case cmdDisplay:
		dbg.printDisplay()

	case cmdDisasm:
		if dbg.dsm == nil {
			return curated.Errorf("no cartridge attached")
		}
		attr := disassembly.WriteAttr{}
		if s, ok := tkn.get(); ok {
			if strings.ToUpper(s) != "BYTECODE" {
				return curated.Errorf("unrecognised argument (%s)", s)
			}
			attr.ByteCode = true
		}
		return dbg.dsm.Write(dbg.printStyle(terminal.StyleFeedback), attr)

	case cmdGrep:
		if dbg.dsm == nil {
			return curated.Errorf("no cartridge attached")
		}
		search := tkn.remainder()
		if search == "" {
			return curated.Errorf("search term required")
		}
		return dbg.dsm.Grep(dbg.printStyle(terminal.StyleFeedback), search, false)

	case cmdInsert:
		filename := tkn.remainder()
		if filename == "" {
			return curated.Errorf("filename required")
		}
		cartload := cartridgeloader.NewLoader(filename)
		if err := dbg.attachCartridge(cartload); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "inserted %s", cartload.ShortName())

	case cmdViz:
		filename := tkn.remainder()
		if filename == "" {
			return curated.Errorf("filename required")
		}
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("viz: %v", err)
		}
		memviz.Map(f, dbg.vm)
		if err := f.Close(); err != nil {
			return curated.Errorf("viz: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "machine graph written to %s", filename)
	}

	return nil
}

// parseAddress interprets the next token as a machine address.
func (dbg *Debugger) parseAddress(tkn *tokens) (uint16, error) {
	s, ok := tkn.get()
	if !ok {
		return 0, curated.Errorf("address required")
	}

	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil || v >= memory.MemorySize {
		return 0, curated.Errorf("not a valid address (%s)", s)
	}

	return uint16(v), nil
}

// printMemory prints a hex dump in rows of sixteen bytes, clamped to the end
// of the memory map.
func (dbg *Debugger) printMemory(addr uint16, length int) {
	s := strings.Builder{}

	for i := 0; i < length; i++ {
		a := addr + uint16(i)
		if a >= memory.MemorySize {
			break
		}

		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%03X:", a))
		}

		v, err := dbg.vm.Mem.Read8(a)
		if err != nil {
			break
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}

	dbg.printLine(terminal.StyleMachineInfo, s.String())
}

// printDisplay draws the current state of the display to the terminal. two
// rows of pixels are packed into every line of output with half block
// characters.
func (dbg *Debugger) printDisplay() {
	spec := dbg.disp.Spec()

	s := strings.Builder{}
	for y := 0; y < spec.Height; y += 2 {
		if y > 0 {
			s.WriteString("\n")
		}
		for x := 0; x < spec.Width; x++ {
			top, _ := dbg.disp.GetPixel(x, y)
			bot, _ := dbg.disp.GetPixel(x, y+1)
			switch {
			case top && bot:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bot:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
	}

	dbg.printLine(terminal.StyleMachineInfo, s.String())
}
