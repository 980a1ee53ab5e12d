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

// help text for each command in the commandList.
var helps = map[string]string{
	cmdBreak:     "Add a breakpoint at an address. Addresses can be in hex ($200 or 0x200) or decimal",
	cmdClear:     "Clear all breakpoints",
	cmdDisasm:    "Print the disassembly of the attached cartridge. The BYTECODE argument adds the opcode for each entry",
	cmdDisplay:   "Draw the current state of the display to the terminal",
	cmdDrop:      "Drop the numbered breakpoint. Use LIST to see breakpoint numbers",
	cmdExit:      "Exits the debugger",
	cmdGrep:      "Simple string search (case insensitive) of the disassembly",
	cmdHelp:      "Lists commands and provides help for individual debugger commands",
	cmdInsert:    "Insert a cartridge into the machine (from a file or URL)",
	cmdMemory:    "Print a hex dump of an area of memory. Length defaults to 64 bytes",
	cmdList:      "List current breakpoints",
	cmdQuit:      "Quits the debugger",
	cmdRegisters: "Print the current state of the CPU",
	cmdReset:     "Reset the machine to its initial state. The attached cartridge is reloaded",
	cmdRun:       "Run the machine until a halt condition is met",
	cmdStep:      "Step forward one instruction, or the specified number of instructions",
	cmdViz:       "Write a graph of the machine's internals to a file, in graphviz dot format",
}
