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

// Package debugger implements a terminal based debugger for the emulated
// machine. Instances should be created with NewDebugger() and started with
// Start(). The debugger will end when the user asks to QUIT or when the
// input stream is exhausted.
//
// The debugger is driven through an implementation of the terminal.Terminal
// interface. Two implementations are provided in this project. A colour
// terminal with line editing and tab completion, and a plain terminal
// suitable for dumb consoles and piped input.
//
// The machine is advanced with the STEP and RUN commands. A free running
// machine is halted by a breakpoint (see the BREAK command) or by further
// terminal input. An interrupt signal from the operating system will also
// halt it. Whenever the machine is halted, the prompt shows the address and
// disassembly of the instruction that will be executed next.
package debugger
