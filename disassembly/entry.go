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

package disassembly

import "github.com/kehitt/gopher8/hardware/cpu"

// Entry is a single disassembled address.
type Entry struct {
	Address uint16
	OpCode  uint16

	// Instruction is valid only when Decoded is true
	Instruction cpu.Instruction

	// whether the opcode at this address decoded successfully
	Decoded bool

	// whether the address can be reached from the reset address by static
	// flow. an unreachable entry is probably sprite data
	Reachable bool
}
