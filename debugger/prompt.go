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

	"github.com/kehitt/gopher8/debugger/terminal"
	"github.com/kehitt/gopher8/hardware/cpu"
)

// buildPrompt returns a prompt suitable for the next call to TermRead(). the
// prompt shows the instruction the machine will execute next.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	content := fmt.Sprintf("$%03X", dbg.vm.CPU.PC)

	// decorate the prompt with a disassembly of the upcoming instruction, so
	// long as the opcode decodes cleanly
	if opcode, err := dbg.vm.Mem.Read16(dbg.vm.CPU.PC); err == nil {
		if ins, err := cpu.Decode(opcode); err == nil {
			content = fmt.Sprintf("%s : %s", content, ins.String())
		}
	}

	return terminal.Prompt{Content: content}
}
