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

import (
	"fmt"
	"io"
)

// WriteAttr controls what Write() includes in the output.
type WriteAttr struct {
	// include the opcode bytes in every line
	ByteCode bool

	// limit output to entries that the flow pass has marked as reachable
	ReachableOnly bool
}

// Write the entire disassembly to output. Entries at the conventional
// alignment are always written. Entries at odd addresses are only written if
// the program can actually reach them.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for addr := dsm.origin; addr < dsm.memtop; addr++ {
		e, ok := dsm.entries[addr]
		if !ok {
			continue
		}
		if addr%2 != 0 && !e.Reachable {
			continue
		}
		if attr.ReachableOnly && !e.Reachable {
			continue
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single disassembly entry to output. Opcodes that do not
// decode to an instruction are written with a placeholder mnemonic.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	mnemonic := "??"
	if e.Decoded {
		mnemonic = e.Instruction.String()
	}

	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "$%03X  %02x %02x  %s\n", e.Address, uint8(e.OpCode>>8), uint8(e.OpCode), mnemonic)
	} else {
		_, err = fmt.Fprintf(output, "$%03X  %s\n", e.Address, mnemonic)
	}
	return err
}
