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
	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/cpu"
	"github.com/kehitt/gopher8/hardware/memory"
)

// Disassembly represents the disassembled program.
type Disassembly struct {
	entries map[uint16]*Entry

	// the extent of the ROM in memory. memtop is the last address occupied
	// by ROM data
	origin uint16
	memtop uint16
}

// FromCartridge disassembles the ROM in the cartridge loader. The ROM is
// loaded if it hasn't been already.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}

	mem := memory.NewMemory()
	if err := mem.LoadROM(cartload.Data); err != nil {
		return nil, err
	}

	return FromMemory(mem, uint16(len(cartload.Data)))
}

// FromMemory disassembles size bytes starting at the ROM origin of an
// existing memory instance.
func FromMemory(mem *memory.Memory, size uint16) (*Disassembly, error) {
	if size < cpu.InstructionSize {
		return nil, curated.Errorf("disassembly: nothing to disassemble")
	}

	dsm := &Disassembly{
		entries: make(map[uint16]*Entry),
		origin:  memory.OriginROM,
		memtop:  memory.OriginROM + size - 1,
	}

	if err := dsm.decode(mem); err != nil {
		return nil, err
	}
	dsm.flow()

	return dsm, nil
}

// decode an instruction at every address. every address, not every other
// address: jump targets do not have to be aligned so the odd addresses must
// be available to the flow pass.
func (dsm *Disassembly) decode(mem *memory.Memory) error {
	for addr := dsm.origin; addr < dsm.memtop; addr++ {
		op, err := mem.Read16(addr)
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}

		e := &Entry{Address: addr, OpCode: op}

		ins, err := cpu.Decode(op)
		if err == nil {
			e.Instruction = ins
			e.Decoded = true
		}

		dsm.entries[addr] = e
	}

	return nil
}

// the statically knowable addresses that can run after this entry.
func (e *Entry) successors() []uint16 {
	if !e.Decoded {
		return nil
	}

	next := e.Address + cpu.InstructionSize

	switch e.Instruction.Operator {
	case cpu.Nop:
		// a plain NOP never advances
		return nil
	case cpu.Jp:
		return []uint16{e.Instruction.NNN}
	case cpu.Call:
		return []uint16{e.Instruction.NNN, next}
	case cpu.Ret, cpu.JpVA:
		// RET returns to an address queued at the CALL site. the target of a
		// computed jump is unknowable statically
		return nil
	case cpu.SeVB, cpu.SneVB, cpu.SeVV, cpu.SneVV, cpu.SkpV, cpu.SknpV:
		return []uint16{next, next + cpu.InstructionSize}
	}

	return []uint16{next}
}

// walk the static flow of the program from the reset address, marking every
// entry that can be reached.
func (dsm *Disassembly) flow() {
	stack := []uint16{dsm.origin}

	for len(stack) > 0 {
		addr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e, ok := dsm.entries[addr]
		if !ok || e.Reachable {
			continue
		}
		e.Reachable = true

		stack = append(stack, e.successors()...)
	}
}
