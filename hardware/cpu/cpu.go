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

// Package cpu implements the instruction interpreter of the CHIP-8 machine.
// Unlike a real CPU the interpreter reaches directly into the other
// components of the machine: sprites are plotted straight onto the display
// and the keypad is polled in place.
package cpu

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/hardware/keypad"
	"github.com/kehitt/gopher8/hardware/memory"
)

// NumRegisters is the number of general purpose registers. The last of these,
// VF, doubles as the carry/collision flag.
const NumRegisters = 16

// InstructionSize is the width of an opcode in bytes.
const InstructionSize = 2

// CPU is the register file and interpreter state of the CHIP-8 machine.
// Registers are exported for the benefit of the debugger, nothing else
// should write to them.
type CPU struct {
	V     [NumRegisters]uint8
	I     uint16
	PC    uint16
	Stack memory.Stack

	// both timers count down at the tick rate of the machine. the sound
	// timer gates the beeper while it is non-zero.
	DelayTimer uint8
	SoundTimer uint8

	// the address and decoding of the most recently executed instruction
	LastAddress     uint16
	LastInstruction Instruction

	mem  *memory.Memory
	disp *display.Display
	pad  *keypad.Keypad

	rnd *rand.Rand
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, disp *display.Display, pad *keypad.Keypad) *CPU {
	mc := &CPU{
		mem:  mem,
		disp: disp,
		pad:  pad,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	mc.Reset()
	return mc
}

// Reset the CPU to its initial state. Memory and display are left untouched.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.OriginROM
	mc.Stack.Reset()
	mc.DelayTimer = 0
	mc.SoundTimer = 0
	mc.LastAddress = 0
	mc.LastInstruction = Instruction{}
}

// SetRandSeed replaces the random number source used by the RND instruction
// with a deterministically seeded one. Required for digest based regression,
// where two runs of the same ROM must behave identically.
func (mc *CPU) SetRandSeed(seed int64) {
	mc.rnd = rand.New(rand.NewSource(seed))
}

// DecrementTimers counts the delay and sound timers down by one step. Called
// by the machine once per tick.
func (mc *CPU) DecrementTimers() {
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}
	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=$%03X I=$%03X DT=$%02X ST=$%02X SP=%d\n",
		mc.PC, mc.I, mc.DelayTimer, mc.SoundTimer, mc.Stack.Depth()))
	for i := 0; i < NumRegisters; i++ {
		s.WriteString(fmt.Sprintf("V%X=$%02X", i, mc.V[i]))
		if i == NumRegisters/2-1 {
			s.WriteString("\n")
		} else if i < NumRegisters-1 {
			s.WriteString(" ")
		}
	}
	return s.String()
}
