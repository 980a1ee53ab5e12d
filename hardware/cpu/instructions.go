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

package cpu

import (
	"fmt"

	"github.com/kehitt/gopher8/curated"
)

// UnknownOpcode is returned by Decode() for bit patterns that do not
// correspond to an instruction.
const UnknownOpcode = "cpu: unknown opcode (%#04x)"

// Operator identifies an instruction of the CHIP-8 machine. The names embed
// the operand shape: V for a register, B for an immediate byte, A for an
// address, N for a nibble.
type Operator int

// The complete instruction set.
const (
	Nop Operator = iota // 0000
	Cls                 // 00e0
	Ret                 // 00ee
	Jp                  // 1nnn
	Call                // 2nnn
	SeVB                // 3xkk
	SneVB               // 4xkk
	SeVV                // 5xy0
	LdVB                // 6xkk
	AddVB               // 7xkk
	LdVV                // 8xy0
	OrVV                // 8xy1
	AndVV               // 8xy2
	XorVV               // 8xy3
	AddVV               // 8xy4
	SubVV               // 8xy5
	ShrVV               // 8xy6
	SubnVV              // 8xy7
	ShlVV               // 8xye
	SneVV               // 9xy0
	LdIA                // annn
	JpVA                // bnnn
	RndVB               // cxkk
	DrwVVN              // dxyn
	SkpV                // ex9e
	SknpV               // exa1
	LdVDT               // fx07
	LdVK                // fx0a
	LdDTV               // fx15
	LdSTV               // fx18
	AddIV               // fx1e
	LdFV                // fx29
	LdBV                // fx33
	LdIV                // fx55
	LdVI                // fx65
)

// Instruction is a decoded opcode. Operand fields are populated from the
// fixed bit positions they occupy in the opcode, whether or not the operator
// uses them.
type Instruction struct {
	OpCode   uint16
	Operator Operator

	X   uint8
	Y   uint8
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode the specified opcode. Bit patterns outside the instruction set
// return an error, including the SYS instruction of the original COSMAC
// interpreter.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		OpCode: opcode,
		X:      uint8(opcode & 0x0f00 >> 8),
		Y:      uint8(opcode & 0x00f0 >> 4),
		N:      uint8(opcode & 0x000f),
		KK:     uint8(opcode & 0x00ff),
		NNN:    opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x0000:
			ins.Operator = Nop
		case 0x00e0:
			ins.Operator = Cls
		case 0x00ee:
			ins.Operator = Ret
		default:
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x1000:
		ins.Operator = Jp
	case 0x2000:
		ins.Operator = Call
	case 0x3000:
		ins.Operator = SeVB
	case 0x4000:
		ins.Operator = SneVB
	case 0x5000:
		if ins.N != 0x0 {
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
		ins.Operator = SeVV
	case 0x6000:
		ins.Operator = LdVB
	case 0x7000:
		ins.Operator = AddVB
	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Operator = LdVV
		case 0x1:
			ins.Operator = OrVV
		case 0x2:
			ins.Operator = AndVV
		case 0x3:
			ins.Operator = XorVV
		case 0x4:
			ins.Operator = AddVV
		case 0x5:
			ins.Operator = SubVV
		case 0x6:
			ins.Operator = ShrVV
		case 0x7:
			ins.Operator = SubnVV
		case 0xe:
			ins.Operator = ShlVV
		default:
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x9000:
		if ins.N != 0x0 {
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
		ins.Operator = SneVV
	case 0xa000:
		ins.Operator = LdIA
	case 0xb000:
		ins.Operator = JpVA
	case 0xc000:
		ins.Operator = RndVB
	case 0xd000:
		ins.Operator = DrwVVN
	case 0xe000:
		switch ins.KK {
		case 0x9e:
			ins.Operator = SkpV
		case 0xa1:
			ins.Operator = SknpV
		default:
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0xf000:
		switch ins.KK {
		case 0x07:
			ins.Operator = LdVDT
		case 0x0a:
			ins.Operator = LdVK
		case 0x15:
			ins.Operator = LdDTV
		case 0x18:
			ins.Operator = LdSTV
		case 0x1e:
			ins.Operator = AddIV
		case 0x29:
			ins.Operator = LdFV
		case 0x33:
			ins.Operator = LdBV
		case 0x55:
			ins.Operator = LdIV
		case 0x65:
			ins.Operator = LdVI
		default:
			return ins, curated.Errorf(UnknownOpcode, opcode)
		}
	}

	return ins, nil
}

// String returns the instruction in the assembly notation of the reference
// CHIP-8 documentation.
func (ins Instruction) String() string {
	switch ins.Operator {
	case Nop:
		return "NOP"
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp:
		return fmt.Sprintf("JP $%03X", ins.NNN)
	case Call:
		return fmt.Sprintf("CALL $%03X", ins.NNN)
	case SeVB:
		return fmt.Sprintf("SE V%X, $%02X", ins.X, ins.KK)
	case SneVB:
		return fmt.Sprintf("SNE V%X, $%02X", ins.X, ins.KK)
	case SeVV:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case LdVB:
		return fmt.Sprintf("LD V%X, $%02X", ins.X, ins.KK)
	case AddVB:
		return fmt.Sprintf("ADD V%X, $%02X", ins.X, ins.KK)
	case LdVV:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case OrVV:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case AndVV:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case XorVV:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddVV:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SubVV:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShrVV:
		return fmt.Sprintf("SHR V%X", ins.X)
	case SubnVV:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShlVV:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SneVV:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LdIA:
		return fmt.Sprintf("LD I, $%03X", ins.NNN)
	case JpVA:
		return fmt.Sprintf("JP V0, $%03X", ins.NNN)
	case RndVB:
		return fmt.Sprintf("RND V%X, $%02X", ins.X, ins.KK)
	case DrwVVN:
		return fmt.Sprintf("DRW V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case SkpV:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SknpV:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LdVDT:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case LdVK:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case LdDTV:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case LdSTV:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIV:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LdFV:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case LdBV:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case LdIV:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LdVI:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("??? ($%04X)", ins.OpCode)
}
