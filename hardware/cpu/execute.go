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

// stepResult describes what happens to the program counter after an
// instruction.
type stepResult int

const (
	// stay is used by NOP and by a waiting LD Vx, K. the instruction will be
	// seen again on the next tick.
	stay stepResult = iota
	next
	skip
	jump
)

// ExecuteInstruction fetches, decodes and executes the instruction at the
// current program counter. Errors from any stage are returned undisturbed,
// the program counter is left on the failing instruction.
func (mc *CPU) ExecuteInstruction() error {
	opcode, err := mc.mem.Read16(mc.PC)
	if err != nil {
		return err
	}

	ins, err := Decode(opcode)
	if err != nil {
		return err
	}

	mc.LastAddress = mc.PC
	mc.LastInstruction = ins

	res := next
	var jumpTo uint16

	switch ins.Operator {
	case Nop:
		res = stay

	case Cls:
		mc.disp.Clear()

	case Ret:
		addr, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		// the stack holds the address of the CALL instruction, the
		// subsequent advance steps over it
		mc.PC = addr

	case Jp:
		res = jump
		jumpTo = ins.NNN

	case Call:
		if err := mc.Stack.Push(mc.PC); err != nil {
			return err
		}
		res = jump
		jumpTo = ins.NNN

	case SeVB:
		if mc.V[ins.X] == ins.KK {
			res = skip
		}

	case SneVB:
		if mc.V[ins.X] != ins.KK {
			res = skip
		}

	case SeVV:
		if mc.V[ins.X] == mc.V[ins.Y] {
			res = skip
		}

	case LdVB:
		mc.V[ins.X] = ins.KK

	case AddVB:
		mc.V[ins.X] += ins.KK

	case LdVV:
		mc.V[ins.X] = mc.V[ins.Y]

	case OrVV:
		mc.V[ins.X] |= mc.V[ins.Y]

	case AndVV:
		mc.V[ins.X] &= mc.V[ins.Y]

	case XorVV:
		mc.V[ins.X] ^= mc.V[ins.Y]

	case AddVV:
		r := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(r)
		if r > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case SubVV:
		borrow := mc.V[ins.Y] > mc.V[ins.X]
		mc.V[ins.X] -= mc.V[ins.Y]
		if borrow {
			mc.V[0xf] = 0
		} else {
			mc.V[0xf] = 1
		}

	case ShrVV:
		mc.V[0xf] = mc.V[ins.X] & 0x01
		mc.V[ins.X] >>= 1

	case SubnVV:
		borrow := mc.V[ins.X] > mc.V[ins.Y]
		mc.V[ins.X] = mc.V[ins.Y] - mc.V[ins.X]
		if borrow {
			mc.V[0xf] = 0
		} else {
			mc.V[0xf] = 1
		}

	case ShlVV:
		mc.V[0xf] = mc.V[ins.X] >> 7
		mc.V[ins.X] <<= 1

	case SneVV:
		if mc.V[ins.X] != mc.V[ins.Y] {
			res = skip
		}

	case LdIA:
		mc.I = ins.NNN

	case JpVA:
		res = jump
		jumpTo = ins.NNN + uint16(mc.V[0x0])

	case RndVB:
		mc.V[ins.X] = uint8(mc.rnd.Intn(0xff)) & ins.KK

	case DrwVVN:
		if err := mc.drawSprite(ins); err != nil {
			return err
		}

	case SkpV:
		pressed, err := mc.pad.IsPressed(mc.V[ins.X])
		if err != nil {
			return err
		}
		if pressed {
			res = skip
		}

	case SknpV:
		pressed, err := mc.pad.IsPressed(mc.V[ins.X])
		if err != nil {
			return err
		}
		if !pressed {
			res = skip
		}

	case LdVDT:
		mc.V[ins.X] = mc.DelayTimer

	case LdVK:
		key, ok := mc.pad.FirstPressed()
		if !ok {
			res = stay
			break
		}
		mc.V[ins.X] = key

	case LdDTV:
		mc.DelayTimer = mc.V[ins.X]

	case LdSTV:
		mc.SoundTimer = mc.V[ins.X]

	case AddIV:
		mc.I += uint16(mc.V[ins.X])

	case LdFV:
		mc.I = mc.mem.FontAddress(mc.V[ins.X])

	case LdBV:
		v := mc.V[ins.X]
		if err := mc.mem.Write8(mc.I, v/100); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+1, (v/10)%10); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+2, v%10); err != nil {
			return err
		}

	case LdIV:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := mc.mem.Write8(mc.I+i, mc.V[i]); err != nil {
				return err
			}
		}

	case LdVI:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			v, err := mc.mem.Read8(mc.I + i)
			if err != nil {
				return err
			}
			mc.V[i] = v
		}
	}

	switch res {
	case stay:
	case next:
		mc.PC += InstructionSize
	case skip:
		mc.PC += InstructionSize * 2
	case jump:
		mc.PC = jumpTo
	}

	return nil
}

// drawSprite implements the DRW instruction. The sprite's starting
// coordinates wrap around the display, the individual pixels wrap
// independently. Pixels are plotted with XOR and VF records whether any lit
// pixel was unlit by the draw.
func (mc *CPU) drawSprite(ins Instruction) error {
	mc.V[0xf] = 0
	spec := mc.disp.Spec()

	for row := uint8(0); row < ins.N; row++ {
		y := int(mc.V[ins.Y]+row) % spec.Height

		sprite, err := mc.mem.Read8(mc.I + uint16(row))
		if err != nil {
			return err
		}

		for bit := uint8(0); bit < 8; bit++ {
			x := int(mc.V[ins.X]+bit) % spec.Width

			color := sprite >> (7 - bit) & 0x01

			current, err := mc.disp.GetPixel(x, y)
			if err != nil {
				return err
			}

			var cur uint8
			if current {
				cur = 0x01
			}
			mc.V[0xf] |= color & cur

			if err := mc.disp.SetPixel(x, y, (cur^color) != 0); err != nil {
				return err
			}
		}
	}

	return nil
}
