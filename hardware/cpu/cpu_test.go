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

package cpu_test

import (
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/cpu"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/hardware/keypad"
	"github.com/kehitt/gopher8/hardware/memory"
	"github.com/kehitt/gopher8/test"
)

type testMachine struct {
	mem *memory.Memory
	dsp *display.Display
	pad *keypad.Keypad
	mc  *cpu.CPU
}

func newTestMachine(t *testing.T) *testMachine {
	t.Helper()
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)
	tm := &testMachine{
		mem: memory.NewMemory(),
		dsp: dsp,
		pad: keypad.NewKeypad(),
	}
	tm.mc = cpu.NewCPU(tm.mem, tm.dsp, tm.pad)
	return tm
}

// poke the opcode at the current program counter and execute it
func (tm *testMachine) step(t *testing.T, opcode uint16) {
	t.Helper()
	err := tm.mem.Write8(tm.mc.PC, uint8(opcode>>8))
	test.ExpectedSuccess(t, err)
	err = tm.mem.Write8(tm.mc.PC+1, uint8(opcode))
	test.ExpectedSuccess(t, err)
	err = tm.mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
}

func (tm *testMachine) pixel(t *testing.T, x int, y int) bool {
	t.Helper()
	v, err := tm.dsp.GetPixel(x, y)
	test.ExpectedSuccess(t, err)
	return v
}

func TestReset(t *testing.T) {
	tm := newTestMachine(t)
	test.Equate(t, tm.mc.PC, 0x200)
	test.Equate(t, tm.mc.I, 0x000)
	test.Equate(t, tm.mc.Stack.Depth(), 0)
}

func TestNop(t *testing.T) {
	tm := newTestMachine(t)
	tm.step(t, 0x0000)
	// NOP holds the program counter in place
	test.Equate(t, tm.mc.PC, 0x200)
}

func TestUnknownOpcode(t *testing.T) {
	tm := newTestMachine(t)
	for _, opcode := range []uint16{0x0123, 0x5ab1, 0x8ab8, 0x9ab5, 0xe0a2, 0xf0f0} {
		err := tm.mem.Write8(tm.mc.PC, uint8(opcode>>8))
		test.ExpectedSuccess(t, err)
		err = tm.mem.Write8(tm.mc.PC+1, uint8(opcode))
		test.ExpectedSuccess(t, err)
		err = tm.mc.ExecuteInstruction()
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	}
}

func TestJump(t *testing.T) {
	tm := newTestMachine(t)
	tm.step(t, 0x1abc)
	test.Equate(t, tm.mc.PC, 0xabc)
}

func TestCallRet(t *testing.T) {
	tm := newTestMachine(t)

	tm.step(t, 0x2400)
	test.Equate(t, tm.mc.PC, 0x400)
	test.Equate(t, tm.mc.Stack.Depth(), 1)

	// returning lands on the instruction after the call
	tm.step(t, 0x00ee)
	test.Equate(t, tm.mc.PC, 0x202)
	test.Equate(t, tm.mc.Stack.Depth(), 0)

	// returning with an empty stack is an error
	err := tm.mem.Write8(tm.mc.PC, 0x00)
	test.ExpectedSuccess(t, err)
	err = tm.mem.Write8(tm.mc.PC+1, 0xee)
	test.ExpectedSuccess(t, err)
	err = tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.StackUnderflow))
}

func TestSkipEqualByte(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x3] = 0x42

	tm.step(t, 0x3342)
	test.Equate(t, tm.mc.PC, 0x204)

	tm.step(t, 0x3341)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestSkipNotEqualByte(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x3] = 0x42

	tm.step(t, 0x4341)
	test.Equate(t, tm.mc.PC, 0x204)

	tm.step(t, 0x4342)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestSkipEqualRegister(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0xaa
	tm.mc.V[0x1] = 0xaa
	tm.mc.V[0x2] = 0xbb

	tm.step(t, 0x5010)
	test.Equate(t, tm.mc.PC, 0x204)

	tm.step(t, 0x5020)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestSkipNotEqualRegister(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0xaa
	tm.mc.V[0x1] = 0xaa
	tm.mc.V[0x2] = 0xbb

	tm.step(t, 0x9020)
	test.Equate(t, tm.mc.PC, 0x204)

	tm.step(t, 0x9010)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestLoadByte(t *testing.T) {
	tm := newTestMachine(t)
	tm.step(t, 0x6a99)
	test.Equate(t, tm.mc.V[0xa], 0x99)
	test.Equate(t, tm.mc.PC, 0x202)
}

func TestAddByte(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x4] = 0xf0

	tm.step(t, 0x7405)
	test.Equate(t, tm.mc.V[0x4], 0xf5)

	// add wraps and does not touch VF
	tm.mc.V[0xf] = 0x77
	tm.step(t, 0x7420)
	test.Equate(t, tm.mc.V[0x4], 0x15)
	test.Equate(t, tm.mc.V[0xf], 0x77)
}

func TestLoadRegister(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x1] = 0x5c
	tm.step(t, 0x8010)
	test.Equate(t, tm.mc.V[0x0], 0x5c)
}

func TestOrAndXor(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0xf0
	tm.mc.V[0x1] = 0x0f

	tm.step(t, 0x8011)
	test.Equate(t, tm.mc.V[0x0], 0xff)

	tm.mc.V[0x0] = 0xf0
	tm.step(t, 0x8012)
	test.Equate(t, tm.mc.V[0x0], 0x00)

	tm.mc.V[0x0] = 0xff
	tm.step(t, 0x8013)
	test.Equate(t, tm.mc.V[0x0], 0xf0)
}

func TestAddRegisters(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x0] = 0x10
	tm.mc.V[0x1] = 0x20
	tm.step(t, 0x8014)
	test.Equate(t, tm.mc.V[0x0], 0x30)
	test.Equate(t, tm.mc.V[0xf], 0x00)

	tm.mc.V[0x0] = 0xff
	tm.mc.V[0x1] = 0x02
	tm.step(t, 0x8014)
	test.Equate(t, tm.mc.V[0x0], 0x01)
	test.Equate(t, tm.mc.V[0xf], 0x01)
}

func TestSubRegisters(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x0] = 0x20
	tm.mc.V[0x1] = 0x10
	tm.step(t, 0x8015)
	test.Equate(t, tm.mc.V[0x0], 0x10)
	test.Equate(t, tm.mc.V[0xf], 0x01)

	tm.mc.V[0x0] = 0x10
	tm.mc.V[0x1] = 0x20
	tm.step(t, 0x8015)
	test.Equate(t, tm.mc.V[0x0], 0xf0)
	test.Equate(t, tm.mc.V[0xf], 0x00)
}

func TestSubnRegisters(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x0] = 0x10
	tm.mc.V[0x1] = 0x20
	tm.step(t, 0x8017)
	test.Equate(t, tm.mc.V[0x0], 0x10)
	test.Equate(t, tm.mc.V[0xf], 0x01)

	tm.mc.V[0x0] = 0x20
	tm.mc.V[0x1] = 0x10
	tm.step(t, 0x8017)
	test.Equate(t, tm.mc.V[0x0], 0xf0)
	test.Equate(t, tm.mc.V[0xf], 0x00)
}

func TestShiftRight(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x2] = 0x05
	tm.step(t, 0x8206)
	test.Equate(t, tm.mc.V[0x2], 0x02)
	test.Equate(t, tm.mc.V[0xf], 0x01)

	tm.mc.V[0x2] = 0x04
	tm.step(t, 0x8206)
	test.Equate(t, tm.mc.V[0x2], 0x02)
	test.Equate(t, tm.mc.V[0xf], 0x00)
}

func TestShiftLeft(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x2] = 0x81
	tm.step(t, 0x820e)
	test.Equate(t, tm.mc.V[0x2], 0x02)
	test.Equate(t, tm.mc.V[0xf], 0x01)

	tm.mc.V[0x2] = 0x01
	tm.step(t, 0x820e)
	test.Equate(t, tm.mc.V[0x2], 0x02)
	test.Equate(t, tm.mc.V[0xf], 0x00)
}

func TestLoadIndex(t *testing.T) {
	tm := newTestMachine(t)
	tm.step(t, 0xa321)
	test.Equate(t, tm.mc.I, 0x321)
}

func TestJumpV0(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0x0a
	tm.step(t, 0xb300)
	test.Equate(t, tm.mc.PC, 0x30a)
}

func TestRand(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.SetRandSeed(1)

	// the mask limits the result
	for i := 0; i < 20; i++ {
		tm.step(t, 0xc00f)
		if tm.mc.V[0x0] > 0x0f {
			t.Fatalf("RND result %#02x escapes mask %#02x", tm.mc.V[0x0], 0x0f)
		}
	}

	// the same seed produces the same sequence
	a := newTestMachine(t)
	a.mc.SetRandSeed(99)
	b := newTestMachine(t)
	b.mc.SetRandSeed(99)
	for i := 0; i < 20; i++ {
		a.step(t, 0xc0ff)
		b.step(t, 0xc0ff)
		test.Equate(t, a.mc.V[0x0], b.mc.V[0x0])
	}
}

func TestDraw(t *testing.T) {
	tm := newTestMachine(t)

	// the font sprite for zero is an outlined 4x5 box
	tm.step(t, 0xf029) // LD F, V0 with V0 = 0
	test.Equate(t, tm.mc.I, 0x050)

	tm.step(t, 0xd015) // DRW V0, V1, 5 at (0, 0)
	test.Equate(t, tm.mc.V[0xf], 0x00)

	test.Equate(t, tm.pixel(t, 0, 0), true)
	test.Equate(t, tm.pixel(t, 3, 0), true)
	test.Equate(t, tm.pixel(t, 4, 0), false)
	test.Equate(t, tm.pixel(t, 0, 1), true)
	test.Equate(t, tm.pixel(t, 1, 1), false)
	test.Equate(t, tm.pixel(t, 2, 1), false)
	test.Equate(t, tm.pixel(t, 3, 1), true)
	test.Equate(t, tm.pixel(t, 0, 4), true)
	test.Equate(t, tm.pixel(t, 3, 4), true)

	// drawing the same sprite again removes it and reports the collision
	tm.step(t, 0xd015)
	test.Equate(t, tm.mc.V[0xf], 0x01)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			test.Equate(t, tm.pixel(t, x, y), false)
		}
	}
}

func TestDrawWrap(t *testing.T) {
	tm := newTestMachine(t)

	tm.mc.V[0x0] = 62
	tm.mc.V[0x1] = 30
	tm.step(t, 0xd012) // DRW V0, V1, 2 with I = 0

	// memory at 0x000 is empty so nothing is plotted, but the draw must not
	// fail at the display boundary
	test.Equate(t, tm.mc.PC, 0x202)

	// now with real sprite data. a single row of 0xff starting at (62, 31)
	// wraps to the top-left
	err := tm.mem.Write8(0x300, 0xff)
	test.ExpectedSuccess(t, err)
	tm.step(t, 0xa300) // LD I, $300
	tm.mc.V[0x0] = 62
	tm.mc.V[0x1] = 31
	tm.step(t, 0xd011)

	test.Equate(t, tm.pixel(t, 62, 31), true)
	test.Equate(t, tm.pixel(t, 63, 31), true)
	test.Equate(t, tm.pixel(t, 0, 31), true)
	test.Equate(t, tm.pixel(t, 5, 31), true)
	test.Equate(t, tm.pixel(t, 6, 31), false)

	// a sprite taller than the remaining rows wraps to the top row
	tm.mc.V[0x0] = 0
	tm.mc.V[0x1] = 31
	err = tm.mem.Write8(0x301, 0xff)
	test.ExpectedSuccess(t, err)
	tm.step(t, 0xd012)

	test.Equate(t, tm.pixel(t, 0, 0), true)
	test.Equate(t, tm.pixel(t, 7, 0), true)
}

func TestSkipKey(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0xa

	// SKP with the key up does not skip
	tm.step(t, 0xe09e)
	test.Equate(t, tm.mc.PC, 0x202)

	err := tm.pad.Press(0xa)
	test.ExpectedSuccess(t, err)
	tm.step(t, 0xe09e)
	test.Equate(t, tm.mc.PC, 0x206)

	// SKNP is the complement
	tm.step(t, 0xe0a1)
	test.Equate(t, tm.mc.PC, 0x208)

	err = tm.pad.Release(0xa)
	test.ExpectedSuccess(t, err)
	tm.step(t, 0xe0a1)
	test.Equate(t, tm.mc.PC, 0x20c)
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine(t)

	// no key is down so the program counter holds
	tm.step(t, 0xf30a)
	test.Equate(t, tm.mc.PC, 0x200)

	err := tm.pad.Press(0xb)
	test.ExpectedSuccess(t, err)
	tm.step(t, 0xf30a)
	test.Equate(t, tm.mc.PC, 0x202)
	test.Equate(t, tm.mc.V[0x3], 0x0b)
}

func TestTimers(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x0] = 0x03

	tm.step(t, 0xf015) // LD DT, V0
	test.Equate(t, tm.mc.DelayTimer, 0x03)

	tm.step(t, 0xf018) // LD ST, V0
	test.Equate(t, tm.mc.SoundTimer, 0x03)

	tm.step(t, 0xf107) // LD V1, DT
	test.Equate(t, tm.mc.V[0x1], 0x03)

	for i := 0; i < 5; i++ {
		tm.mc.DecrementTimers()
	}

	// timers saturate at zero
	test.Equate(t, tm.mc.DelayTimer, 0x00)
	test.Equate(t, tm.mc.SoundTimer, 0x00)
}

func TestAddIndex(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.I = 0x100
	tm.mc.V[0x5] = 0x30
	tm.step(t, 0xf51e)
	test.Equate(t, tm.mc.I, 0x130)
}

func TestFontAddress(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.V[0x2] = 0x0f
	tm.step(t, 0xf229)
	test.Equate(t, tm.mc.I, 0x09b)
}

func TestBCD(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.I = 0x300
	tm.mc.V[0xa] = 254

	tm.step(t, 0xfa33)

	v, err := tm.mem.Read8(0x300)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 2)
	v, err = tm.mem.Read8(0x301)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 5)
	v, err = tm.mem.Read8(0x302)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 4)
}

func TestStoreLoadRegisters(t *testing.T) {
	tm := newTestMachine(t)
	tm.mc.I = 0x300
	for i := 0; i <= 0x5; i++ {
		tm.mc.V[i] = uint8(0x10 + i)
	}
	tm.mc.V[0x6] = 0xee

	tm.step(t, 0xf555) // LD [I], V5

	// the range is inclusive of V5, exclusive of V6
	v, err := tm.mem.Read8(0x305)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x15)
	v, err = tm.mem.Read8(0x306)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)

	for i := 0; i <= 0x6; i++ {
		tm.mc.V[i] = 0
	}

	tm.step(t, 0xf565) // LD V5, [I]
	test.Equate(t, tm.mc.V[0x0], 0x10)
	test.Equate(t, tm.mc.V[0x5], 0x15)
	test.Equate(t, tm.mc.V[0x6], 0x00)

	// the index register is not disturbed by either instruction
	test.Equate(t, tm.mc.I, 0x300)
}

func TestCls(t *testing.T) {
	tm := newTestMachine(t)

	err := tm.dsp.SetPixel(10, 10, true)
	test.ExpectedSuccess(t, err)

	tm.step(t, 0x00e0)
	test.Equate(t, tm.pixel(t, 10, 10), false)
}
