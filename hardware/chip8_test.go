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

package hardware_test

import (
	"testing"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/digest"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/hardware/memory"
	"github.com/kehitt/gopher8/test"
)

func newMachine(t *testing.T, rom []byte) (*hardware.CHIP8, *display.Display) {
	t.Helper()
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)
	vm := hardware.NewCHIP8(dsp)

	cartload := cartridgeloader.NewLoader("test.ch8")
	cartload.Data = rom
	err = vm.AttachCartridge(cartload)
	test.ExpectedSuccess(t, err)

	return vm, dsp
}

// draws the font sprite for zero in the top-left corner and spins
var drawROM = []byte{
	0x60, 0x00, // LD V0, $00
	0x61, 0x00, // LD V1, $00
	0xa0, 0x50, // LD I, $050
	0xd0, 0x15, // DRW V0, V1, $5
	0x12, 0x08, // JP $208
}

func TestRunForFrameCount(t *testing.T) {
	vm, dsp := newMachine(t, drawROM)

	err := vm.RunForFrameCount(10, nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Frame(), 10)

	// the sprite has been plotted by now
	v, err := dsp.GetPixel(0, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, true)
	v, err = dsp.GetPixel(4, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, false)
}

func TestRunContinueCheck(t *testing.T) {
	vm, dsp := newMachine(t, drawROM)

	frames := 0
	err := vm.RunForFrameCount(100, func(frameNum int) (bool, error) {
		frames++
		return frames <= 5, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Frame(), 5)
}

// an uncapped Run() follows the same deterministic schedule as
// RunForFrameCount()
func TestRunUncapped(t *testing.T) {
	vm, dsp := newMachine(t, drawROM)
	vm.SetFPSCap(false)

	frames := 0
	err := vm.Run(func() (bool, error) {
		frames++
		return frames <= 8, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Frame(), 8)
}

// the same ROM with the same random seed must produce the same display
// digest, however often it is run
func TestDeterminism(t *testing.T) {
	rom := []byte{
		0xc0, 0x1f, // RND V0, $1F
		0xc1, 0x0f, // RND V1, $0F
		0xa0, 0x55, // LD I, $055
		0xd0, 0x15, // DRW V0, V1, $5
		0x12, 0x00, // JP $200
	}

	run := func() string {
		dsp, err := display.NewDisplay(display.SpecCHIP8)
		test.ExpectedSuccess(t, err)
		dig, err := digest.NewVideo(dsp)
		test.ExpectedSuccess(t, err)

		vm := hardware.NewCHIP8(dsp)
		vm.CPU.SetRandSeed(42)

		cartload := cartridgeloader.NewLoader("rnd.ch8")
		cartload.Data = rom
		err = vm.AttachCartridge(cartload)
		test.ExpectedSuccess(t, err)

		err = vm.RunForFrameCount(60, nil)
		test.ExpectedSuccess(t, err)

		return dig.Hash()
	}

	test.Equate(t, run(), run())
}

func TestAttachCartridgeTooLarge(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)
	vm := hardware.NewCHIP8(dsp)

	cartload := cartridgeloader.NewLoader("big.ch8")
	cartload.Data = make([]byte, 4000)
	err = vm.AttachCartridge(cartload)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.ROMTooLarge))
}

func TestTickRate(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)
	vm := hardware.NewCHIP8(dsp)

	test.Equate(t, vm.TickRate(), hardware.TickRateNormal)

	vm.SetTickRate(hardware.TickRateMax)
	test.Equate(t, vm.TickRate(), hardware.TickRateMax)

	vm.SetTickRate(0)
	test.Equate(t, vm.TickRate(), hardware.TickRateNormal)
}

// a machine error inside the run loop reaches the caller. the ROM below hits
// an undecodable opcode on its second instruction.
func TestRunError(t *testing.T) {
	vm, _ := newMachine(t, []byte{0x60, 0x00, 0xff, 0xff})

	err := vm.RunForFrameCount(10, nil)
	test.ExpectedFailure(t, err)
}
