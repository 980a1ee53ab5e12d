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

package hardware

import (
	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/hardware/cpu"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/hardware/keypad"
	"github.com/kehitt/gopher8/hardware/memory"
)

// Selectable tick rates, in instructions per second.
const (
	TickRateSlow   = 100
	TickRateNormal = 250
	TickRateFast   = 500
	TickRateMax    = 1000
)

// FrameRate is the display update rate in frames per second.
const FrameRate = 60

// CHIP8 is the main container for the emulated components of the machine.
type CHIP8 struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	Pad *keypad.Keypad

	// the display is not part of the machine but is attached to it
	Disp *display.Display

	Beeper *Beeper

	tickrate int
	fpsCap   bool

	// ROM data is kept so that Reset() can restore memory
	romData []byte
}

// NewCHIP8 creates a new machine around the supplied display.
func NewCHIP8(disp *display.Display) *CHIP8 {
	vm := &CHIP8{
		Mem:      memory.NewMemory(),
		Pad:      keypad.NewKeypad(),
		Disp:     disp,
		Beeper:   NewBeeper(),
		tickrate: TickRateNormal,
		fpsCap:   true,
	}
	vm.CPU = cpu.NewCPU(vm.Mem, disp, vm.Pad)

	// make sure the first frame reaches the renderers even if the ROM never
	// draws
	disp.Clear()

	return vm
}

// AttachCartridge to the machine. The ROM is loaded if the loader has not
// loaded it already and the machine is reset.
func (vm *CHIP8) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}
	vm.romData = cartload.Data
	return vm.Reset()
}

// ROMSize returns the size in bytes of the attached cartridge. Zero if no
// cartridge has been attached.
func (vm *CHIP8) ROMSize() int {
	return len(vm.romData)
}

// Reset the machine to its initial state, reloading the attached ROM.
func (vm *CHIP8) Reset() error {
	vm.Mem.Reset()
	if err := vm.Mem.LoadROM(vm.romData); err != nil {
		return err
	}
	vm.CPU.Reset()
	vm.Pad.Reset()
	vm.Disp.Reset()
	return nil
}

// SetTickRate changes the speed of the machine. Values less than one restore
// the default rate.
func (vm *CHIP8) SetTickRate(rate int) {
	if rate < 1 {
		rate = TickRateNormal
	}
	vm.tickrate = rate
}

// TickRate returns the current speed of the machine in instructions per
// second.
func (vm *CHIP8) TickRate() int {
	return vm.tickrate
}

// SetFPSCap controls whether the Run() loop paces the machine to wall clock
// time. With the cap disabled the machine runs the same tick schedule as
// RunForFrameCount(), as fast as the host allows.
func (vm *CHIP8) SetFPSCap(set bool) {
	vm.fpsCap = set
}

// Tick executes a single instruction and steps the timers.
func (vm *CHIP8) Tick() error {
	if err := vm.CPU.ExecuteInstruction(); err != nil {
		return err
	}
	vm.CPU.DecrementTimers()
	return nil
}

// frame pushes the accumulated display changes to the renderers and
// synthesises the frame's audio.
func (vm *CHIP8) frame() error {
	if err := vm.Disp.Flush(); err != nil {
		return err
	}
	return vm.Beeper.Frame(vm.CPU.SoundTimer > 0)
}

// End gently closes the machine's audio mixers. The display is ended by
// whoever created it.
func (vm *CHIP8) End() error {
	return vm.Beeper.EndMixing()
}
