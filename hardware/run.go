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

import "time"

const frameDur = time.Second / FrameRate

// Run the machine until continueCheck returns false or an error occurs.
// continueCheck is called once per loop iteration, which with the FPS cap in
// place is at least once per tick. A nil continueCheck runs the machine
// forever.
//
// With the FPS cap enabled the loop performs no catch up: a delayed wake
// executes a single tick, so a stall in the host stretches emulated time
// rather than producing a burst of instructions.
func (vm *CHIP8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	lastTick := time.Now()
	lastFrame := time.Now()
	accumulator := 0

	for {
		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		if !vm.fpsCap {
			accumulator += vm.tickrate
			for accumulator >= FrameRate {
				if err := vm.Tick(); err != nil {
					return err
				}
				accumulator -= FrameRate
			}
			if err := vm.frame(); err != nil {
				return err
			}
			continue
		}

		// the tick rate can change between iterations so the duration is
		// recalculated every time around
		tickDur := time.Second / time.Duration(vm.tickrate)

		now := time.Now()
		if now.Sub(lastTick) >= tickDur {
			if err := vm.Tick(); err != nil {
				return err
			}
			lastTick = now
		}
		if now.Sub(lastFrame) >= frameDur {
			if err := vm.frame(); err != nil {
				return err
			}
			lastFrame = now
		}

		// sleep until the nearer of the two deadlines
		sleep := tickDur - time.Since(lastTick)
		if f := frameDur - time.Since(lastFrame); f < sleep {
			sleep = f
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

// RunForFrameCount runs the machine for the specified number of frames with
// no reference to wall clock time. Each frame executes the frame's allotment
// of ticks and ends with a flush, so two runs of the same ROM produce
// identical frame sequences. Used by the regression and performance modes.
//
// continueCheck is called before each frame with the current frame number. A
// nil continueCheck is not an error.
func (vm *CHIP8) RunForFrameCount(numFrames int, continueCheck func(frameNum int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	accumulator := 0

	for f := 0; f < numFrames; f++ {
		cont, err := continueCheck(vm.Disp.Frame())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		accumulator += vm.tickrate
		for accumulator >= FrameRate {
			if err := vm.Tick(); err != nil {
				return err
			}
			accumulator -= FrameRate
		}

		if err := vm.frame(); err != nil {
			return err
		}
	}

	return nil
}
