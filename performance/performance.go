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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/display"
)

// the amount of time given to the machine before measurement starts
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration, after a short leadtime, and
// will create a CPU and memory profile if the profile argument is true.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, tickrate int, uncapped bool, duration string) error {
	var err error

	disp, err := display.NewDisplay(display.SpecCHIP8)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer disp.End()

	vm := hardware.NewCHIP8(disp)
	vm.SetTickRate(tickrate)
	vm.SetFPSCap(!uncapped)
	defer vm.End()

	err = vm.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// starting frame number is recorded when the leadtime concludes
	startFrame := disp.Frame()

	runner := func() error {
		// the timer channel carries two signals. false indicates that the
		// leadtime has concluded and measurement should start. true indicates
		// that the measurement period has finished
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		return vm.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, nil
				}
				startFrame = disp.Frame()
			default:
			}
			return true, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
		if err == nil {
			err = ProfileMem("performance.mem.profile")
		}
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := disp.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
