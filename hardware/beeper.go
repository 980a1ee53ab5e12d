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

import "math"

// Audio constants. Mixers can rely on receiving SampleFreq/FrameRate mono
// samples per frame.
const (
	SampleFreq = 44100
	BeepFreq   = 440.0
)

// AudioMixer implementations play, or otherwise work with, the sound output
// of the machine. For example the sdlaudio and wavwriter packages.
type AudioMixer interface {
	// SetAudio is called once per frame with the samples for that frame. The
	// slice must not be retained after the call returns.
	SetAudio(samples []int16) error

	// EndMixing is called when the machine is ending. The mixer is unusable
	// afterwards.
	EndMixing() error
}

// Beeper synthesises the single tone of the CHIP-8 machine. While the sound
// timer is running it produces a 440Hz sine at full amplitude, otherwise
// silence. The oscillator phase is carried across consecutive active frames
// so a long beep is one unbroken tone.
type Beeper struct {
	mixers []AudioMixer

	phase   float64
	samples []int16
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper() *Beeper {
	return &Beeper{
		samples: make([]int16, SampleFreq/FrameRate),
	}
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (bp *Beeper) AddAudioMixer(m AudioMixer) {
	bp.mixers = append(bp.mixers, m)
}

// Frame synthesises one frame of audio and hands it to every mixer.
func (bp *Beeper) Frame(active bool) error {
	if active {
		for i := range bp.samples {
			bp.samples[i] = int16(math.Sin(2*math.Pi*bp.phase) * math.MaxInt16)
			bp.phase += BeepFreq / SampleFreq
			if bp.phase >= 1.0 {
				bp.phase -= 1.0
			}
		}
	} else {
		for i := range bp.samples {
			bp.samples[i] = 0
		}
	}

	for _, m := range bp.mixers {
		if err := m.SetAudio(bp.samples); err != nil {
			return err
		}
	}

	return nil
}

// EndMixing gently closes all attached mixers.
func (bp *Beeper) EndMixing() error {
	var rerr error
	for _, m := range bp.mixers {
		if err := m.EndMixing(); err != nil {
			rerr = err
		}
	}
	return rerr
}
