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

// Package sdlaudio plays the single tone of the emulated machine through an
// SDL audio device. Frames of samples arrive from the Beeper and are queued
// with the device as they are, SDL handles the actual playback timing.
package sdlaudio

import (
	"encoding/binary"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// if the device queue grows beyond this many bytes the incoming frame is
// dropped rather than queued. when the fps cap is off the machine produces
// audio faster than real time and the queue would otherwise grow without
// limit, with the audible output lagging ever further behind the screen.
const maxQueueBytes = hardware.SampleFreq / 2

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// staging area for converting samples to the byte stream QueueAudio()
	// wants. reused between frames
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     hardware.SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	logger.Logf("sdlaudio", "%dHz, %d channel(s)", aud.spec.Freq, aud.spec.Channels)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	// rather than queueing ever more audio when the emulation is running
	// faster than real time, drop the frame. the next freshly synthesised
	// frame sounds the same in any case
	if sdl.GetQueuedAudioSize(aud.id) > maxQueueBytes {
		return nil
	}

	if cap(aud.buffer) < len(samples)*2 {
		aud.buffer = make([]byte, len(samples)*2)
	}
	aud.buffer = aud.buffer[:len(samples)*2]

	for i, s := range samples {
		binary.LittleEndian.PutUint16(aud.buffer[i*2:], uint16(s))
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
