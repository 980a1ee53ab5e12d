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

	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/test"
)

type mockMixer struct {
	frames [][]int16
	ended  bool
}

func (m *mockMixer) SetAudio(sig []int16) error {
	c := make([]int16, len(sig))
	copy(c, sig)
	m.frames = append(m.frames, c)
	return nil
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestBeeperSilence(t *testing.T) {
	bp := hardware.NewBeeper()
	m := &mockMixer{}
	bp.AddAudioMixer(m)

	err := bp.Frame(false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.frames), 1)
	test.Equate(t, len(m.frames[0]), hardware.SampleFreq/hardware.FrameRate)

	for _, s := range m.frames[0] {
		if s != 0 {
			t.Fatalf("silent frame contains a non-zero sample")
		}
	}
}

func TestBeeperTone(t *testing.T) {
	bp := hardware.NewBeeper()
	m := &mockMixer{}
	bp.AddAudioMixer(m)

	err := bp.Frame(true)
	test.ExpectedSuccess(t, err)

	nonZero := 0
	for _, s := range m.frames[0] {
		if s != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Fatalf("active frame is silent")
	}
}

// the waveform must not restart on every frame. two consecutive active frames
// from one beeper equal the concatenation produced by a beeper that has never
// been interrupted, and a silent frame in between does not reset the phase.
func TestBeeperPhase(t *testing.T) {
	a := hardware.NewBeeper()
	ma := &mockMixer{}
	a.AddAudioMixer(ma)
	test.ExpectedSuccess(t, a.Frame(true))
	test.ExpectedSuccess(t, a.Frame(true))

	b := hardware.NewBeeper()
	mb := &mockMixer{}
	b.AddAudioMixer(mb)
	test.ExpectedSuccess(t, b.Frame(true))
	test.ExpectedSuccess(t, b.Frame(false))
	test.ExpectedSuccess(t, b.Frame(true))

	test.Equate(t, len(ma.frames), 2)
	test.Equate(t, len(mb.frames), 3)

	for i := range ma.frames[1] {
		if ma.frames[1][i] != mb.frames[2][i] {
			t.Fatalf("phase not preserved across a silent frame (sample %d)", i)
		}
	}
}

func TestBeeperEndMixing(t *testing.T) {
	bp := hardware.NewBeeper()
	m := &mockMixer{}
	bp.AddAudioMixer(m)

	err := bp.EndMixing()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.ended, true)
}
