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

package display_test

import (
	"errors"
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/test"
)

// mockRenderer records the flush traffic it receives. when failing is true
// every call returns an error, standing in for a renderer that has lost its
// device.
type mockRenderer struct {
	spec    display.Spec
	updates [][]display.DirtyRange
	words   []uint32
	frames  []int
	ended   bool
	failing bool
}

func (m *mockRenderer) Resize(spec display.Spec) error {
	m.spec = spec
	m.words = make([]uint32, spec.NumWords())
	return nil
}

func (m *mockRenderer) UpdateWords(words []uint32, ranges []display.DirtyRange) error {
	if m.failing {
		return errors.New("mock renderer has no device")
	}
	cp := make([]display.DirtyRange, len(ranges))
	copy(cp, ranges)
	m.updates = append(m.updates, cp)
	for _, r := range ranges {
		copy(m.words[r.Start:r.End], words[r.Start:r.End])
	}
	return nil
}

func (m *mockRenderer) NewFrame(frameNum int) error {
	if m.failing {
		return errors.New("mock renderer has no device")
	}
	m.frames = append(m.frames, frameNum)
	return nil
}

func (m *mockRenderer) EndRendering() error {
	m.ended = true
	return nil
}

func (m *mockRenderer) lastUpdate() []display.DirtyRange {
	if len(m.updates) == 0 {
		return nil
	}
	return m.updates[len(m.updates)-1]
}

func TestFlushDelivery(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.spec.ID, "CHIP8")

	// a freshly added renderer knows nothing about the buffer so the first
	// flush covers all of it
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.updates), 1)
	test.Equate(t, len(m.lastUpdate()), 1)
	test.Equate(t, m.lastUpdate()[0].Start, 0)
	test.Equate(t, m.lastUpdate()[0].End, 64)
	test.Equate(t, len(m.frames), 1)
	test.Equate(t, m.frames[0], 1)

	// a clean frame transfers nothing but is still announced
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.updates), 1)
	test.Equate(t, len(m.frames), 2)

	// a single pixel transfers a single word
	err = dsp.SetPixel(10, 5, true)
	test.ExpectedSuccess(t, err)
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.updates), 2)
	test.Equate(t, len(m.lastUpdate()), 1)
	test.Equate(t, m.lastUpdate()[0].Start, 10)
	test.Equate(t, m.lastUpdate()[0].End, 11)
	test.Equate(t, m.words[10], 0x00200000)
}

// touching two words at opposite ends of the buffer must transfer exactly
// those two words. the untouched span between them stays home.
func TestFlushMinimality(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)

	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	err = dsp.SetPixel(0, 0, true)
	test.ExpectedSuccess(t, err)
	err = dsp.SetPixel(63, 31, true)
	test.ExpectedSuccess(t, err)

	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	ranges := m.lastUpdate()
	test.Equate(t, len(ranges), 2)
	test.Equate(t, ranges[0].Start, 0)
	test.Equate(t, ranges[0].End, 1)
	test.Equate(t, ranges[1].Start, 63)
	test.Equate(t, ranges[1].End, 64)

	// adjacent words coalesce into one range, a gap starts another
	err = dsp.SetPixel(0, 0, false)
	test.ExpectedSuccess(t, err)
	err = dsp.SetPixel(32, 0, true)
	test.ExpectedSuccess(t, err)
	err = dsp.SetPixel(0, 2, true)
	test.ExpectedSuccess(t, err)

	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	ranges = m.lastUpdate()
	test.Equate(t, len(ranges), 2)
	test.Equate(t, ranges[0].Start, 0)
	test.Equate(t, ranges[0].End, 2)
	test.Equate(t, ranges[1].Start, 4)
	test.Equate(t, ranges[1].End, 5)
}

// a failed flush must not lose updates. the next flush presents the union of
// the failed ranges and anything touched since.
func TestFlushRetry(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	err = dsp.SetPixel(0, 0, true)
	test.ExpectedSuccess(t, err)

	m.failing = true
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.updates), 1)

	err = dsp.SetPixel(32, 0, true)
	test.ExpectedSuccess(t, err)

	m.failing = false
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	ranges := m.lastUpdate()
	test.Equate(t, len(ranges), 1)
	test.Equate(t, ranges[0].Start, 0)
	test.Equate(t, ranges[0].End, 2)
	test.Equate(t, m.words[0], 0x80000000)
	test.Equate(t, m.words[1], 0x80000000)

	// the retry succeeded so the accounting is clean and the next flush
	// transfers nothing
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.updates), 2)
}

func TestFlushFailureLimit(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{failing: true}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)

	dsp.SetFlushFailureLimit(3)

	err = dsp.Flush()
	test.ExpectedSuccess(t, err)
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	err = dsp.Flush()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, display.FlushFailure))

	// a renderer recovering before the limit resets the count
	dsp2, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)
	m2 := &mockRenderer{failing: true}
	err = dsp2.AddRenderer(m2)
	test.ExpectedSuccess(t, err)
	dsp2.SetFlushFailureLimit(3)

	err = dsp2.Flush()
	test.ExpectedSuccess(t, err)
	err = dsp2.Flush()
	test.ExpectedSuccess(t, err)
	m2.failing = false
	err = dsp2.Flush()
	test.ExpectedSuccess(t, err)
	m2.failing = true
	err = dsp2.Flush()
	test.ExpectedSuccess(t, err)
}

func TestForceFullUpload(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	// nothing is dirty but a full upload was demanded
	dsp.ForceFullUpload()
	err = dsp.Flush()
	test.ExpectedSuccess(t, err)

	ranges := m.lastUpdate()
	test.Equate(t, len(ranges), 1)
	test.Equate(t, ranges[0].Start, 0)
	test.Equate(t, ranges[0].End, 64)
}

func TestDisplayEnd(t *testing.T) {
	dsp, err := display.NewDisplay(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	m := &mockRenderer{}
	err = dsp.AddRenderer(m)
	test.ExpectedSuccess(t, err)

	err = dsp.End()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.ended, true)
}
