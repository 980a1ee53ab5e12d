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

package display

import (
	"fmt"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/logger"
)

// FlushFailure is the error returned by Flush() when renderers have failed
// too many times in a row.
const FlushFailure = "display: abandoned after %d consecutive flush failures: %v"

// the number of consecutive flush failures tolerated before Flush() returns
// an error. at sixty frames per second this amounts to one second of lost
// display updates.
const flushFailureLimit = 60

// Display is the VM-facing end of the rendering pipeline. Pixel mutations
// accumulate in the packed buffer, a flush at the frame boundary forwards the
// touched words to every attached Renderer.
type Display struct {
	*PackedBuffer

	renderers []Renderer

	frameNum int

	// a failed flush leaves the dirty accounting untouched so that the next
	// flush presents the same (possibly extended) ranges again
	failures     int
	failureLimit int
	forceFull    bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(spec Spec) (*Display, error) {
	pb, err := NewPackedBuffer(spec)
	if err != nil {
		return nil, err
	}
	return &Display{
		PackedBuffer: pb,
		failureLimit: flushFailureLimit,
	}, nil
}

func (dsp *Display) String() string {
	return fmt.Sprintf("%s (%dx%d) frame=%d", dsp.spec.ID, dsp.spec.Width, dsp.spec.Height, dsp.frameNum)
}

// AddRenderer registers an (additional) implementation of Renderer.
func (dsp *Display) AddRenderer(r Renderer) error {
	if err := r.Resize(dsp.spec); err != nil {
		return err
	}
	dsp.renderers = append(dsp.renderers, r)

	// a new renderer has no knowledge of previous uploads
	dsp.ForceFullUpload()

	return nil
}

// Frame returns the number of frames flushed since creation or the last
// Reset().
func (dsp *Display) Frame() int {
	return dsp.frameNum
}

// SetFlushFailureLimit changes the number of consecutive renderer failures
// tolerated before Flush() gives up. Values less than one restore the
// default.
func (dsp *Display) SetFlushFailureLimit(limit int) {
	if limit < 1 {
		limit = flushFailureLimit
	}
	dsp.failureLimit = limit
}

// ForceFullUpload causes the next flush to present the entire buffer to the
// renderers as a single range, regardless of which words are dirty. Useful
// after a renderer has lost its device-side copy of the buffer.
func (dsp *Display) ForceFullUpload() {
	dsp.forceFull = true
}

// Flush marks the end of a frame. Touched words are forwarded to every
// attached renderer as a minimal list of contiguous ranges, followed by a
// NewFrame() signal.
//
// Delivery is at least once. On renderer failure the dirty accounting is kept
// so the same words are presented again on the next flush, and the frame is
// still counted. Flush returns a FlushFailure error once renderers have
// failed failureLimit times in a row.
func (dsp *Display) Flush() error {
	var ranges []DirtyRange
	if dsp.forceFull {
		ranges = []DirtyRange{{Start: 0, End: dsp.spec.NumWords()}}
	} else {
		ranges = dsp.dirty.ranges()
	}

	dsp.frameNum++

	var failed error
	for _, r := range dsp.renderers {
		if len(ranges) > 0 {
			if err := r.UpdateWords(dsp.words, ranges); err != nil {
				failed = err
				continue
			}
		}
		if err := r.NewFrame(dsp.frameNum); err != nil {
			failed = err
		}
	}

	if failed != nil {
		dsp.failures++
		logger.Logf("display", "flush: %v", failed)
		if dsp.failures >= dsp.failureLimit {
			return curated.Errorf(FlushFailure, dsp.failures, failed)
		}
		return nil
	}

	dsp.failures = 0
	dsp.forceFull = false
	dsp.dirty.reset()

	return nil
}

// Reset clears the buffer and restarts frame and failure accounting. The
// cleared state is presented to the renderers on the next flush.
func (dsp *Display) Reset() {
	dsp.Clear()
	dsp.frameNum = 0
	dsp.failures = 0
}

// End gently closes all attached renderers. The Display should be considered
// unusable after End() has been called.
func (dsp *Display) End() error {
	var rerr error
	for _, r := range dsp.renderers {
		if err := r.EndRendering(); err != nil {
			rerr = err
		}
	}
	return rerr
}
