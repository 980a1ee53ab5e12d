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

// DirtyRange is a half-open interval [Start, End) of word indexes in the
// packed pixel buffer that have been touched since the last successful flush.
type DirtyRange struct {
	Start int
	End   int
}

// Len returns the number of words covered by the range.
func (r DirtyRange) Len() int {
	return r.End - r.Start
}

// dirtyTracker records which words of the packed buffer have been touched.
// Ranges are coalesced only when they are adjacent. Touching the first and
// the last word of the buffer therefore produces two single-word ranges, not
// one range spanning the whole buffer.
type dirtyTracker struct {
	touched []bool
	count   int
}

func newDirtyTracker(numWords int) *dirtyTracker {
	return &dirtyTracker{
		touched: make([]bool, numWords),
	}
}

func (dt *dirtyTracker) mark(word int) {
	if !dt.touched[word] {
		dt.touched[word] = true
		dt.count++
	}
}

func (dt *dirtyTracker) markAll() {
	for i := range dt.touched {
		dt.touched[i] = true
	}
	dt.count = len(dt.touched)
}

// ranges returns the touched words as a sorted list of maximal contiguous
// intervals. The list is empty when nothing has been touched.
func (dt *dirtyTracker) ranges() []DirtyRange {
	if dt.count == 0 {
		return nil
	}

	if dt.count == len(dt.touched) {
		return []DirtyRange{{Start: 0, End: len(dt.touched)}}
	}

	var ranges []DirtyRange
	start := -1
	for i, t := range dt.touched {
		if t {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			ranges = append(ranges, DirtyRange{Start: start, End: i})
			start = -1
		}
	}
	if start != -1 {
		ranges = append(ranges, DirtyRange{Start: start, End: len(dt.touched)})
	}

	return ranges
}

func (dt *dirtyTracker) reset() {
	for i := range dt.touched {
		dt.touched[i] = false
	}
	dt.count = 0
}
