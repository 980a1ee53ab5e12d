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

// Renderer implementations present, or otherwise work with, the packed pixel
// buffer maintained by the Display. For example digest.Video.
//
// Renderer implementations often find it convenient to maintain a reference
// to the parent Display.
type Renderer interface {
	// Resize is called once when the renderer is added to a Display. The
	// display resolution is fixed for the lifetime of the Display so a second
	// call with a different Spec is an error.
	Resize(spec Spec) error

	// UpdateWords is called during a flush when at least one word has been
	// touched since the last successful flush. The words slice is the full
	// backing store of the packed buffer, the ranges describe which parts of
	// it are to be consumed. The slice must not be retained after the call
	// returns.
	//
	// A flush that returns an error is retried in full on the next flush. An
	// implementation must therefore tolerate seeing the same range content
	// more than once.
	UpdateWords(words []uint32, ranges []DirtyRange) error

	// NewFrame is called at the end of every flush, whether or not any words
	// were updated.
	NewFrame(frameNum int) error

	// EndRendering is called when the Display is ending. The renderer is
	// unusable afterwards.
	EndRendering() error
}
