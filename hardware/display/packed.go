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

import "github.com/kehitt/gopher8/curated"

// Sentinal errors returned by the pixel addressing functions.
const (
	OutOfBounds     = "display: pixel out of bounds (%d, %d)"
	UnsupportedSpec = "display: unsupported specification (%dx%d)"
)

// PackedBuffer stores the display as one bit per pixel, packed into words of
// StorageBits bits. The packing order is the contract with the decode shader:
// both sides must locate a pixel with
//
//	chunk = x / StorageBits
//	word  = y * PackedWidth + chunk
//	bit   = StorageBits * (chunk + 1) - x - 1
//
// so that the most significant bit of each word is the leftmost pixel covered
// by that word. Any change to this layout must be made in the shader at the
// same time.
type PackedBuffer struct {
	spec  Spec
	words []uint32
	dirty *dirtyTracker
}

// NewPackedBuffer is the preferred method of initialisation for the
// PackedBuffer type.
func NewPackedBuffer(spec Spec) (*PackedBuffer, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &PackedBuffer{
		spec:  spec,
		words: make([]uint32, spec.NumWords()),
		dirty: newDirtyTracker(spec.NumWords()),
	}, nil
}

// Spec returns the specification the buffer was created with.
func (pb *PackedBuffer) Spec() Spec {
	return pb.spec
}

// Words returns the backing store of the buffer. The slice must be treated as
// read-only. Mutation through SetPixel() and Clear() keeps the dirty word
// accounting correct, direct writes do not.
func (pb *PackedBuffer) Words() []uint32 {
	return pb.words
}

// bucket converts pixel coordinates to a word index and a bit position inside
// that word.
func (pb *PackedBuffer) bucket(x int, y int) (int, int, error) {
	if x < 0 || x >= pb.spec.Width || y < 0 || y >= pb.spec.Height {
		return 0, 0, curated.Errorf(OutOfBounds, x, y)
	}
	chunk := x / StorageBits
	word := y*pb.spec.PackedWidth() + chunk
	bit := StorageBits*(chunk+1) - x - 1
	return word, bit, nil
}

// SetPixel sets or resets the pixel at the specified coordinates. The word
// containing the pixel is marked dirty even when the stored value does not
// change. Coordinates outside the display return an error, wrapping is the
// responsibility of the caller.
func (pb *PackedBuffer) SetPixel(x int, y int, v bool) error {
	word, bit, err := pb.bucket(x, y)
	if err != nil {
		return err
	}
	mask := uint32(1) << bit
	if v {
		pb.words[word] |= mask
	} else {
		pb.words[word] &^= mask
	}
	pb.dirty.mark(word)
	return nil
}

// GetPixel returns the state of the pixel at the specified coordinates.
func (pb *PackedBuffer) GetPixel(x int, y int) (bool, error) {
	word, bit, err := pb.bucket(x, y)
	if err != nil {
		return false, err
	}
	return pb.words[word]&(uint32(1)<<bit) != 0, nil
}

// Clear resets every pixel in the buffer. Every word is marked dirty so that
// the cleared state reaches the renderers on the next flush.
func (pb *PackedBuffer) Clear() {
	for i := range pb.words {
		pb.words[i] = 0
	}
	pb.dirty.markAll()
}
