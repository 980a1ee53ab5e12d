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

// StorageBits is the width of a single word in the packed pixel buffer.
const StorageBits = 32

// Spec describes the dimensions of a display mode. The pixel buffer and the
// decode shader both derive their layout from the same Spec values, so a Spec
// must not change for the lifetime of a Display.
type Spec struct {
	ID     string
	Width  int
	Height int
}

// SpecCHIP8 is the display mode used by the original interpreter. It is the
// only mode currently supported.
var SpecCHIP8 = Spec{
	ID:     "CHIP8",
	Width:  64,
	Height: 32,
}

// GetSpec returns the Spec with the specified id.
func GetSpec(id string) (Spec, bool) {
	switch id {
	case SpecCHIP8.ID:
		return SpecCHIP8, true
	}
	return Spec{}, false
}

// PackedWidth returns the number of words required to store one row of
// pixels.
func (spec Spec) PackedWidth() int {
	return spec.Width / StorageBits
}

// NumWords returns the number of words required to store the entire display.
func (spec Spec) NumWords() int {
	return spec.PackedWidth() * spec.Height
}

// NumBytes returns the size of the packed pixel buffer in bytes. Useful when
// allocating GPU-side storage for the buffer.
func (spec Spec) NumBytes() int {
	return spec.NumWords() * (StorageBits / 8)
}

func (spec Spec) validate() error {
	if spec.Width <= 0 || spec.Height <= 0 || spec.Width%StorageBits != 0 {
		return curated.Errorf(UnsupportedSpec, spec.Width, spec.Height)
	}
	return nil
}
