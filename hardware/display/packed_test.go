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
	"math/rand"
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/test"
)

func TestSpecDimensions(t *testing.T) {
	spec := display.SpecCHIP8
	test.Equate(t, spec.Width, 64)
	test.Equate(t, spec.Height, 32)
	test.Equate(t, spec.PackedWidth(), 2)
	test.Equate(t, spec.NumWords(), 64)
	test.Equate(t, spec.NumBytes(), 256)
}

func TestSpecValidation(t *testing.T) {
	_, err := display.NewPackedBuffer(display.Spec{ID: "bad", Width: 48, Height: 32})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, display.UnsupportedSpec))

	_, err = display.NewPackedBuffer(display.Spec{ID: "bad", Width: 64, Height: 0})
	test.ExpectedFailure(t, err)
}

// the packing layout is a contract with the decode shader. these values must
// never change without a matching change on the GPU side.
func TestPackedLayout(t *testing.T) {
	pb, err := display.NewPackedBuffer(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	// leftmost pixel of the first row lands in the most significant bit of
	// the first word
	err = pb.SetPixel(0, 0, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pb.Words()[0], 0x80000000)

	// last pixel of the first chunk lands in the least significant bit of the
	// same word
	err = pb.SetPixel(31, 0, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pb.Words()[0], 0x80000001)

	// first pixel of the second chunk starts a new word
	err = pb.SetPixel(32, 0, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pb.Words()[1], 0x80000000)

	// bottom-right pixel is the least significant bit of the last word
	err = pb.SetPixel(63, 31, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pb.Words()[63], 0x00000001)

	// resetting a pixel clears only its own bit
	err = pb.SetPixel(0, 0, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pb.Words()[0], 0x00000001)
}

func TestPackedBounds(t *testing.T) {
	pb, err := display.NewPackedBuffer(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	for _, c := range [][2]int{{-1, 0}, {64, 0}, {0, -1}, {0, 32}, {200, 200}} {
		err := pb.SetPixel(c[0], c[1], true)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, display.OutOfBounds))

		_, err = pb.GetPixel(c[0], c[1])
		test.ExpectedFailure(t, err)
	}

	// nothing was disturbed by the failed accesses
	for _, w := range pb.Words() {
		test.Equate(t, w, 0)
	}
}

// setting an arbitrary collection of pixels and reading every coordinate back
// must reproduce exactly the set membership. repeating with the pixels reset
// must leave the buffer empty.
func TestPackedBijection(t *testing.T) {
	pb, err := display.NewPackedBuffer(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	rnd := rand.New(rand.NewSource(1))

	coords := make(map[[2]int]bool)
	for i := 0; i < 500; i++ {
		coords[[2]int{rnd.Intn(64), rnd.Intn(32)}] = true
	}

	for c := range coords {
		err := pb.SetPixel(c[0], c[1], true)
		test.ExpectedSuccess(t, err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			v, err := pb.GetPixel(x, y)
			test.ExpectedSuccess(t, err)
			test.Equate(t, v, coords[[2]int{x, y}])
		}
	}

	for c := range coords {
		err := pb.SetPixel(c[0], c[1], false)
		test.ExpectedSuccess(t, err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			v, err := pb.GetPixel(x, y)
			test.ExpectedSuccess(t, err)
			test.Equate(t, v, false)
		}
	}
}

// mirror of the addressing arithmetic in the decode fragment shader
// (gui/sdlplay/shaders). kept deliberately independent of the display package
// internals so that a change to either side of the contract shows up as a
// disagreement here.
func shaderSample(words []uint32, uvx float64, uvy float64, width int, height int) bool {
	x := int(uvx * float64(width))
	y := int((1.0 - uvy) * float64(height))
	if x > width-1 {
		x = width - 1
	}
	if y > height-1 {
		y = height - 1
	}
	chunk := x / 32
	word := y*(width/32) + chunk
	bit := uint(32*(chunk+1) - x - 1)
	return (words[word]>>bit)&1 == 1
}

func TestAddressingSymmetry(t *testing.T) {
	pb, err := display.NewPackedBuffer(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 700; i++ {
		err := pb.SetPixel(rnd.Intn(64), rnd.Intn(32), rnd.Intn(2) == 0)
		test.ExpectedSuccess(t, err)
	}

	spec := pb.Spec()

	// sample the centre of every screen pixel the way the rasteriser would.
	// screen row zero is the top of the display but GL texture coordinates
	// grow upwards, hence the flip when deriving uvy.
	for sy := 0; sy < spec.Height; sy++ {
		for sx := 0; sx < spec.Width; sx++ {
			uvx := (float64(sx) + 0.5) / float64(spec.Width)
			uvy := (float64(spec.Height-1-sy) + 0.5) / float64(spec.Height)

			decoded := shaderSample(pb.Words(), uvx, uvy, spec.Width, spec.Height)

			stored, err := pb.GetPixel(sx, sy)
			test.ExpectedSuccess(t, err)

			if decoded != stored {
				t.Fatalf("pixel (%d, %d) decodes as %v but is stored as %v", sx, sy, decoded, stored)
			}
		}
	}
}

func TestClear(t *testing.T) {
	pb, err := display.NewPackedBuffer(display.SpecCHIP8)
	test.ExpectedSuccess(t, err)

	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		err := pb.SetPixel(rnd.Intn(64), rnd.Intn(32), true)
		test.ExpectedSuccess(t, err)
	}

	pb.Clear()
	for _, w := range pb.Words() {
		test.Equate(t, w, 0)
	}

	// clearing a clear buffer changes nothing
	pb.Clear()
	for _, w := range pb.Words() {
		test.Equate(t, w, 0)
	}
}
