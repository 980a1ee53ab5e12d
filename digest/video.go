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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/display"
)

// Video is an implementation of the display.Renderer interface. It maintains
// a SHA-1 value over the display output, updated every frame. It does not
// present the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
//
// The shadow copy of the packed buffer is rebuilt exclusively from the ranges
// received through UpdateWords(). A fault in the dirty word accounting of the
// display package therefore shows up as a diverging hash.
type Video struct {
	spec display.Spec

	digest [sha1.Size]byte

	// the previous frame's digest followed by the packed words of the current
	// frame, each word big-endian
	buffer []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// new instance registers itself as a renderer with the display.
func NewVideo(dsp *display.Display) (*Video, error) {
	dig := &Video{}
	if err := dsp.AddRenderer(dig); err != nil {
		return nil, err
	}
	return dig, nil
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Resize implements the display.Renderer interface.
func (dig *Video) Resize(spec display.Spec) error {
	if dig.buffer != nil && spec != dig.spec {
		return curated.Errorf("digest: video: display specification changed")
	}
	dig.spec = spec
	dig.buffer = make([]byte, sha1.Size+spec.NumBytes())
	return nil
}

// UpdateWords implements the display.Renderer interface.
func (dig *Video) UpdateWords(words []uint32, ranges []display.DirtyRange) error {
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			binary.BigEndian.PutUint32(dig.buffer[sha1.Size+i*4:], words[i])
		}
	}
	return nil
}

// NewFrame implements the display.Renderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements the display.Renderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
