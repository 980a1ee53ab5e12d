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

	"github.com/kehitt/gopher8/hardware"
)

// Audio is an implementation of the hardware.AudioMixer interface with an
// embedded sha1 hash.
//
// Like the Video type, the hash is chained. The previous digest value is
// stuffed into the head of the buffer before the new frame of samples is
// hashed, so the final value summarises the whole stream.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// returned Audio instance is already registered with the beeper.
func NewAudio(bp *hardware.Beeper) *Audio {
	dig := &Audio{}
	bp.AddAudioMixer(dig)
	return dig
}

// Hash implements the Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetAudio implements the hardware.AudioMixer interface.
func (dig *Audio) SetAudio(sig []int16) error {
	l := sha1.Size + len(sig)*2
	if len(dig.buffer) != l {
		dig.buffer = make([]byte, l)
	}

	copy(dig.buffer, dig.digest[:])
	for i, s := range sig {
		binary.BigEndian.PutUint16(dig.buffer[sha1.Size+i*2:], uint16(s))
	}

	dig.digest = sha1.Sum(dig.buffer)

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
