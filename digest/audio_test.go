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

package digest_test

import (
	"testing"

	"github.com/kehitt/gopher8/digest"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/test"
)

func TestAudioDeterminism(t *testing.T) {
	run := func() string {
		bp := hardware.NewBeeper()
		dig := digest.NewAudio(bp)
		for i := 0; i < 10; i++ {
			err := bp.Frame(i%2 == 0)
			test.ExpectedSuccess(t, err)
		}
		return dig.Hash()
	}

	test.Equate(t, run(), run())
}

func TestAudioSensitivity(t *testing.T) {
	run := func(active bool) string {
		bp := hardware.NewBeeper()
		dig := digest.NewAudio(bp)
		err := bp.Frame(true)
		test.ExpectedSuccess(t, err)
		err = bp.Frame(active)
		test.ExpectedSuccess(t, err)
		return dig.Hash()
	}

	if run(true) == run(false) {
		t.Fatalf("audio digest is not sensitive to the sound timer")
	}
}

// the digest must summarise the whole stream, not just the last frame.
func TestAudioChaining(t *testing.T) {
	bp := hardware.NewBeeper()
	dig := digest.NewAudio(bp)

	err := bp.Frame(false)
	test.ExpectedSuccess(t, err)
	h1 := dig.Hash()

	// a second silent frame hashes to a different value because the previous
	// digest is folded in
	err = bp.Frame(false)
	test.ExpectedSuccess(t, err)
	if dig.Hash() == h1 {
		t.Fatalf("digest is not chained across frames")
	}
}
