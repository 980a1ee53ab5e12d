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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/database"
	"github.com/kehitt/gopher8/digest"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/display"
)

const digestEntryID = "digest"

const (
	digestFieldCartName int = iota
	digestFieldCartHash
	digestFieldTickRate
	digestFieldNumFrames
	digestFieldSeed
	digestFieldMode
	digestFieldVideoDigest
	digestFieldAudioDigest
	numDigestFields
)

// DigestRegression runs a ROM for NumFrames frames and compares the tail of
// the display and/or audio digest stream against the value taken when the
// entry was added.
type DigestRegression struct {
	Cartridge string
	CartHash  string
	TickRate  int
	NumFrames int
	Seed      int64
	Mode      DigestMode

	videoDigest string
	audioDigest string
}

func deserialiseDigestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, curated.Errorf("regression: digest: wrong number of fields (%d)", len(fields))
	}

	reg := &DigestRegression{
		Cartridge:   fields[digestFieldCartName],
		CartHash:    fields[digestFieldCartHash],
		videoDigest: fields[digestFieldVideoDigest],
		audioDigest: fields[digestFieldAudioDigest],
	}

	var err error

	reg.TickRate, err = strconv.Atoi(fields[digestFieldTickRate])
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid tick rate field (%s)", fields[digestFieldTickRate])
	}

	reg.NumFrames, err = strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid numFrames field (%s)", fields[digestFieldNumFrames])
	}

	reg.Seed, err = strconv.ParseInt(fields[digestFieldSeed], 10, 64)
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid seed field (%s)", fields[digestFieldSeed])
	}

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryID
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	return fmt.Sprintf("[%s] %s frames=%d", reg.Mode, reg.Cartridge, reg.NumFrames)
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Cartridge,
		reg.CartHash,
		strconv.Itoa(reg.TickRate),
		strconv.Itoa(reg.NumFrames),
		strconv.FormatInt(reg.Seed, 10),
		reg.Mode.String(),
		reg.videoDigest,
		reg.audioDigest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

// run the emulation and compare the resulting digests. when newRegression is
// true the digests are stored in the entry instead of compared.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	if reg.NumFrames < 1 {
		return false, curated.Errorf("regression: digest: numFrames must be at least 1")
	}
	if reg.Mode == DigestUndefined {
		return false, curated.Errorf("regression: digest: undefined digest mode")
	}

	dsp, err := display.NewDisplay(display.SpecCHIP8)
	if err != nil {
		return false, curated.Errorf("regression: digest: %v", err)
	}

	var vdig *digest.Video
	if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
		vdig, err = digest.NewVideo(dsp)
		if err != nil {
			return false, curated.Errorf("regression: digest: %v", err)
		}
	}

	vm := hardware.NewCHIP8(dsp)

	var adig *digest.Audio
	if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
		adig = digest.NewAudio(vm.Beeper)
	}

	// the random number generator must be repeatable for the digest to mean
	// anything
	vm.CPU.SetRandSeed(reg.Seed)
	vm.SetTickRate(reg.TickRate)

	cartload := cartridgeloader.NewLoader(reg.Cartridge)
	cartload.Hash = reg.CartHash

	err = vm.AttachCartridge(cartload)
	if err != nil {
		return false, curated.Errorf("regression: digest: %v", err)
	}

	err = vm.RunForFrameCount(reg.NumFrames, func(frameNum int) (bool, error) {
		output.Write([]byte(fmt.Sprintf("\r%s [%d/%d]", message, frameNum, reg.NumFrames)))
		return true, nil
	})
	if err != nil {
		return false, curated.Errorf("regression: digest: %v", err)
	}

	if newRegression {
		reg.CartHash = cartload.Hash
		if vdig != nil {
			reg.videoDigest = vdig.Hash()
		}
		if adig != nil {
			reg.audioDigest = adig.Hash()
		}
		return true, nil
	}

	ok := true
	if vdig != nil {
		ok = ok && vdig.Hash() == reg.videoDigest
	}
	if adig != nil {
		ok = ok && adig.Hash() == reg.audioDigest
	}

	return ok, nil
}
