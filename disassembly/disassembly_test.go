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

package disassembly_test

import (
	"testing"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/disassembly"
	"github.com/kehitt/gopher8/test"
)

// a program with a data word that the flow pass should step around. the jump
// at $202 skips the $ffff word and the skip instruction at $206 has two
// possible successors.
var flowROM = []byte{
	0x60, 0x05, // $200 LD V0, $05
	0x12, 0x06, // $202 JP $206
	0xff, 0xff, // $204 data
	0x30, 0x05, // $206 SE V0, $05
	0x12, 0x08, // $208 JP $208
	0x00, 0x00, // $20a NOP
}

func newDisasm(t *testing.T, rom []byte) *disassembly.Disassembly {
	t.Helper()

	cartload := cartridgeloader.NewLoader("test.ch8")
	cartload.Data = rom

	dsm, err := disassembly.FromCartridge(cartload)
	if !test.ExpectedSuccess(t, err) {
		t.FailNow()
	}

	return dsm
}

func TestFlow(t *testing.T) {
	dsm := newDisasm(t, flowROM)

	tw := &test.Writer{}
	err := dsm.Write(tw, disassembly.WriteAttr{})
	test.ExpectedSuccess(t, err)

	expected := "$200  LD V0, $05\n" +
		"$202  JP $206\n" +
		"$204  ??\n" +
		"$206  SE V0, $05\n" +
		"$208  JP $208\n" +
		"$20A  NOP\n"
	test.Equate(t, tw.String(), expected)
}

func TestReachableOnly(t *testing.T) {
	dsm := newDisasm(t, flowROM)

	// the data word is skipped over by the jump at $202 so it should not
	// appear in reachable output
	tw := &test.Writer{}
	err := dsm.Write(tw, disassembly.WriteAttr{ReachableOnly: true})
	test.ExpectedSuccess(t, err)

	expected := "$200  LD V0, $05\n" +
		"$202  JP $206\n" +
		"$206  SE V0, $05\n" +
		"$208  JP $208\n" +
		"$20A  NOP\n"
	test.Equate(t, tw.String(), expected)
}

func TestByteCode(t *testing.T) {
	dsm := newDisasm(t, flowROM)

	tw := &test.Writer{}
	err := dsm.Write(tw, disassembly.WriteAttr{ByteCode: true, ReachableOnly: true})
	test.ExpectedSuccess(t, err)

	expected := "$200  60 05  LD V0, $05\n" +
		"$202  12 06  JP $206\n" +
		"$206  30 05  SE V0, $05\n" +
		"$208  12 08  JP $208\n" +
		"$20A  00 00  NOP\n"
	test.Equate(t, tw.String(), expected)
}

func TestUnalignedTarget(t *testing.T) {
	// the jump at $200 lands between the conventional instruction boundaries.
	// the entry at $203 should be written, the unreachable odd entry at $201
	// should not
	rom := []byte{
		0x12, 0x03, // $200 JP $203
		0x60, // $201 (reachable only as part of the jump target)
		0x11, 0x22, // $203 JP $122
	}

	dsm := newDisasm(t, rom)

	tw := &test.Writer{}
	err := dsm.Write(tw, disassembly.WriteAttr{})
	test.ExpectedSuccess(t, err)

	expected := "$200  JP $203\n" +
		"$202  LD V0, $11\n" +
		"$203  JP $122\n"
	test.Equate(t, tw.String(), expected)
}

func TestGrep(t *testing.T) {
	dsm := newDisasm(t, flowROM)

	tw := &test.Writer{}
	err := dsm.Grep(tw, "jp", false)
	test.ExpectedSuccess(t, err)

	expected := "$202  JP $206\n" +
		"$208  JP $208\n"
	test.Equate(t, tw.String(), expected)

	// case sensitive search for the same string matches nothing
	tw.Clear()
	err = dsm.Grep(tw, "jp", true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.String(), "")
}

func TestNothingToDisassemble(t *testing.T) {
	cartload := cartridgeloader.NewLoader("test.ch8")
	cartload.Data = []byte{0x60}

	_, err := disassembly.FromCartridge(cartload)
	test.ExpectedFailure(t, err)
}
