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

package keypad_test

import (
	"testing"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/hardware/keypad"
	"github.com/kehitt/gopher8/test"
)

func TestKeypad(t *testing.T) {
	pad := keypad.NewKeypad()

	v, err := pad.IsPressed(0xa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, false)

	err = pad.Press(0xa)
	test.ExpectedSuccess(t, err)
	v, err = pad.IsPressed(0xa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, true)

	err = pad.Release(0xa)
	test.ExpectedSuccess(t, err)
	v, err = pad.IsPressed(0xa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, false)

	err = pad.Press(0x10)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, keypad.NoSuchKey))
}

func TestFirstPressed(t *testing.T) {
	pad := keypad.NewKeypad()

	_, ok := pad.FirstPressed()
	test.Equate(t, ok, false)

	err := pad.Press(0xc)
	test.ExpectedSuccess(t, err)
	err = pad.Press(0x3)
	test.ExpectedSuccess(t, err)

	key, ok := pad.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, key, 0x3)

	pad.Reset()
	_, ok = pad.FirstPressed()
	test.Equate(t, ok, false)
}

func TestKeyFromName(t *testing.T) {
	for name, expected := range map[string]int{
		"1": 0x1, "4": 0xc,
		"Q": 0x4, "R": 0xd,
		"A": 0x7, "F": 0xe,
		"Z": 0xa, "X": 0x0, "V": 0xf,
		"q": 0x4, "v": 0xf,
	} {
		key, ok := keypad.KeyFromName(name)
		test.Equate(t, ok, true)
		test.Equate(t, key, expected)
	}

	_, ok := keypad.KeyFromName("F1")
	test.Equate(t, ok, false)
	_, ok = keypad.KeyFromName("Space")
	test.Equate(t, ok, false)
}
