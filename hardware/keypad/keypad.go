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

// Package keypad implements the sixteen key hexadecimal keypad of the CHIP-8
// machine. The Keypad type is not safe for concurrent use, key events are
// expected to arrive through the event loop of the running emulation mode.
package keypad

import (
	"strings"

	"github.com/kehitt/gopher8/curated"
)

// NoSuchKey is returned when a key value outside the hexadecimal range is
// pressed, released or tested.
const NoSuchKey = "keypad: no such key (%#02x)"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad records the up/down state of the sixteen keys.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press the specified key.
func (pad *Keypad) Press(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	pad.keys[key] = true
	return nil
}

// Release the specified key.
func (pad *Keypad) Release(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	pad.keys[key] = false
	return nil
}

// IsPressed returns the state of the specified key.
func (pad *Keypad) IsPressed(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(NoSuchKey, key)
	}
	return pad.keys[key], nil
}

// FirstPressed returns the lowest numbered key that is currently down. The
// second return value is false when no key is down.
func (pad *Keypad) FirstPressed() (uint8, bool) {
	for i, down := range pad.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (pad *Keypad) Reset() {
	for i := range pad.keys {
		pad.keys[i] = false
	}
}

// KeyFromName maps a physical key name to a keypad value, following the
// usual emulator convention of using the left hand side of a QWERTY
// keyboard:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
//
// The second return value is false when the physical key has no keypad
// mapping.
func KeyFromName(name string) (uint8, bool) {
	key, ok := keymap[strings.ToUpper(name)]
	return key, ok
}

var keymap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}
