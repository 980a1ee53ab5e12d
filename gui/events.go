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

package gui

// Events are the things that happen in the gui as a result of user
// interaction. They are sent over the event channel registered with the
// ReqSetEventChan feature request.

// Event represents all the different kinds of event that can occur in the
// gui.
type Event interface{}

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventWindowClose is sent when the user closes the gui window.
type EventWindowClose struct{}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

// EventDropFile is sent when a file is dropped onto the gui window.
type EventDropFile struct {
	Filename string
}
