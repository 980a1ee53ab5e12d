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

// FeatureReq is used to request the setting of a gui attribute, eg. toggling
// fullscreen.
type FeatureReq string

// List of valid feature requests. The arguments must be of the type specified
// or else the interface{} type conversion will fail and an error will be
// returned by ReqFeature().
//
// Note that, like the name suggests, these are requests. They may or may not
// be satisfied depending on other conditions in the GUI.
const (
	// attach the channel over which gui events are to be sent.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// whether the gui window is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// resize the gui window to a multiple of the display resolution.
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// notify the gui that the emulation has been paused or unpaused.
	ReqSetPause FeatureReq = "ReqSetPause" // bool

	// save the gui preferences to disk.
	ReqSavePrefs FeatureReq = "ReqSavePrefs" // no args
)
