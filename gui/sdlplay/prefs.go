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

package sdlplay

import (
	"github.com/kehitt/gopher8/paths"
	"github.com/kehitt/gopher8/prefs"
)

// the window defaults to ten times the display resolution, which suits
// modern desktop resolutions well.
const defaultScale = 10

type preferences struct {
	scr *SdlPlay
	dsk *prefs.Disk

	scale prefs.Int
}

// newPreferences is the preferred method of initialisation for the
// preferences type.
func newPreferences(scr *SdlPlay) (*preferences, error) {
	p := &preferences{scr: scr}

	err := p.scale.Set(defaultScale)
	if err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	// Add() puts any previously saved scale value into effect immediately
	err = p.dsk.Add("sdlplay.scale", &p.scale)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
