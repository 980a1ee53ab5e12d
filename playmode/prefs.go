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

package playmode

import (
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/paths"
	"github.com/kehitt/gopher8/prefs"
)

// preferences that survive from one playmode session to the next.
type preferences struct {
	dsk *prefs.Disk

	// instructions per second of the machine
	tickrate prefs.Int

	// whether the emulation is paced to wall clock time
	fpscap prefs.Bool
}

// newPreferences is the preferred method of initialisation for the
// preferences type.
func newPreferences() (*preferences, error) {
	p := &preferences{}

	err := p.tickrate.Set(hardware.TickRateNormal)
	if err != nil {
		return nil, err
	}
	err = p.fpscap.Set(true)
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

	err = p.dsk.Add("hardware.tickrate", &p.tickrate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("play.fpscap", &p.fpscap)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
