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
	"github.com/kehitt/gopher8/gui"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/keypad"
	"github.com/kehitt/gopher8/logger"
)

// keyboardEventHandler processes a single keyboard event. keys that map onto
// the machine keypad are forwarded on both the down and the up event,
// everything else controls the emulation itself.
func (pm *playmode) keyboardEventHandler(ev gui.EventKeyboard) (bool, error) {
	if key, ok := keypad.KeyFromName(ev.Key); ok {
		var err error
		if ev.Down {
			err = pm.vm.Pad.Press(key)
		} else {
			err = pm.vm.Pad.Release(key)
		}
		return true, err
	}

	// emulation controls trigger on the down event only
	if !ev.Down {
		return true, nil
	}

	switch ev.Key {
	case "Space":
		return true, pm.setPause(!pm.paused)

	case "F1":
		pm.setTickRate(hardware.TickRateSlow)
	case "F2":
		pm.setTickRate(hardware.TickRateNormal)
	case "F3":
		pm.setTickRate(hardware.TickRateFast)
	case "F4":
		pm.setTickRate(hardware.TickRateMax)

	case "F11":
		pm.fullScreen = !pm.fullScreen
		return true, pm.scr.ReqFeature(gui.ReqFullScreen, pm.fullScreen)

	case "Escape":
		return false, nil
	}

	return true, nil
}

func (pm *playmode) setPause(paused bool) error {
	pm.paused = paused
	return pm.scr.ReqFeature(gui.ReqSetPause, paused)
}

func (pm *playmode) setTickRate(rate int) {
	pm.vm.SetTickRate(rate)
	logger.Logf("playmode", "tick rate %d ips", rate)

	if err := pm.prefs.tickrate.Set(rate); err != nil {
		logger.Logf("playmode", "%v", err)
	}
}
