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

// Package playmode is the "just play the game" mode of the emulator. It
// connects a running machine to a GUI and translates user input into keypad
// presses and emulation control.
package playmode

import (
	"os"
	"os/signal"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/gui"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/logger"
)

// the shared state of a playmode session. the event handlers in this package
// are all methods on this type.
type playmode struct {
	vm    *hardware.CHIP8
	scr   gui.GUI
	prefs *preferences

	paused     bool
	fullScreen bool
}

// Play sets the emulation running in playmode.
//
// A tickrate of zero and fpscapExplicit of false leave the saved preferences
// in charge of the corresponding machine settings.
func Play(vm *hardware.CHIP8, scr gui.GUI, cartload cartridgeloader.Loader,
	tickrate int, fpscap bool, fpscapExplicit bool) error {
	pm := &playmode{
		vm:  vm,
		scr: scr,
	}

	var err error

	pm.prefs, err = newPreferences()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// command line arguments supersede (and update) the saved preferences
	if tickrate > 0 {
		err = pm.prefs.tickrate.Set(tickrate)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}
	if fpscapExplicit {
		err = pm.prefs.fpscap.Set(fpscap)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	vm.SetTickRate(pm.prefs.tickrate.Get().(int))
	vm.SetFPSCap(pm.prefs.fpscap.Get().(bool))

	err = vm.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	// connect gui. a buffer of two is enough to decouple the event loop from
	// the emulation without letting key events grow stale
	guiChannel := make(chan gui.Event, 2)
	err = scr.ReqFeature(gui.ReqSetEventChan, guiChannel)
	if err != nil {
		return err
	}

	err = scr.ReqFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	// ctrl-c ends the session cleanly. the fallback handler in the main
	// package has been turned off by this point
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	logger.Logf("playmode", "running %s", cartload.ShortName())

	err = vm.Run(func() (bool, error) {
		for {
			select {
			case <-intChan:
				return false, nil
			case ev := <-guiChannel:
				cont, err := pm.guiEventHandler(ev)
				if !cont || err != nil {
					return cont, err
				}
			default:
				// while paused, block on the channels above rather than spin
				if pm.paused {
					select {
					case <-intChan:
						return false, nil
					case ev := <-guiChannel:
						cont, err := pm.guiEventHandler(ev)
						if !cont || err != nil {
							return cont, err
						}
					}
					continue
				}
				return true, nil
			}
		}
	})
	if err != nil {
		return err
	}

	return pm.prefs.save()
}

// guiEventHandler dispatches a single event received over the gui event
// channel. the bool return value is false when the session should end.
func (pm *playmode) guiEventHandler(ev gui.Event) (bool, error) {
	switch ev := ev.(type) {
	case gui.EventWindowClose:
		return false, nil
	case gui.EventKeyboard:
		return pm.keyboardEventHandler(ev)
	case gui.EventDropFile:
		return pm.dropFileHandler(ev)
	}

	return true, nil
}

// a file dropped onto the window is attached as a new cartridge. the machine
// is reset as part of the attachment.
func (pm *playmode) dropFileHandler(ev gui.EventDropFile) (bool, error) {
	cartload := cartridgeloader.NewLoader(ev.Filename)

	err := pm.vm.AttachCartridge(cartload)
	if err != nil {
		// an unloadable file should not end the session. the previously
		// attached cartridge is untouched
		logger.Logf("playmode", "%v", err)
		return true, nil
	}

	logger.Logf("playmode", "attached %s", cartload.ShortName())

	if pm.paused {
		return true, pm.setPause(false)
	}

	return true, nil
}
