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
	"io"
	"runtime"

	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/gui"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"
const windowTitlePaused = "Gopher8 [paused]"

// SdlPlay is an SDL implementation of the display.Renderer interface. The
// packed pixel buffer is uploaded to the GPU exactly as the Display keeps it
// and unpacked by the fragment shader at draw time.
type SdlPlay struct {
	disp *display.Display

	// functions that need to be performed in the main thread should be queued
	// for service
	service    chan func()
	serviceErr chan error

	// ReqFeature() hands off requests to the featureReq channel for servicing
	featureReq chan featureRequest
	featureErr chan error

	// connects the SDL event queue with the parent process. set with the
	// ReqSetEventChan feature request
	events chan gui.Event

	window *sdl.Window
	glctx  sdl.GLContext

	// the opengl half of the renderer. only ever touched in the main thread
	scr *screen

	prefs *preferences

	// by how much each pixel is multiplied when the window is not fullscreen
	scale int

	fullScreen bool
	paused     bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(disp *display.Display) (*SdlPlay, error) {
	scr := &SdlPlay{
		disp:       disp,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	setupService()

	// opengl 3.2 is the minimum version with texture buffer support, which
	// the decode shader relies on
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	// SDL window - window size is set in Resize() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_OPENGL))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.glctx, err = scr.window.GLCreateContext()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = scr.window.GLMakeCurrent(scr.glctx)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the machine paces itself so there is no reason to wait for the
	// vertical retrace when swapping buffers
	_ = sdl.GLSetSwapInterval(0)

	scr.scr, err = newScreen(scr.window)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.prefs, err = newPreferences(scr)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	scr.scale = scr.prefs.scale.Get().(int)

	// register ourselves as a display.Renderer. this has the side effect of
	// calling Resize() with the display specification
	err = disp.AddRenderer(scr)
	if err != nil {
		return nil, err
	}

	// note that we've elected not to show the window on startup. the window
	// is instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.scr.destroy()

	err := scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}

// show or hide window.
func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// use scale of -1 to reapply the existing scale value.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) setWindow(scale int) error {
	if scale > 0 {
		scr.scale = scale
	} else if scale == 0 || scr.scale <= 0 {
		return curated.Errorf("sdlplay: invalid window scale (%d)", scale)
	}

	spec := scr.scr.spec
	scr.window.SetSize(int32(spec.Width*scr.scale), int32(spec.Height*scr.scale))
	scr.scr.setViewport()

	return nil
}

// toggle the full screen state of the window.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) setFullScreen(fullScreen bool) {
	scr.fullScreen = fullScreen
	if fullScreen {
		scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		scr.window.SetFullscreen(0)
	}
	scr.scr.setViewport()
}

// update the window title to reflect the pause state.
func (scr *SdlPlay) setPause(paused bool) {
	scr.paused = paused
	if paused {
		scr.window.SetTitle(windowTitlePaused)
	} else {
		scr.window.SetTitle(windowTitle)
	}
}

// Resize implements the display.Renderer interface.
//
// The one genuine resize happens when the renderer is added to the Display,
// which is during creation and so in the main thread. The display resolution
// never changes after that.
func (scr *SdlPlay) Resize(spec display.Spec) error {
	if scr.scr.initialised {
		if spec == scr.scr.spec {
			return nil
		}
		return curated.Errorf("sdlplay: %v", "cannot change display resolution once set")
	}

	err := scr.scr.resize(spec)
	if err != nil {
		return err
	}

	return scr.setWindow(-1)
}

// UpdateWords implements the display.Renderer interface.
//
// MUST NOT be called from the main thread.
func (scr *SdlPlay) UpdateWords(words []uint32, ranges []display.DirtyRange) error {
	scr.service <- func() {
		scr.serviceErr <- scr.scr.upload(words, ranges)
	}
	return <-scr.serviceErr
}

// NewFrame implements the display.Renderer interface.
//
// MUST NOT be called from the main thread.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	// wait for the error signal before continuing. if we don't then the
	// screen image may tear badly
	scr.service <- func() {
		scr.serviceErr <- scr.scr.draw()
	}
	return <-scr.serviceErr
}

// EndRendering implements the display.Renderer interface.
//
// GL resources are released by Destroy() which must run in the main thread.
func (scr *SdlPlay) EndRendering() error {
	return nil
}
