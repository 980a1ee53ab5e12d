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
	"github.com/kehitt/gopher8/curated"
	"github.com/kehitt/gopher8/gui/sdlplay/shaders"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/logger"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// vertices for the full-screen decode draw. interleaved position and texture
// coordinates
var quad = []float32{
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
}

// screen is the opengl half of the SdlPlay type. the packed pixel buffer
// lives in a texture buffer object and the decode shader turns it into
// pixels at draw time. there is no cpu side unpacking at all.
//
// every function in this file MUST ONLY be called from the main thread.
type screen struct {
	window *sdl.Window
	spec   display.Spec

	initialised bool

	shader *decodeShader

	vao uint32
	vbo uint32

	// the buffer object holding the packed pixel words and the texture
	// through which the shader reads it
	tbo          uint32
	wordsTexture uint32
}

func newScreen(window *sdl.Window) (*screen, error) {
	err := gl.Init()
	if err != nil {
		return nil, err
	}

	logger.Logf("sdlplay", "using GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &screen{
		window: window,
		shader: &decodeShader{},
	}, nil
}

func (scr *screen) destroy() {
	if scr.wordsTexture != 0 {
		gl.DeleteTextures(1, &scr.wordsTexture)
		scr.wordsTexture = 0
	}
	if scr.tbo != 0 {
		gl.DeleteBuffers(1, &scr.tbo)
		scr.tbo = 0
	}
	if scr.vbo != 0 {
		gl.DeleteBuffers(1, &scr.vbo)
		scr.vbo = 0
	}
	if scr.vao != 0 {
		gl.DeleteVertexArrays(1, &scr.vao)
		scr.vao = 0
	}
	scr.shader.destroy()
}

// resize prepares all gl resources for the given display specification.
func (scr *screen) resize(spec display.Spec) error {
	scr.spec = spec

	scr.shader.createProgram(string(shaders.DecodeVertShader), string(shaders.DecodeFragShader))

	// the decode uniforms never change for the lifetime of the screen
	gl.UseProgram(scr.shader.handle)
	gl.Uniform1i(scr.shader.words, 0)
	gl.Uniform1i(scr.shader.width, int32(spec.Width))
	gl.Uniform1i(scr.shader.height, int32(spec.Height))

	gl.GenVertexArrays(1, &scr.vao)
	gl.BindVertexArray(scr.vao)

	gl.GenBuffers(1, &scr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, scr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(scr.shader.position))
	gl.VertexAttribPointerWithOffset(uint32(scr.shader.position), 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(uint32(scr.shader.texCoord))
	gl.VertexAttribPointerWithOffset(uint32(scr.shader.texCoord), 2, gl.FLOAT, false, 4*4, 2*4)

	// gpu storage for the packed pixel words. the full buffer is allocated up
	// front so that uploads can use BufferSubData() whatever the dirty range
	gl.GenBuffers(1, &scr.tbo)
	gl.BindBuffer(gl.TEXTURE_BUFFER, scr.tbo)
	gl.BufferData(gl.TEXTURE_BUFFER, spec.NumBytes(), gl.Ptr(nil), gl.DYNAMIC_DRAW)

	gl.GenTextures(1, &scr.wordsTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_BUFFER, scr.wordsTexture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.R32UI, scr.tbo)

	if err := scr.glError("resize"); err != nil {
		return err
	}

	scr.initialised = true

	return nil
}

// upload copies the words covered by each dirty range to the gpu. the words
// slice is the full backing store of the packed buffer.
func (scr *screen) upload(words []uint32, ranges []display.DirtyRange) error {
	gl.BindBuffer(gl.TEXTURE_BUFFER, scr.tbo)
	for _, r := range ranges {
		gl.BufferSubData(gl.TEXTURE_BUFFER, r.Start*4, r.Len()*4, gl.Ptr(words[r.Start:r.End]))
	}
	return scr.glError("upload")
}

// draw runs the decode shader over the full window and swaps buffers.
func (scr *screen) draw() error {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(scr.shader.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_BUFFER, scr.wordsTexture)
	gl.BindVertexArray(scr.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	scr.window.GLSwap()

	return scr.glError("draw")
}

// setViewport adjusts the gl viewport to the largest rectangle that fits the
// drawable surface while keeping the aspect ratio of the display.
func (scr *screen) setViewport() {
	if !scr.initialised {
		return
	}

	w, h := scr.window.GLGetDrawableSize()

	vw := w
	vh := w * int32(scr.spec.Height) / int32(scr.spec.Width)
	if vh > h {
		vh = h
		vw = h * int32(scr.spec.Width) / int32(scr.spec.Height)
	}

	gl.Viewport((w-vw)/2, (h-vh)/2, vw, vh)
}

// glError converts the most recent gl error, if any, to a curated error.
func (scr *screen) glError(tag string) error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		return curated.Errorf("sdlplay: %s: gl error (%#04x)", tag, e)
	}
	return nil
}
