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

// Package display implements the monochrome display of the CHIP-8 machine.
//
// The display does not present anything itself. It keeps the screen as a bit
// per pixel, packed into 32 bit words, and tracks which words have been
// touched between frames. Implementations of the Renderer interface are added
// with AddRenderer() and receive the touched words at every frame boundary as
// a minimal list of contiguous ranges. A renderer backed by GPU storage can
// feed each range to a single sub-buffer upload and leave the decoding of the
// packed words to a fragment shader; see the gui/sdlplay package for the
// reference implementation of that arrangement.
//
// The interpreter mutates the display through SetPixel(), GetPixel() and
// Clear(). Coordinates are never wrapped or clipped. The DXYN sprite
// instruction wraps coordinates before plotting, so an out of range
// coordinate here indicates a bug in the caller and is returned as an error.
package display
