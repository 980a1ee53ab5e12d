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

// Package sdlplay implements the GUI interface. Suitable for playing
// emulated games at speed.
//
// The packed pixel buffer maintained by the display package is kept on the
// GPU in a texture buffer object and decoded into pixels by the fragment
// shader. Only the words touched since the last frame cross the bus, the CPU
// never unpacks a pixel.
//
// Window management and GL rendering happen in the main thread. Calls
// arriving from the emulation goroutine, both display.Renderer functions and
// feature requests, are marshalled onto the main thread through channels
// that are serviced by the Service() function.
package sdlplay
