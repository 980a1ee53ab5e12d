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

// Package hardware assembles the components of the CHIP-8 machine and paces
// them. The CHIP8 type is the root of the emulation: every mode of the
// emulator, from playback to regression testing, drives the machine through
// CHIP8.Run() or CHIP8.RunForFrameCount().
//
// The display is not strictly part of the machine but the interpreter plots
// onto it directly, so the machine is created around an existing
// display.Display instance. Sound leaves the machine through implementations
// of the AudioMixer interface added to the Beeper.
package hardware
