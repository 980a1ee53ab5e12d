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

// Package disassembly coordinates the disassembly of CHIP-8 ROMs.
//
// For quick disassemblies the FromCartridge() function can be used.
// Debuggers will probably find it more useful to disassemble from the memory
// of an already instantiated machine, with FromMemory().
//
// Two passes are made over the ROM. The first decodes an instruction at
// every conventionally aligned address. The second walks the static flow of
// the program from the reset address, through jumps, calls and skips,
// marking every entry it can reach. Sprite data is thereby distinguished
// from code, subject to the usual caveats: computed jumps (JP V0, addr)
// cannot be followed and self modified code is invisible.
package disassembly
