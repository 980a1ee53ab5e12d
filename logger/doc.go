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

// Package logger is the central logging facility for Gopher8. Log entries are
// added with the Log() and Logf() functions; the first argument is a short
// tag naming the subsystem making the entry ("sdl", "display", "chip8") and
// the second is the detail of what happened.
//
// Entries accumulate in memory and are retrieved with Write(), Tail() or
// BorrowLog(). The SetEcho() function arranges for new entries to be copied
// to an io.Writer the moment they arrive, which is how the -log flag of the
// command line modes is implemented.
//
// Identical consecutive entries are compressed into a single entry with a
// repeat count rather than being allowed to fill the log.
package logger
