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

// Package prefs facilitates the storage of preference values to disk.
//
// Preferences are typed live values (Bool, String, Int, Float and the
// catch-all Generic) that parts of the emulation hold on to and read
// directly. A Disk instance binds a set of those values to keys in a file,
//
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("play.scale", &scale)
//	dsk.Load(false)
//
// and writes them back with Save(). The file format is deliberately dumb, one
// "key :: value" line per preference underneath an identifying header line.
// Different Disk instances can look after different keys in the same file.
//
// Values supplied on the command line can temporarily shadow saved values.
// See PushCommandLineStack().
package prefs
