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

// Package memory implements the 4KB address space of the CHIP-8 machine. The
// first 512 bytes are reserved for the interpreter, of which only the font
// sprites are populated. ROM data is loaded at OriginROM and runs to the top
// of memory.
package memory

import "github.com/kehitt/gopher8/curated"

// Sentinal errors returned by the memory package.
const (
	AddressError = "memory: address out of range (%#04x)"
	ROMTooLarge  = "memory: ROM too large (%d bytes, %d available)"
)

// MemorySize is the extent of the CHIP-8 address space.
const MemorySize = 4096

// Memory map origins.
const (
	OriginFont uint16 = 0x050
	OriginROM  uint16 = 0x200
)

// FontSpriteSize is the height in bytes of a single hexadecimal font sprite.
const FontSpriteSize = 5

// Memory is the 4KB address space of the CHIP-8 machine.
type Memory struct {
	ram [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font sprites are in place on return.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset the memory to its initial state. Only the font region is populated
// afterwards, ROM data must be loaded again.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], fontset[:])
}

// LoadROM copies ROM data into memory starting at OriginROM.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) > MemorySize-int(OriginROM) {
		return curated.Errorf(ROMTooLarge, len(data), MemorySize-int(OriginROM))
	}
	copy(mem.ram[OriginROM:], data)
	return nil
}

// Read8 returns the byte at the specified address.
func (mem *Memory) Read8(address uint16) (uint8, error) {
	if address >= MemorySize {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.ram[address], nil
}

// Read16 returns the big-endian word at the specified address. Instructions
// are stored most significant byte first.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if int(address)+1 >= MemorySize {
		return 0, curated.Errorf(AddressError, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}

// Write8 stores a byte at the specified address.
func (mem *Memory) Write8(address uint16, value uint8) error {
	if address >= MemorySize {
		return curated.Errorf(AddressError, address)
	}
	mem.ram[address] = value
	return nil
}

// FontAddress returns the address of the font sprite for the specified
// digit. Values above 0xf address past the font region, which is what the
// original interpreter did, so no error is raised.
func (mem *Memory) FontAddress(digit uint8) uint16 {
	return OriginFont + uint16(digit)*FontSpriteSize
}
