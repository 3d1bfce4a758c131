// This file is part of Gotron.
//
// Gotron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotron.  If not, see <https://www.gnu.org/licenses/>.

package memory

// Memory bundles the ROM and RAM of the Gigatron. The CPU is the only user
// that can change RAM during emulation. Peek and Poke are for debuggers.
type Memory struct {
	ROM *ROM
	RAM *RAM
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The ROM will be empty until one is attached with AttachROM().
func NewMemory() *Memory {
	rom, _ := NewROM(nil, nil)
	return &Memory{
		ROM: rom,
		RAM: NewRAM(),
	}
}

// AttachROM replaces the current ROM.
func (mem *Memory) AttachROM(rom *ROM) {
	mem.ROM = rom
}

// Snapshot creates a copy of Memory. ROM is shared between the copies.
func (mem *Memory) Snapshot() *Memory {
	return &Memory{
		ROM: mem.ROM,
		RAM: mem.RAM.Snapshot(),
	}
}

// Peek returns the value at the RAM address.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.RAM.Read(address)
}

// Poke sets the value at the RAM address.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.RAM.Write(address, data)
}
