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

// RAMSize is the number of bytes in RAM.
const RAMSize = 0x8000

// RAMMask is applied to all addresses used to access RAM.
const RAMMask = RAMSize - 1

// RAM is the read/write memory of the Gigatron.
type RAM struct {
	data [RAMSize]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Snapshot creates a copy of RAM.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	return &n
}

// Read a byte from RAM. The address is masked.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address&RAMMask]
}

// Write a byte to RAM, returning the previous value. The address is masked.
func (ram *RAM) Write(address uint16, data uint8) uint8 {
	address &= RAMMask
	prev := ram.data[address]
	ram.data[address] = data
	return prev
}

// Clear sets every byte of RAM to zero.
func (ram *RAM) Clear() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

// Randomise fills RAM with values from the supplied function.
func (ram *RAM) Randomise(fill func([]uint8)) {
	fill(ram.data[:])
}
