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

// Package registers defines the register file of the Gigatron CPU.
package registers

import "fmt"

// File is the complete register file of the Gigatron CPU.
type File struct {
	// program counter. indexes ROM directly
	PC uint16

	// instruction register and data register. these hold the ROM word
	// fetched during the previous cycle and which is executed during the
	// current cycle
	IR uint8
	D  uint8

	AC  uint8
	X   uint8
	Y   uint8
	OUT uint8

	// value of the undriven data bus. refreshed every cycle and never part
	// of register equality
	Undef uint8
}

// Equal compares two register files. The Undef field is ignored.
func (r File) Equal(o File) bool {
	r.Undef = 0
	o.Undef = 0
	return r == o
}

func (r File) String() string {
	return fmt.Sprintf("PC=%04x IR=%02x D=%02x AC=%02x X=%02x Y=%02x OUT=%02x",
		r.PC, r.IR, r.D, r.AC, r.X, r.Y, r.OUT)
}
