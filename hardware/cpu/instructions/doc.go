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

// Package instructions decodes and encodes Gigatron opcodes. Every opcode
// is a single byte and packs three fields, most significant bits first:
//
//	bits 7-5	operation
//	bits 4-2	mode (addressing mode, or branch condition for jumps)
//	bits 1-0	bus (source of the ALU operand)
//
// All 256 byte values decode to a valid Instruction. There is no such thing
// as an illegal opcode on the Gigatron.
package instructions
