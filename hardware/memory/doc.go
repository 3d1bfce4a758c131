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

// Package memory implements the ROM and RAM of the Gigatron.
//
// ROM is 64K of 16bit words, each word being an opcode and a data byte. The
// program counter indexes ROM directly.
//
// RAM is 32K bytes. Any 16bit address used to access RAM is masked to the low
// 15 bits.
package memory
