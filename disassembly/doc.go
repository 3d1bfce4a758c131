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

// Package disassembly produces the assembly language form of a Gigatron ROM.
//
// Every ROM word is a complete instruction so, unlike processors with
// variable length instructions, there is no need to follow the flow of the
// program. Each word is disassembled in isolation.
//
// A symbols table can be supplied, in which case labels are written before
// the instruction they mark and data bytes are replaced by their
// placeholders where they exist.
//
// For quick disassemblies the FromLoader() function can be used. Debuggers
// will probably find it more useful however, to disassemble from the ROM of
// an already instantiated Gigatron with FromROM().
package disassembly
