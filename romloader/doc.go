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

// Package romloader loads Gigatron ROM images. A ROM image is a flat stream
// of bytes read as sequential pairs of opcode and data. Each pair is one
// ROM word, starting at address zero.
//
// Images can be loaded from the local filesystem or over HTTP:
//
//	ld := romloader.NewLoader("ROMv5a.rom")
//	err := ld.Load()
//	...
//	rom, err := ld.ROM(nil)
package romloader
