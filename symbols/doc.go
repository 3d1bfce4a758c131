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

// Package symbols loads the symbols file produced by the Gigatron assembler.
//
// The file is line based. Each line is a record and the first field of a
// record indicates its type:
//
//	z <address> <length> <name>   zero page variable
//	l <address> <name>            label
//	p <address> <tokens...>       placeholder for the data byte of a ROM word
//
// Numbers can be written in any form accepted by Go's strconv package. A
// placeholder is a prefix expression made up of the operators hi, lo, add and
// zp. Any other token is a literal.
//
// Malformed records are logged and skipped.
package symbols
