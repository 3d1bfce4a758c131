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

// Package commandline facilitates parsing of command line input. It can be
// used to tokenise user input and it also functions as a tab-completion
// engine, implementing the terminal.TabCompletion interface.
//
// The Tokens type is created with the TokeniseInput() function. The Get()
// function can be used to retrieve the next token in line.
//
//	toks := TokeniseInput("break $0100")
//	cmd, _ := toks.Get()
//	switch strings.ToUpper(cmd) {
//		case "BREAK":
//			addr, _ := toks.Get()
//			...
//	}
//
// Note that hex numbers in the "$" notation are normalised to the "0x"
// notation. This means that the strconv package can be used to convert them.
//
// The TabCompletion type is created with NewTabCompletion(). The map
// argument lists the top-level keywords and, for each keyword, the options
// that can follow it.
package commandline
