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

// Package modalflag wraps the flag package from the standard library. It
// adds the concept of modes to the command line, where a mode is a keyword
// that changes the set of flags and arguments that are expected.
//
// Arguments are specified once with NewArgs() and then parsed layer by
// layer. Each layer has its own flags and an optional list of sub-modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		display := md.AddBool("display", false, "open display window")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the next
// argument is not a recognised sub-mode. Sub-mode comparisons are case
// insensitive.
//
// Help is printed automatically when the -help or -h flag is found. The help
// lists the flags and sub-modes of the current layer.
package modalflag
