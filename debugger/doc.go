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

// Package debugger implements a reaction layer for the Gigatron emulation.
// It can be used to inspect and control the emulated hardware from a
// command line terminal.
//
// The debugger steps the emulation one cycle at a time. After every cycle
// the inverse of the cycle's effect is recorded, so that the emulation can
// be stepped backwards with the BACK command, and the effect's memory access
// is compared against the list of watches. Breakpoints are checked against
// the address of the instruction about to be executed.
//
// Interaction with the debugger is through an implementation of the
// terminal.Terminal interface. The plainterm and colorterm packages provide
// two such implementations.
//
// The HELP command lists all the available commands.
package debugger
