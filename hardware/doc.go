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

// Package hardware is the base package for the Gigatron emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Gigatron type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with an optional callback to check for
// continuation) or it can be stepped cycle by cycle.
//
// Every cycle the CPU is clocked and the value of the OUT register is
// signalled to the television. The StepCallback function gives a
// collaborator (the debugger for example) sight of the effect of each cycle
// and the means to undo it.
package hardware
