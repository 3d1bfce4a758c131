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

// Package rewind keeps a history of CPU cycles so that the emulation can be
// stepped backwards.
//
// Every cycle of the CPU produces an inverse effect (see the execution
// package). The Rewind type records these in a circular array of fixed
// length. Stepping back applies the most recent inverse and keeps the effect
// returned by that application so that the step can be replayed with
// Forward(). Recording a new cycle forgets any steps that could have been
// replayed.
//
// The history covers the CPU registers and RAM. The television is not part
// of the history.
package rewind
