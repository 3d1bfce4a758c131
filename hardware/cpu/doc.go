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

// Package cpu emulates the Gigatron CPU. The CPU executes one instruction
// every cycle and has a single stage pipeline: the instruction executed
// during a cycle is the one fetched from ROM during the previous cycle.
//
// The Clock() function computes the effect of the next cycle without
// changing the state of the CPU. The Apply() function changes the state of
// the CPU according to an effect and returns the inverse of that effect:
//
//	e := mc.Clock()
//	inv := mc.Apply(e)
//
//	// and then to undo the cycle
//	mc.Apply(inv)
//
// Step() does both and is what most callers want.
//
// The Gigatron data bus is undriven when the RAM is being written to and the
// bus is selected as the source of the value. The CPU models this with a
// value from an Entropy source. Entropy is also used to initialise the
// registers and RAM on a hard reset. Seeding the source gives deterministic
// results.
package cpu
