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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation. It supplies the undefined
// contents of RAM and the registers at power-on and the floating bus value
// on every cycle.
//
// Each Random instance is its own generator. The seed is taken from the time
// of program start unless Seed() is called, or ZeroSeed is set before first
// use. Two instances with the same seed produce the same sequence, which is
// what test and regression runs need.
package random
