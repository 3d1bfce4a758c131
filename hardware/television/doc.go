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

// Package television interprets the OUT register of the Gigatron as a VGA
// signal. The only input to the television is the value of the OUT register
// on every cycle, sent with the Signal() function.
//
// The bits of the OUT register are:
//
//	7	vertical sync (active low)
//	6	horizontal sync (active low)
//	5-4	blue
//	3-2	green
//	1-0	red
//
// Sync is detected on the falling edge of bits 7 and 6. The image is drawn
// into a back buffer, which becomes the front buffer on the vertical sync.
// At that point any FrameRenderer that has been added to the television is
// given the completed frame.
//
// A horizontal sync that does not arrive after exactly one line's worth of
// pixels is reported as a timing error. Timing errors do not stop the
// television.
package television
