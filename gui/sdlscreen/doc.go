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

// Package sdlscreen displays the output of the television in an SDL window
// and maps the keyboard to the Gigatron's game controller.
//
// SDL requires that window handling happens in the main thread. The
// Service() function must therefore be called regularly from the main thread
// and only from the main thread. NewFrame() is called by the television in
// the emulation goroutine and only copies the frame for Service() to present.
//
// Keyboard events are converted into functions that change the state of the
// input.Controller. These functions are queued with the push function given
// to SetInput() so that they run in the emulation goroutine.
package sdlscreen
