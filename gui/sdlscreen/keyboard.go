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

package sdlscreen

import (
	"github.com/jetsetilly/gotron/hardware/input"

	"github.com/veandco/go-sdl2/sdl"
)

// keyMap converts an SDL key to a controller button.
var keyMap = map[sdl.Keycode]input.Button{
	sdl.K_RIGHT:  input.Right,
	sdl.K_LEFT:   input.Left,
	sdl.K_DOWN:   input.Down,
	sdl.K_UP:     input.Up,
	sdl.K_RETURN: input.Start,
	sdl.K_RSHIFT: input.Select,
	sdl.K_z:      input.B,
	sdl.K_x:      input.A,
}

func (scr *Screen) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	if ev.Keysym.Sym == sdl.K_ESCAPE && ev.Type == sdl.KEYDOWN {
		if scr.quit != nil {
			scr.quit()
		}
		return
	}

	b, ok := keyMap[ev.Keysym.Sym]
	if !ok || scr.input == nil || scr.push == nil {
		return
	}

	pressed := ev.Type == sdl.KEYDOWN
	scr.push(func() {
		scr.input.Handle(b, pressed)
	})
}
