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

//go:build windows

// Package colorterm is not available under windows. The ColorTerminal type
// falls back to the behaviour of the PlainTerminal.
package colorterm

import (
	"github.com/jetsetilly/gotron/debugger/terminal/plainterm"
)

// ColorTerminal implements debugger UI interface with a basic terminal.
type ColorTerminal struct {
	*plainterm.PlainTerminal
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{
		PlainTerminal: plainterm.NewPlainTerminal(nil, nil),
	}
}
