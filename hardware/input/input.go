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

// Package input implements the Gigatron game controller. The controller
// presents a single byte to the IN port of the CPU. Each bit is one button
// and a bit is zero when the button is pressed.
package input

import (
	"strings"

	"github.com/jetsetilly/gotron/curated"
)

// Button is a bit in the controller byte.
type Button uint8

// List of valid Button values.
const (
	Right  Button = 0x01
	Left   Button = 0x02
	Down   Button = 0x04
	Up     Button = 0x08
	Start  Button = 0x10
	Select Button = 0x20
	B      Button = 0x40
	A      Button = 0x80
)

// Idle is the value of the controller when no button is pressed.
const Idle uint8 = 0xff

// Sentinal errors.
const (
	UnknownButton = "input: unknown button (%s)"
)

var buttonNames = map[string]Button{
	"RIGHT":  Right,
	"LEFT":   Left,
	"DOWN":   Down,
	"UP":     Up,
	"START":  Start,
	"SELECT": Select,
	"B":      B,
	"A":      A,
}

// ParseButton returns the Button with the name (case insensitive).
func ParseButton(name string) (Button, error) {
	if b, ok := buttonNames[strings.ToUpper(name)]; ok {
		return b, nil
	}
	return 0, curated.Errorf(UnknownButton, name)
}

func (b Button) String() string {
	for k, v := range buttonNames {
		if v == b {
			return k
		}
	}
	return "UNKNOWN"
}

// Controller is the state of the game controller.
type Controller struct {
	value uint8
}

// NewController is the preferred method of initialisation for the Controller type.
func NewController() *Controller {
	return &Controller{value: Idle}
}

// Press a button.
func (c *Controller) Press(b Button) {
	c.value &^= uint8(b)
}

// Release a button.
func (c *Controller) Release(b Button) {
	c.value |= uint8(b)
}

// Handle a button event.
func (c *Controller) Handle(b Button, pressed bool) {
	if pressed {
		c.Press(b)
	} else {
		c.Release(b)
	}
}

// Set the controller to a raw value.
func (c *Controller) Set(v uint8) {
	c.value = v
}

// Reset the controller so that no button is pressed.
func (c *Controller) Reset() {
	c.value = Idle
}

// Value returns the byte presented to the IN port.
func (c *Controller) Value() uint8 {
	return c.value
}

// IsPressed returns true if the button is pressed.
func (c *Controller) IsPressed(b Button) bool {
	return c.value&uint8(b) == 0
}

func (c *Controller) String() string {
	s := strings.Builder{}
	for _, b := range []Button{A, B, Select, Start, Up, Down, Left, Right} {
		if c.IsPressed(b) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	if s.Len() == 0 {
		return "no buttons pressed"
	}
	return s.String()
}
