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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/input"
	"github.com/jetsetilly/gotron/test"
)

func TestController(t *testing.T) {
	c := input.NewController()
	test.ExpectEquality(t, c.Value(), uint8(0xff))
	test.ExpectEquality(t, c.String(), "no buttons pressed")

	c.Press(input.Start)
	test.ExpectEquality(t, c.Value(), uint8(0xef))
	test.ExpectSuccess(t, c.IsPressed(input.Start))

	c.Handle(input.A, true)
	test.ExpectEquality(t, c.Value(), uint8(0x6f))
	test.ExpectEquality(t, c.String(), "A START")

	c.Release(input.Start)
	test.ExpectEquality(t, c.Value(), uint8(0x7f))

	c.Handle(input.A, false)
	test.ExpectEquality(t, c.Value(), uint8(0xff))

	c.Set(0x00)
	test.ExpectSuccess(t, c.IsPressed(input.Right))
	c.Reset()
	test.ExpectEquality(t, c.Value(), input.Idle)
}

func TestParseButton(t *testing.T) {
	b, err := input.ParseButton("select")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, input.Select)
	test.ExpectEquality(t, b.String(), "SELECT")

	_, err = input.ParseButton("fire")
	test.ExpectSuccess(t, curated.Is(err, input.UnknownButton))
}
