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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " 0100  ld   $00 "}
	test.ExpectEquality(t, p.String(), "[ 0100  ld   $00 ] >> ")

	p.Redo = 12
	test.ExpectEquality(t, p.String(), "[ (rewound 12) 0100  ld   $00 ] >> ")
}
