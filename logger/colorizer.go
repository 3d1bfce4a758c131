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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of every write is printed normally and any following lines are printed in
// red.
type Colorizer struct {
	out  io.Writer
	dim  *color.Color
	main *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:  out,
		dim:  color.New(color.FgRed, color.Faint),
		main: color.New(color.FgWhite),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	_, err = c.main.Fprintln(c.out, l[0])
	if err != nil {
		return 0, err
	}

	for _, s := range l[1:] {
		_, err = c.dim.Fprintln(c.out, s)
		if err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
