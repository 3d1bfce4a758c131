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

// Package coords represents the position of the television's raster.
package coords

import "fmt"

// TelevisionCoords is the position of the raster at a moment in time.
//
// A Line value of -1 indicates that the vertical sync has been seen but not
// the first horizontal sync of the frame.
type TelevisionCoords struct {
	Frame  int
	Line   int
	Column int
}

func (c TelevisionCoords) String() string {
	return fmt.Sprintf("Frame: %d  Line: %03d  Column: %03d", c.Frame, c.Line, c.Column)
}

// Equal compares two instances of TelevisionCoords.
func Equal(A, B TelevisionCoords) bool {
	return A.Frame == B.Frame && A.Line == B.Line && A.Column == B.Column
}
