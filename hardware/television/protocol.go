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

package television

import (
	"image"
)

// FrameRenderer implementations display, or otherwise work with, completed
// frames from the television. For example digest.Video.
type FrameRenderer interface {
	// NewFrame is called with the completed frame on every vertical sync.
	// The image should not be retained beyond the next call to NewFrame().
	NewFrame(frameNum int, img *image.RGBA) error
}
