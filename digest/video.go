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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video is an implementation of the television.FrameRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display the
// image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
// The result should be registered with the television through the
// AddFrameRenderer() function.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// FrameNum returns the number of the most recently hashed frame.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements television.FrameRenderer interface.
func (dig *Video) NewFrame(frameNum int, img *image.RGBA) error {
	sz := img.Bounds().Size()

	// room for the previous frame's digest value and every pixel
	l := len(dig.digest) + sz.X*sz.Y*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	i := copy(dig.pixels, dig.digest[:])

	// alpha channel is not part of the digest
	for y := 0; y < sz.Y; y++ {
		o := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		for x := 0; x < sz.X; x++ {
			dig.pixels[i] = img.Pix[o]
			dig.pixels[i+1] = img.Pix[o+1]
			dig.pixels[i+2] = img.Pix[o+2]
			i += pixelDepth
			o += 4
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}
