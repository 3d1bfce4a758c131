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

	"github.com/jetsetilly/gotron/hardware/television/coords"
	"github.com/jetsetilly/gotron/hardware/television/specification"
	"github.com/jetsetilly/gotron/logger"
)

// Sync bits of the OUT register.
const (
	VSync uint8 = 0x80
	HSync uint8 = 0x40
)

// Result of a single call to Signal().
type Result struct {
	// vertical sync seen. the frame returned by Frame() has been replaced
	NewFrame bool

	// horizontal sync seen after the wrong number of columns
	HorizTimingError bool
}

// Television interprets the Gigatron's OUT register as a VGA signal.
type Television struct {
	spec specification.Spec

	// value of the OUT register during the previous cycle
	prevOut uint8

	frameNum int
	line     int
	column   int

	// the first horizontal sync after a reset can come at any time so it is
	// not checked for accuracy
	hsyncSeen bool

	// front is the most recently completed frame and back is the frame
	// being drawn
	front *image.RGBA
	back  *image.RGBA

	renderers []FrameRenderer

	// the column count at the most recent horizontal timing error
	lastHorizError int
}

// NewTelevision is the preferred method of initialisation for the Television type.
func NewTelevision(spec specification.Spec) (*Television, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	tv := &Television{
		spec: spec,
	}

	r := image.Rect(0, 0, spec.Horiz.Visible, spec.Vert.Visible)
	tv.front = image.NewRGBA(r)
	tv.back = image.NewRGBA(r)
	tv.Reset()

	return tv, nil
}

// Reset the television. The frame number and the framebuffers are
// preserved.
func (tv *Television) Reset() {
	tv.prevOut = 0
	tv.line = -1
	tv.column = 0
	tv.hsyncSeen = false
}

// GetSpec returns the television's specification.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// AddFrameRenderer registers an implementation of FrameRenderer.
func (tv *Television) AddFrameRenderer(r FrameRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// GetCoords returns the current position of the raster.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	return coords.TelevisionCoords{
		Frame:  tv.frameNum,
		Line:   tv.line,
		Column: tv.column,
	}
}

// Frame returns the most recently completed frame.
func (tv *Television) Frame() *image.RGBA {
	return tv.front
}

// LastHorizError returns the number of columns counted at the time of the
// most recent horizontal timing error.
func (tv *Television) LastHorizError() int {
	return tv.lastHorizError
}

// Signal the television with the value of the OUT register. Should be called
// once for every CPU cycle. The error return value is the first error
// returned by a FrameRenderer, if any.
func (tv *Television) Signal(out uint8) (Result, error) {
	var res Result
	var err error

	falling := tv.prevOut &^ out
	tv.prevOut = out

	if falling&VSync == VSync {
		tv.line = -1
		tv.frameNum++
		tv.front, tv.back = tv.back, tv.front
		for i := range tv.back.Pix {
			tv.back.Pix[i] = 0
		}
		res.NewFrame = true

		for _, r := range tv.renderers {
			if rerr := r.NewFrame(tv.frameNum, tv.front); rerr != nil && err == nil {
				err = rerr
			}
		}
	}

	if falling&HSync == HSync {
		if tv.hsyncSeen && tv.column != tv.spec.Horiz.Total() {
			res.HorizTimingError = true
			tv.lastHorizError = tv.column
			logger.Logf(logger.Allow, "television", "horizontal timing error: %d columns (expected %d)", tv.column, tv.spec.Horiz.Total())
		}
		tv.hsyncSeen = true
		tv.column = 0
		tv.line++
	}

	if tv.line >= tv.spec.Vert.WindowStart() && tv.line < tv.spec.Vert.WindowEnd() &&
		tv.column >= tv.spec.Horiz.WindowStart() && tv.column < tv.spec.Horiz.WindowEnd() {
		tv.plot(out)
	}

	tv.column += tv.spec.PixelsPerCycle

	return res, err
}

// each two bit colour channel is expanded to eight bits
const channelScale = 85

func (tv *Television) plot(out uint8) {
	r := channelScale * (out & 0x03)
	g := channelScale * ((out >> 2) & 0x03)
	b := channelScale * ((out >> 4) & 0x03)

	x := tv.column - tv.spec.Horiz.WindowStart()
	y := tv.line - tv.spec.Vert.WindowStart()
	i := tv.back.PixOffset(x, y)

	for p := 0; p < tv.spec.PixelsPerCycle && x+p < tv.spec.Horiz.Visible; p++ {
		tv.back.Pix[i] = r
		tv.back.Pix[i+1] = g
		tv.back.Pix[i+2] = b
		tv.back.Pix[i+3] = 0xff
		i += 4
	}
}
