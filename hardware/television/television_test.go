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

package television_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/hardware/television/specification"
	"github.com/jetsetilly/gotron/test"
)

const idle = television.VSync | television.HSync

type mockRenderer struct {
	frames   int
	frameNum int
	img      *image.RGBA
}

func (r *mockRenderer) NewFrame(frameNum int, img *image.RGBA) error {
	r.frames++
	r.frameNum = frameNum
	r.img = img
	return nil
}

type signaller struct {
	t       *testing.T
	tv      *television.Television
	renders int
	errors  int
}

func (s *signaller) signal(out uint8) {
	s.t.Helper()
	r, err := s.tv.Signal(out)
	test.DemandSuccess(s.t, err)
	if r.NewFrame {
		s.renders++
	}
	if r.HorizTimingError {
		s.errors++
	}
}

// line sends a horizontal sync followed by the colour for the rest of the
// line. the total number of cycles sent is the length argument.
func (s *signaller) line(length int, colour uint8) {
	s.t.Helper()
	s.signal(television.VSync | colour)
	for c := 1; c < length; c++ {
		s.signal(idle | colour)
	}
}

func newSignaller(t *testing.T) *signaller {
	tv, err := television.NewTelevision(specification.SpecVGA)
	test.DemandSuccess(t, err)
	s := &signaller{t: t, tv: tv}
	s.signal(idle)
	return s
}

func TestFraming(t *testing.T) {
	s := newSignaller(t)

	rnd := &mockRenderer{}
	s.tv.AddFrameRenderer(rnd)

	// one cycle per four pixels means 200 cycles per line
	for l := 0; l < specification.SpecVGA.Vert.Total(); l++ {
		s.line(200, 0x3f)
	}
	test.ExpectEquality(t, s.errors, 0)
	test.ExpectEquality(t, s.renders, 0)

	// vertical sync while horizontal sync is high
	s.signal(television.HSync)
	test.ExpectEquality(t, s.renders, 1)
	test.ExpectEquality(t, s.errors, 0)

	img := s.tv.Frame()
	test.ExpectEquality(t, img.Bounds().Dx(), 640)
	test.ExpectEquality(t, img.Bounds().Dy(), 480)

	written := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 && img.Pix[i+1] == 255 && img.Pix[i+2] == 255 && img.Pix[i+3] == 255 {
			written++
		}
	}
	test.ExpectEquality(t, written, 640*480)

	test.ExpectEquality(t, rnd.frames, 1)
	test.ExpectEquality(t, rnd.frameNum, 1)
	test.ExpectEquality(t, rnd.img, img)

	// line counter returns to the sentinal value
	test.ExpectEquality(t, s.tv.GetCoords().Line, -1)
	s.line(200, 0)
	test.ExpectEquality(t, s.tv.GetCoords().Line, 0)
}

func TestHorizTimingError(t *testing.T) {
	s := newSignaller(t)

	// the first horizontal sync is never an error
	s.line(200, 0)
	s.line(200, 0)
	test.ExpectEquality(t, s.errors, 0)

	// short line
	s.line(150, 0)
	test.ExpectEquality(t, s.errors, 0)
	s.line(200, 0)
	test.ExpectEquality(t, s.errors, 1)
	test.ExpectEquality(t, s.tv.LastHorizError(), 600)

	// long line
	s.line(201, 0)
	s.line(200, 0)
	test.ExpectEquality(t, s.errors, 2)
	test.ExpectEquality(t, s.tv.LastHorizError(), 804)

	// and recovery
	s.line(200, 0)
	test.ExpectEquality(t, s.errors, 2)
}

func TestColour(t *testing.T) {
	s := newSignaller(t)

	// red=1 green=2 blue=3
	const colour = 0x3<<4 | 0x2<<2 | 0x1

	// draw to the first visible line and then a little further
	for l := 0; l < specification.SpecVGA.Vert.WindowStart()+1; l++ {
		s.line(200, colour)
	}
	s.signal(television.HSync)

	img := s.tv.Frame()
	c := img.RGBAAt(0, 0)
	test.ExpectEquality(t, c.R, uint8(85))
	test.ExpectEquality(t, c.G, uint8(170))
	test.ExpectEquality(t, c.B, uint8(255))
	test.ExpectEquality(t, c.A, uint8(255))

	c = img.RGBAAt(639, 0)
	test.ExpectEquality(t, c.A, uint8(255))

	// second line never drawn
	c = img.RGBAAt(0, 1)
	test.ExpectEquality(t, c.A, uint8(0))
}

func TestNoEdgeWithoutTransition(t *testing.T) {
	tv, err := television.NewTelevision(specification.SpecVGA)
	test.DemandSuccess(t, err)

	// holding sync low is a single falling edge
	r, _ := tv.Signal(idle)
	test.ExpectFailure(t, r.NewFrame)
	r, _ = tv.Signal(television.HSync)
	test.ExpectSuccess(t, r.NewFrame)
	r, _ = tv.Signal(television.HSync)
	test.ExpectFailure(t, r.NewFrame)
}

func TestInvalidSpec(t *testing.T) {
	spec := specification.SpecVGA
	spec.Horiz.Visible = 0
	_, err := television.NewTelevision(spec)
	test.ExpectFailure(t, err)
}

func TestAlternativeTiming(t *testing.T) {
	// a narrow screen with two pixels per cycle
	spec := specification.Spec{
		ID:             "test",
		Horiz:          specification.SyncTiming{FrontPorch: 2, Pulse: 2, BackPorch: 2, Visible: 10},
		Vert:           specification.SyncTiming{FrontPorch: 1, Pulse: 1, BackPorch: 1, Visible: 3},
		PixelsPerCycle: 2,
	}
	tv, err := television.NewTelevision(spec)
	test.DemandSuccess(t, err)
	s := &signaller{t: t, tv: tv}
	s.signal(idle)

	for l := 0; l < spec.Vert.Total(); l++ {
		s.line(8, 0x3f)
	}
	s.signal(television.HSync)

	test.ExpectEquality(t, s.errors, 0)
	test.ExpectEquality(t, s.renders, 1)

	img := tv.Frame()
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			test.ExpectEquality(t, img.RGBAAt(x, y).A, uint8(255), x, y)
		}
	}
}
