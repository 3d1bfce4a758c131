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

// Package specification contains the timing definitions of the video signals
// that can be produced by the Gigatron.
//
// The Gigatron generates VGA sync signals directly from the OUT register. The
// timing of each axis is described by four values: front porch, sync pulse,
// back porch and visible region. Horizontal values are measured in pixels
// and vertical values in lines.
package specification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gotron/curated"
)

// Sentinal errors.
const (
	InvalidSpec     = "specification: %v"
	UnknownSpec     = "specification: unknown specification (%s)"
	BadTimingString = "specification: timing string must be four comma separated numbers (%s)"
)

// SyncTiming describes the timing of one axis of the video signal.
type SyncTiming struct {
	FrontPorch int
	Pulse      int
	BackPorch  int
	Visible    int
}

func (t SyncTiming) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.FrontPorch, t.Pulse, t.BackPorch, t.Visible)
}

// Total length of the axis.
func (t SyncTiming) Total() int {
	return t.FrontPorch + t.Pulse + t.BackPorch + t.Visible
}

// WindowStart is the first visible position, counting from the falling edge
// of the sync pulse.
func (t SyncTiming) WindowStart() int {
	return t.BackPorch + t.Pulse
}

// WindowEnd is the position immediately after the last visible position.
func (t SyncTiming) WindowEnd() int {
	return t.WindowStart() + t.Visible
}

// ParseSyncTiming parses a string of the form "front,pulse,back,visible".
func ParseSyncTiming(s string) (SyncTiming, error) {
	p := strings.Split(s, ",")
	if len(p) != 4 {
		return SyncTiming{}, curated.Errorf(BadTimingString, s)
	}

	var v [4]int
	for i := range p {
		n, err := strconv.Atoi(strings.TrimSpace(p[i]))
		if err != nil {
			return SyncTiming{}, curated.Errorf(BadTimingString, s)
		}
		v[i] = n
	}

	return SyncTiming{FrontPorch: v[0], Pulse: v[1], BackPorch: v[2], Visible: v[3]}, nil
}

// Spec is the complete definition of a video signal.
type Spec struct {
	ID string

	Horiz SyncTiming
	Vert  SyncTiming

	// the number of horizontal pixels painted by one CPU cycle
	PixelsPerCycle int
}

// SpecVGA is the 640x480 signal produced by the standard Gigatron ROMs.
var SpecVGA = Spec{
	ID: "VGA",
	Horiz: SyncTiming{
		FrontPorch: 16,
		Pulse:      96,
		BackPorch:  48,
		Visible:    640,
	},
	Vert: SyncTiming{
		FrontPorch: 6,
		Pulse:      8,
		BackPorch:  27,
		Visible:    480,
	},
	PixelsPerCycle: 4,
}

// SearchSpec returns the named specification.
func SearchSpec(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "VGA", "":
		return SpecVGA, nil
	}
	return Spec{}, curated.Errorf(UnknownSpec, id)
}

// CyclesPerFrame is the number of CPU cycles in a complete frame.
func (spec Spec) CyclesPerFrame() int {
	return spec.Horiz.Total() * spec.Vert.Total() / spec.PixelsPerCycle
}

// Validate checks that the specification can be used by a television.
func (spec Spec) Validate() error {
	if spec.PixelsPerCycle <= 0 {
		return curated.Errorf(InvalidSpec, "pixels per cycle must be positive")
	}

	for _, t := range []SyncTiming{spec.Horiz, spec.Vert} {
		if t.Visible <= 0 {
			return curated.Errorf(InvalidSpec, "visible region must be positive")
		}
		if t.FrontPorch < 0 || t.Pulse < 0 || t.BackPorch < 0 {
			return curated.Errorf(InvalidSpec, "timing values cannot be negative")
		}
	}

	return nil
}
