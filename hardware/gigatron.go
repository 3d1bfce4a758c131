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

package hardware

import (
	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/cpu"
	"github.com/jetsetilly/gotron/hardware/input"
	"github.com/jetsetilly/gotron/hardware/instance"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/hardware/preferences"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/romloader"
)

// Sentinal errors.
const (
	FrameTimeout = "gigatron: no vertical sync after %d cycles"
	NoTelevision = "gigatron: a television is required"
)

// Gigatron is the main container for the emulated components of the
// Gigatron.
type Gigatron struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.Memory
	Input *input.Controller

	// the television is not part of the Gigatron but is attached to it
	TV *television.Television

	// number of cycles since the last hard reset
	cycles uint64

	// number of cycles since the last vertical sync
	cyclesSinceFrame int
	frameTimeout     int
}

// NewGigatron creates a new Gigatron and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions and
// regular play.
//
// The prefs argument can be nil, in which case default preferences are
// created.
func NewGigatron(tv *television.Television, prefs *preferences.Preferences) (*Gigatron, error) {
	if tv == nil {
		return nil, curated.Errorf(NoTelevision)
	}

	g := &Gigatron{
		Instance: instance.NewInstance(prefs),
		Mem:      memory.NewMemory(),
		Input:    input.NewController(),
		TV:       tv,
	}

	g.CPU = cpu.NewCPU(g.Instance.Random, g.Mem)
	g.frameTimeout = tv.GetSpec().CyclesPerFrame() * 2
	g.HardReset()

	return g, nil
}

// AttachROM inserts the ROM into the Gigatron and performs a hard reset.
func (g *Gigatron) AttachROM(rom *memory.ROM) {
	g.Mem.AttachROM(rom)
	g.HardReset()
}

// AttachLoader loads the ROM image specified by the loader and attaches it.
// Unused ROM words are randomised if the RandomROM preference is set.
func (g *Gigatron) AttachLoader(ld *romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	var filler memory.Filler
	if g.Instance.Prefs.RandomROM.Bool() {
		filler = g.Instance.Random
	}

	rom, err := ld.ROM(filler)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "gigatron", "attached %s (%d words)", ld.ShortName(), rom.Size())
	g.AttachROM(rom)

	return nil
}

// HardReset is the equivalent of power cycling the Gigatron. Registers and
// RAM are randomised according to the RandomState preference.
func (g *Gigatron) HardReset() {
	g.CPU.HardReset(g.Instance.Prefs.RandomState.Bool())
	g.TV.Reset()
	g.cycles = 0
	g.cyclesSinceFrame = 0
}

// SoftReset is the equivalent of pressing the reset button.
func (g *Gigatron) SoftReset() {
	g.CPU.SoftReset()
	g.cyclesSinceFrame = 0
}

// Cycles returns the number of cycles executed since the last hard reset.
func (g *Gigatron) Cycles() uint64 {
	return g.cycles
}

func (g *Gigatron) String() string {
	return g.CPU.String()
}
