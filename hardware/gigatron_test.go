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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/input"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/hardware/preferences"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/hardware/television/specification"
	"github.com/jetsetilly/gotron/romloader"
	"github.com/jetsetilly/gotron/test"
)

// a program that pulses the vertical sync every four cycles
var vsyncLoop = []memory.Word{
	{Opcode: 0x18, Data: 0xc0}, // ld $c0,out
	{Opcode: 0x18, Data: 0x40}, // ld $40,out
	{Opcode: 0xfc, Data: 0x00}, // bra $00
	{Opcode: 0x02, Data: 0x00}, // nop
}

// a program that reads the input port and stores it in RAM
var inputLoop = []memory.Word{
	{Opcode: 0x03, Data: 0x00}, // ld in
	{Opcode: 0xc2, Data: 0x10}, // st [$10]
	{Opcode: 0xfc, Data: 0x00}, // bra $00
	{Opcode: 0x02, Data: 0x00}, // nop
}

func newGigatron(t *testing.T, spec specification.Spec, words []memory.Word) *hardware.Gigatron {
	t.Helper()

	tv, err := television.NewTelevision(spec)
	test.DemandSuccess(t, err)

	prefs := preferences.NewPreferences()
	test.DemandSuccess(t, prefs.RandomState.Set(false))

	g, err := hardware.NewGigatron(tv, prefs)
	test.DemandSuccess(t, err)

	rom, err := memory.NewROM(words, nil)
	test.DemandSuccess(t, err)
	g.AttachROM(rom)

	return g
}

func TestNoTelevision(t *testing.T) {
	_, err := hardware.NewGigatron(nil, nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoTelevision))
}

func TestRunForFrameCount(t *testing.T) {
	g := newGigatron(t, specification.SpecVGA, vsyncLoop)

	test.DemandSuccess(t, g.RunForFrameCount(3, nil))
	test.ExpectEquality(t, g.TV.GetCoords().Frame, 3)

	// one cycle to flush the pipeline, two cycles before the first falling
	// edge and four cycles for each subsequent frame
	test.ExpectEquality(t, g.Cycles(), uint64(3+4+4))
}

func TestRunContinueCheck(t *testing.T) {
	g := newGigatron(t, specification.SpecVGA, vsyncLoop)

	var count int
	err := g.Run(nil, func() (govern.State, error) {
		count++
		if count >= 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Cycles(), uint64(100))
}

func TestStepCallback(t *testing.T) {
	g := newGigatron(t, specification.SpecVGA, inputLoop)
	g.Input.Press(input.Start)

	var writes int
	cb := func(fwd execution.Effect, inv execution.Effect) error {
		if fwd.Access.Kind == execution.Write {
			writes++
			test.ExpectEquality(t, fwd.Access.Address, uint16(0x10))
			test.ExpectEquality(t, inv.Access.Value, fwd.Access.Prev)
		}
		return nil
	}

	for i := 0; i < 8; i++ {
		_, err := g.Step(cb)
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, writes, 2)
	test.ExpectEquality(t, g.Mem.Peek(0x10), input.Idle&^uint8(input.Start))
}

func TestFrameTimeout(t *testing.T) {
	// a tiny television so that the timeout is reached quickly
	spec := specification.Spec{
		ID:             "tiny",
		Horiz:          specification.SyncTiming{Visible: 4},
		Vert:           specification.SyncTiming{Visible: 1},
		PixelsPerCycle: 4,
	}
	test.DemandEquality(t, spec.CyclesPerFrame(), 1)

	g := newGigatron(t, spec, nil)

	_, err := g.Step(nil)
	test.ExpectSuccess(t, err)
	_, err = g.Step(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.FrameTimeout))

	// the emulation can continue after a timeout
	_, err = g.Step(nil)
	test.ExpectSuccess(t, err)

	err = g.Run(nil, nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.FrameTimeout))
}

func TestResets(t *testing.T) {
	g := newGigatron(t, specification.SpecVGA, inputLoop)

	for i := 0; i < 10; i++ {
		_, err := g.Step(nil)
		test.DemandSuccess(t, err)
	}
	test.ExpectInequality(t, g.CPU.QueuedPC, uint16(0))

	g.SoftReset()
	test.ExpectEquality(t, g.CPU.QueuedPC, uint16(0))
	test.ExpectEquality(t, g.CPU.Reg.PC, uint16(0))
	test.ExpectEquality(t, g.Cycles(), uint64(10))

	g.HardReset()
	test.ExpectEquality(t, g.Cycles(), uint64(0))
	test.ExpectEquality(t, g.Mem.Peek(0x10), uint8(0))
}

func TestAttachLoader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "loop.rom")
	var data []byte
	for _, w := range vsyncLoop {
		data = append(data, w.Opcode, w.Data)
	}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))

	g := newGigatron(t, specification.SpecVGA, nil)
	ld := romloader.NewLoader(fn)
	test.DemandSuccess(t, g.AttachLoader(&ld))
	test.ExpectEquality(t, g.Mem.ROM.Size(), len(vsyncLoop))

	test.DemandSuccess(t, g.RunForFrameCount(1, nil))
}
