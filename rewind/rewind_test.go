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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/gotron/hardware/cpu"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/random"
	"github.com/jetsetilly/gotron/rewind"
	"github.com/jetsetilly/gotron/test"
)

// a small program that writes an incrementing value to RAM in a loop
//
//	0000	ld $00
//	0001	st [$10]
//	0002	adda $01
//	0003	bra $01
//	0004	st [$11]
var program = []memory.Word{
	{Opcode: 0x00, Data: 0x00},
	{Opcode: 0xc2, Data: 0x10},
	{Opcode: 0x80, Data: 0x01},
	{Opcode: 0xfc, Data: 0x01},
	{Opcode: 0xc2, Data: 0x11},
}

func newCPU(t *testing.T) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	rom, err := memory.NewROM(program, nil)
	test.DemandSuccess(t, err)
	mem := memory.NewMemory()
	mem.AttachROM(rom)

	rnd := random.NewRandom()
	rnd.Seed(1)
	mc := cpu.NewCPU(rnd, mem)
	mc.HardReset(true)

	return mc, mem
}

func TestBackAndForward(t *testing.T) {
	mc, mem := newCPU(t)
	rw := rewind.NewRewind(mc)

	startReg := mc.Reg
	startRAM := mem.RAM.Snapshot()

	const steps = 100
	type state struct {
		pc  uint16
		ac  uint8
		ram uint8
	}
	history := make([]state, 0, steps)

	for i := 0; i < steps; i++ {
		_, inv := mc.Step()
		rw.Record(inv)
		history = append(history, state{pc: mc.Reg.PC, ac: mc.Reg.AC, ram: mem.Peek(0x10)})
	}
	test.ExpectEquality(t, rw.Len(), steps)

	// step back half way
	for i := 0; i < steps/2; i++ {
		test.ExpectSuccess(t, rw.Back())
	}
	test.ExpectEquality(t, rw.RedoLen(), steps/2)
	h := history[steps/2-1]
	test.ExpectEquality(t, mc.Reg.PC, h.pc)
	test.ExpectEquality(t, mc.Reg.AC, h.ac)
	test.ExpectEquality(t, mem.Peek(0x10), h.ram)

	// replay to the end
	for i := 0; i < steps/2; i++ {
		test.ExpectSuccess(t, rw.Forward())
	}
	test.ExpectFailure(t, rw.Forward())
	h = history[steps-1]
	test.ExpectEquality(t, mc.Reg.PC, h.pc)
	test.ExpectEquality(t, mc.Reg.AC, h.ac)
	test.ExpectEquality(t, mem.Peek(0x10), h.ram)

	// all the way back to the start
	for rw.Back() {
	}
	test.ExpectSuccess(t, mc.Reg.Equal(startReg))
	test.ExpectEquality(t, *mem.RAM, *startRAM)
}

func TestRecordClearsRedo(t *testing.T) {
	mc, _ := newCPU(t)
	rw := rewind.NewRewind(mc)

	for i := 0; i < 10; i++ {
		_, inv := mc.Step()
		rw.Record(inv)
	}
	rw.Back()
	rw.Back()
	test.ExpectEquality(t, rw.RedoLen(), 2)

	_, ok := rw.PeekForward()
	test.ExpectSuccess(t, ok)

	_, inv := mc.Step()
	rw.Record(inv)
	test.ExpectEquality(t, rw.RedoLen(), 0)
	test.ExpectEquality(t, rw.Len(), 9)
}

func TestCapacity(t *testing.T) {
	mc, _ := newCPU(t)
	rw := rewind.NewRewind(mc)
	test.DemandSuccess(t, rw.Prefs.MaxEntries.Set(5))
	test.ExpectEquality(t, rw.Len(), 0)

	var pcs []uint16
	for i := 0; i < 20; i++ {
		pcs = append(pcs, mc.Reg.PC)
		_, inv := mc.Step()
		rw.Record(inv)
	}
	test.ExpectEquality(t, rw.Len(), 5)

	n := 0
	for rw.Back() {
		n++
	}
	test.ExpectEquality(t, n, 5)

	// the oldest remembered state is five steps from the end
	test.ExpectEquality(t, mc.Reg.PC, pcs[15])
}
