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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gotron/hardware/cpu"
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/test"
)

func TestPipelineLag(t *testing.T) {
	mc, _ := newCPU(t, ldD, 0x42)

	ac := mc.Reg.AC
	test.ExpectEquality(t, mc.Reg.PC, uint16(0))
	test.ExpectEquality(t, mc.QueuedPC, uint16(0))

	// the first cycle after reset executes the flushed pipeline and fetches
	// the word at address zero
	mc.Step()
	test.ExpectEquality(t, mc.Reg.AC, ac)
	test.ExpectEquality(t, mc.Reg.PC, uint16(1))
	test.ExpectEquality(t, mc.QueuedPC, uint16(0))

	mc.Step()
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x42))
	test.ExpectEquality(t, mc.QueuedPC, uint16(1))
}

func TestJumpStillFetches(t *testing.T) {
	// the instruction following a jump is always executed
	mc, _ := newCPU(t,
		jmpY, 0x10,
		ldD, 0x55,
	)
	mc.Reg.Y = 0x00

	mc.Step()
	mc.Step()
	test.ExpectEquality(t, mc.Reg.PC, uint16(0x0010))
	mc.Step()
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x55))
}

func TestWraparound(t *testing.T) {
	mc, _ := newCPU(t)

	mc.Reg.AC = 0xff
	execute(mc, addD, 0x02)
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x01))

	execute(mc, subD, 0x02)
	test.ExpectEquality(t, mc.Reg.AC, uint8(0xff))

	mc.Reg.PC = 0xffff
	execute(mc, ldD, 0x00)
	test.ExpectEquality(t, mc.Reg.PC, uint16(0x0000))
	test.ExpectEquality(t, mc.QueuedPC, uint16(0xffff))

	mc.Reg.X = 0xff
	mc.Reg.Y = 0x00
	execute(mc, stYXpp, 0x00)
	test.ExpectEquality(t, mc.Reg.X, uint8(0x00))
}

func TestLogic(t *testing.T) {
	mc, _ := newCPU(t)

	mc.Reg.AC = 0xf0
	execute(mc, 0x20, 0x3c) // anda $3c
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x30))

	execute(mc, 0x40, 0x0f) // ora $0f
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x3f))

	execute(mc, 0x60, 0xff) // xora $ff
	test.ExpectEquality(t, mc.Reg.AC, uint8(0xc0))
}

func TestStoreAndIndex(t *testing.T) {
	mc, mem := newCPU(t)

	mc.Reg.AC = 0x7a
	mc.Reg.IR = stX
	mc.Reg.D = 0x10
	e, _ := mc.Step()

	test.ExpectEquality(t, mem.Peek(0x0010), uint8(0x7a))
	test.ExpectEquality(t, mc.Reg.X, uint8(0x7a))
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x7a))
	test.ExpectEquality(t, e.Access.Kind, execution.Write)
	test.ExpectEquality(t, e.Access.Address, uint16(0x0010))
	test.ExpectEquality(t, e.Access.Value, uint8(0x7a))
}

func TestWriteMasking(t *testing.T) {
	mc, mem := newCPU(t)

	// accumulator destination is suppressed by the write
	mc.Reg.AC = 0x12
	execute(mc, stAC, 0x20)
	test.ExpectEquality(t, mem.Peek(0x0020), uint8(0x12))
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x12))

	// output destination is suppressed by the write
	mc.Reg.OUT = 0xc0
	execute(mc, stOUT, 0x21)
	test.ExpectEquality(t, mem.Peek(0x0021), uint8(0x12))
	test.ExpectEquality(t, mc.Reg.OUT, uint8(0xc0))

	// post increment happens regardless
	mc.Reg.X = 0x05
	mc.Reg.Y = 0x01
	execute(mc, stYXpp, 0x00)
	test.ExpectEquality(t, mem.Peek(0x0105), uint8(0x12))
	test.ExpectEquality(t, mc.Reg.X, uint8(0x06))
	test.ExpectEquality(t, mc.Reg.OUT, uint8(0xc0))
}

func TestUndrivenBus(t *testing.T) {
	mc, mem := newCPU(t)

	undef := mc.Reg.Undef
	mc.Reg.IR = stRAM
	mc.Reg.D = 0x30
	e, _ := mc.Step()
	test.ExpectEquality(t, e.Access.Kind, execution.Write)
	test.ExpectEquality(t, e.Access.Value, undef)
	test.ExpectEquality(t, mem.Peek(0x0030), undef)
}

func TestBusSources(t *testing.T) {
	mc, mem := newCPU(t)

	mem.Poke(0x0040, 0x99)
	mc.Reg.IR = ldRAM
	mc.Reg.D = 0x40
	e, _ := mc.Step()
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x99))
	test.ExpectEquality(t, e.Access, execution.MemoryAccess{
		Kind: execution.Read, Address: 0x0040, Value: 0x99, Prev: 0x99,
	})

	mc.SetInput(0xfe)
	execute(mc, ldIn, 0x00)
	test.ExpectEquality(t, mc.Reg.AC, uint8(0xfe))
	test.ExpectEquality(t, mc.Input(), uint8(0xfe))

	// no memory access when the bus is not RAM
	execute(mc, ldD, 0x00)
	e, _ = mc.Step()
	test.ExpectEquality(t, e.Access.Kind, execution.NoAccess)
}

func TestAddressingModes(t *testing.T) {
	mc, mem := newCPU(t)

	mem.Poke(0x0005, 0x11) // [x]
	mem.Poke(0x0220, 0x22) // [y,d]
	mem.Poke(0x0205, 0x33) // [y,x]
	mem.Poke(0x0020, 0x44) // [d]

	set := func() {
		mc.Reg.X = 0x05
		mc.Reg.Y = 0x02
	}

	set()
	execute(mc, 0x05, 0x20) // ld [x]
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x11))

	set()
	execute(mc, 0x09, 0x20) // ld [y,$20]
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x22))

	set()
	execute(mc, 0x0d, 0x20) // ld [y,x]
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x33))

	set()
	execute(mc, 0x11, 0x20) // ld [$20],x
	test.ExpectEquality(t, mc.Reg.X, uint8(0x44))

	set()
	execute(mc, 0x15, 0x20) // ld [$20],y
	test.ExpectEquality(t, mc.Reg.Y, uint8(0x44))

	set()
	execute(mc, 0x19, 0x20) // ld [$20],out
	test.ExpectEquality(t, mc.Reg.OUT, uint8(0x44))

	set()
	execute(mc, 0x1d, 0x00) // ld [y,x++],out
	test.ExpectEquality(t, mc.Reg.OUT, uint8(0x33))
	test.ExpectEquality(t, mc.Reg.X, uint8(0x06))

	// address is masked to fifteen bits
	mc.Reg.X = 0x05
	mc.Reg.Y = 0x82
	execute(mc, 0x0d, 0x00)
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x33))
}

func TestFarJump(t *testing.T) {
	mc, _ := newCPU(t)

	mc.Reg.Y = 0x12
	mc.Reg.AC = 0x99
	execute(mc, jmpY, 0x34)
	test.ExpectEquality(t, mc.Reg.PC, uint16(0x1234))

	// jumps never change the accumulator
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x99))

	// far jump with the target taken from RAM
	mc.Reg.Y = 0x01
	execute(mc, jmpYRAM, 0x00)
	test.ExpectEquality(t, mc.Reg.PC&0xff00, uint16(0x0100))
}

func TestBranchConditions(t *testing.T) {
	mc, _ := newCPU(t)

	mc.Reg.PC = 0x0205
	mc.Reg.AC = 0x00
	execute(mc, beqD, 0x34)
	test.ExpectEquality(t, mc.Reg.PC, uint16(0x0234))

	mc.Reg.PC = 0x0205
	mc.Reg.AC = 0x80
	execute(mc, beqD, 0x34)
	test.ExpectEquality(t, mc.Reg.PC, uint16(0x0206))

	// the complete condition table. rows are modes 1 to 7 (bgt, blt, bne,
	// beq, bge, ble, bra), columns are AC values 0x01, 0x80 and 0x00
	table := [][3]bool{
		{true, false, false},
		{false, true, false},
		{true, true, false},
		{false, false, true},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	acs := [3]uint8{0x01, 0x80, 0x00}

	for m, row := range table {
		for i, taken := range row {
			mc.Reg.PC = 0x0310
			mc.Reg.AC = acs[i]
			execute(mc, 0xe0|uint8(m+1)<<2, 0x80)

			expected := uint16(0x0311)
			if taken {
				expected = 0x0380
			}
			test.ExpectEquality(t, mc.Reg.PC, expected, m+1, acs[i])
		}
	}
}

func TestSoftReset(t *testing.T) {
	mc, mem := newCPU(t, ldD, 0x42)

	mem.Poke(0x0100, 0x77)
	mc.Reg.PC = 0x1234
	mc.Reg.AC = 0x10
	mc.SoftReset()

	test.ExpectEquality(t, mc.Reg.PC, uint16(0))
	test.ExpectEquality(t, mc.QueuedPC, uint16(0))
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x10))
	test.ExpectEquality(t, mem.Peek(0x0100), uint8(0x77))
}

func TestHardResetZero(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Poke(0x0100, 0x77)
	mc.HardReset(false)
	test.ExpectEquality(t, mem.Peek(0x0100), uint8(0x00))
	test.ExpectEquality(t, mc.Reg.AC, uint8(0x00))
}

func TestReversibility(t *testing.T) {
	// a ROM of random words exercises every kind of instruction
	rnd := newRandom()
	words := make([]memory.Word, memory.ROMSize)
	for i := range words {
		words[i] = memory.Word{Opcode: rnd.Uint8(), Data: rnd.Uint8()}
	}
	rom, err := memory.NewROM(words, nil)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory()
	mem.AttachROM(rom)
	mc := cpu.NewCPU(rnd, mem)
	mc.HardReset(true)

	// run for a while so that the pipeline is full of ROM instructions
	for i := 0; i < 100; i++ {
		mc.Step()
	}

	startReg := mc.Reg
	startQueued := mc.QueuedPC
	startRAM := mem.RAM.Snapshot()

	const n = 5000
	inverses := make([]execution.Effect, 0, n)
	writes := 0
	for i := 0; i < n; i++ {
		e, inv := mc.Step()
		if e.Access.Kind == execution.Write {
			writes++
		}
		inverses = append(inverses, inv)
	}

	// make sure the test is meaningful
	test.ExpectInequality(t, writes, 0)

	for i := len(inverses) - 1; i >= 0; i-- {
		mc.Apply(inverses[i])
	}

	test.ExpectSuccess(t, mc.Reg.Equal(startReg))
	test.ExpectEquality(t, mc.QueuedPC, startQueued)
	test.ExpectEquality(t, *mem.RAM, *startRAM)
}

func TestApplyInverseInverse(t *testing.T) {
	mc, mem := newCPU(t)
	mc.Reg.AC = 0x5a

	mc.Reg.IR = stAC
	mc.Reg.D = 0x50
	e := mc.Clock()
	inv := mc.Apply(e)
	test.ExpectEquality(t, mem.Peek(0x0050), uint8(0x5a))

	redo := mc.Apply(inv)
	test.ExpectEquality(t, mem.Peek(0x0050), e.Access.Prev)
	test.ExpectEquality(t, redo.Access, e.Access)
	test.ExpectSuccess(t, redo.Reg.Equal(e.Reg))
}

func TestEntropyDeterminism(t *testing.T) {
	a := cpu.NewCPU(newRandom(), memory.NewMemory())
	b := cpu.NewCPU(newRandom(), memory.NewMemory())
	a.HardReset(true)
	b.HardReset(true)
	for i := 0; i < 100; i++ {
		ea, _ := a.Step()
		eb, _ := b.Step()
		test.ExpectEquality(t, ea, eb, i)
	}
}
