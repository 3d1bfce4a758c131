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
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/random"
)

// opcodes used in the tests
const (
	ldD     = 0x00 // ld $dd
	ldRAM   = 0x01 // ld [$dd]
	ldIn    = 0x03 // ld in
	addD    = 0x80 // adda $dd
	subD    = 0xa0 // suba $dd
	stAC    = 0xc2 // st [$dd]
	stRAM   = 0xc1 // st [$dd] with undriven bus
	stX     = 0xd2 // st [$dd],x
	stYXpp  = 0xde // st [y,x++]
	stOUT   = 0xda // st [$dd],out
	jmpY    = 0xe0 // jmp y,$dd
	beqD    = 0xf0 // beq $dd
	jmpYRAM = 0xe1 // jmp y,[$dd]
)

func newRandom() *random.Random {
	rnd := random.NewRandom()
	rnd.Seed(0x600d)
	return rnd
}

// newCPU returns a CPU with a ROM made from the supplied opcode/data pairs.
// the CPU has been hard reset.
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	words := make([]memory.Word, 0, len(program)/2)
	for i := 0; i+1 < len(program); i += 2 {
		words = append(words, memory.Word{Opcode: program[i], Data: program[i+1]})
	}

	rom, err := memory.NewROM(words, nil)
	if err != nil {
		t.Fatalf("%v", err)
	}

	mem := memory.NewMemory()
	mem.AttachROM(rom)

	mc := cpu.NewCPU(newRandom(), mem)
	mc.HardReset(true)

	return mc, mem
}

// execute sets the instruction registers directly and steps the CPU once.
func execute(mc *cpu.CPU, opcode uint8, data uint8) {
	mc.Reg.IR = opcode
	mc.Reg.D = data
	mc.Step()
}
