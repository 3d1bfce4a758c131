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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/test"
)

type constFiller uint8

func (f constFiller) Uint8() uint8 {
	return uint8(f)
}

func TestROM(t *testing.T) {
	words := []memory.Word{{Opcode: 0x00, Data: 0x42}, {Opcode: 0xc2, Data: 0x10}}

	rom, err := memory.NewROM(words, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 2)
	test.ExpectEquality(t, rom.Fetch(1), memory.Word{Opcode: 0xc2, Data: 0x10})
	test.ExpectEquality(t, rom.Fetch(2), memory.Word{})
	test.ExpectEquality(t, rom.Fetch(0xffff), memory.Word{})

	rom, err = memory.NewROM(words, constFiller(0xaa))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Fetch(0), words[0])
	test.ExpectEquality(t, rom.Fetch(0xffff), memory.Word{Opcode: 0xaa, Data: 0xaa})

	_, err = memory.NewROM(make([]memory.Word, memory.ROMSize+1), nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ROMTooLarge))

	_, err = memory.NewROM(make([]memory.Word, memory.ROMSize), nil)
	test.ExpectSuccess(t, err)
}

func TestRAMMasking(t *testing.T) {
	ram := memory.NewRAM()

	prev := ram.Write(0x8010, 0x7a)
	test.ExpectEquality(t, prev, uint8(0x00))
	test.ExpectEquality(t, ram.Read(0x0010), uint8(0x7a))
	test.ExpectEquality(t, ram.Read(0xffff), ram.Read(0x7fff))

	prev = ram.Write(0x0010, 0x01)
	test.ExpectEquality(t, prev, uint8(0x7a))

	snap := ram.Snapshot()
	ram.Clear()
	test.ExpectEquality(t, ram.Read(0x0010), uint8(0x00))
	test.ExpectEquality(t, snap.Read(0x0010), uint8(0x01))
}

func TestMemory(t *testing.T) {
	mem := memory.NewMemory()
	mem.Poke(0x1234, 0x56)
	test.ExpectEquality(t, mem.Peek(0x9234), uint8(0x56))

	mem.RAM.Randomise(func(b []uint8) {
		for i := range b {
			b[i] = 0x11
		}
	})
	test.ExpectEquality(t, mem.Peek(0x7fff), uint8(0x11))
}
