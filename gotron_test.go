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

package main

import (
	"testing"

	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/hardware/television/specification"
	"github.com/jetsetilly/gotron/modalflag"
	"github.com/jetsetilly/gotron/test"
)

func TestBuildSpec(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-htiming", "16,96,48,640", "-vtiming", "1,2,3,10"})
	f := addEmulationFlags(md)
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	spec, err := f.buildSpec()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.ID, "CUSTOM")
	test.ExpectEquality(t, spec.Vert.Visible, 10)
	test.ExpectEquality(t, spec.Horiz.Total(), 800)
}

func TestBuildSpecBadTiming(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-htiming", "16,96"})
	f := addEmulationFlags(md)
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	_, err = f.buildSpec()
	test.ExpectFailure(t, err)
}

func TestSeedFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-seed", "0"})
	f := addEmulationFlags(md)
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	a, err := f.newGigatron(md)
	test.DemandSuccess(t, err)
	b, err := f.newGigatron(md)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a.Instance.Random.Uint8(), b.Instance.Random.Uint8())
}

// a short loop that exercises the ALU, a RAM write and the television
func BenchmarkStep(b *testing.B) {
	tv, err := television.NewTelevision(specification.SpecVGA)
	if err != nil {
		b.Fatal(err)
	}

	gig, err := hardware.NewGigatron(tv, nil)
	if err != nil {
		b.Fatal(err)
	}

	rom, err := memory.NewROM([]memory.Word{
		{Opcode: 0x18, Data: 0xc0}, // ld $c0,out
		{Opcode: 0x80, Data: 0x01}, // adda $01
		{Opcode: 0xc2, Data: 0x10}, // st [$10]
		{Opcode: 0x18, Data: 0x40}, // ld $40,out
		{Opcode: 0xfc, Data: 0x00}, // bra $00
		{Opcode: 0x02, Data: 0x00}, // nop
	}, nil)
	if err != nil {
		b.Fatal(err)
	}
	gig.AttachROM(rom)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gig.Step(nil); err != nil {
			b.Fatal(err)
		}
	}
}
