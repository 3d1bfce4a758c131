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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gotron/hardware/cpu/instructions"
	"github.com/jetsetilly/gotron/test"
)

func TestDecodeTotality(t *testing.T) {
	seen := make(map[instructions.Instruction]bool)

	for op := 0; op <= 0xff; op++ {
		ins := instructions.Decode(uint8(op))
		test.ExpectSuccess(t, ins.Valid(), op)
		test.ExpectEquality(t, ins.Encode(), uint8(op))
		seen[ins] = true
	}

	// every byte maps to a distinct combination of the 8x8x4 fields
	test.ExpectEquality(t, len(seen), 256)
}

func TestKnownOpcodes(t *testing.T) {
	ins := instructions.Decode(0x00)
	test.ExpectEquality(t, ins, instructions.Instruction{Operation: instructions.Load, Mode: instructions.AccDFar, Bus: instructions.Data})

	// st [$xx]
	ins = instructions.Decode(0xc2)
	test.ExpectEquality(t, ins, instructions.Instruction{Operation: instructions.Store, Mode: instructions.AccDFar, Bus: instructions.Acc})
	test.ExpectSuccess(t, ins.IsWrite())

	// jmp y,$xx
	ins = instructions.Decode(0xe0)
	test.ExpectEquality(t, ins, instructions.Instruction{Operation: instructions.Jump, Mode: instructions.AccDFar, Bus: instructions.Data})
	test.ExpectSuccess(t, ins.IsJump())

	// bra $xx
	ins = instructions.Decode(0xfc)
	test.ExpectEquality(t, ins.Mode, instructions.OutYXppBra)

	// ld in
	ins = instructions.Decode(0x03)
	test.ExpectEquality(t, ins.Bus, instructions.In)

	test.ExpectEquality(t, instructions.NOP.Encode(), uint8(0x02))
}

func TestNormalise(t *testing.T) {
	bad := instructions.Instruction{Operation: 9, Mode: instructions.XDEq, Bus: instructions.RAM}
	test.ExpectFailure(t, bad.Valid())
	test.ExpectEquality(t, bad.Normalise(), instructions.NOP)
	test.ExpectEquality(t, bad.Encode(), instructions.NOP.Encode())

	bad = instructions.Instruction{Operation: instructions.Add, Mode: 8, Bus: instructions.RAM}
	test.ExpectEquality(t, bad.Normalise(), instructions.NOP)

	bad = instructions.Instruction{Operation: instructions.Add, Mode: instructions.XDEq, Bus: 4}
	test.ExpectEquality(t, bad.Normalise(), instructions.NOP)
}

func TestStringers(t *testing.T) {
	test.ExpectEquality(t, instructions.Decode(0xc2).String(), "Store AccDFar Acc")
	test.ExpectEquality(t, instructions.Operation(12).String(), "Operation(12)")
}
