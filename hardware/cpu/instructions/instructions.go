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

package instructions

import "fmt"

// Operation is the 3bit primary opcode field.
type Operation uint8

// List of valid Operation values.
const (
	Load Operation = iota
	And
	Or
	Xor
	Add
	Sub
	Store
	Jump
)

const numOperations = 8

func (op Operation) String() string {
	switch op {
	case Load:
		return "Load"
	case And:
		return "And"
	case Or:
		return "Or"
	case Xor:
		return "Xor"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Store:
		return "Store"
	case Jump:
		return "Jump"
	}
	return fmt.Sprintf("Operation(%d)", uint8(op))
}

// Mode is the 3bit addressing mode field. For the Jump operation the field
// selects the branch condition instead. The names of the values reflect both
// meanings.
type Mode uint8

// List of valid Mode values.
const (
	// [D] -> AC or unconditional far jump
	AccDFar Mode = iota

	// [X] -> AC or branch if greater than zero
	AccXGt

	// [Y,D] -> AC or branch if less than zero
	AccYDLt

	// [Y,X] -> AC or branch if not zero
	AccYXNe

	// [D] -> X or branch if zero
	XDEq

	// [D] -> Y or branch if greater than or equal to zero
	YDGe

	// [D] -> OUT or branch if less than or equal to zero
	OutDLe

	// [Y,X++] -> OUT or branch always (within page)
	OutYXppBra
)

const numModes = 8

func (m Mode) String() string {
	switch m {
	case AccDFar:
		return "AccDFar"
	case AccXGt:
		return "AccXGt"
	case AccYDLt:
		return "AccYDLt"
	case AccYXNe:
		return "AccYXNe"
	case XDEq:
		return "XDEq"
	case YDGe:
		return "YDGe"
	case OutDLe:
		return "OutDLe"
	case OutYXppBra:
		return "OutYXppBra"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Bus is the 2bit field selecting the source of the ALU operand.
type Bus uint8

// List of valid Bus values.
const (
	Data Bus = iota
	RAM
	Acc
	In
)

const numBuses = 4

func (b Bus) String() string {
	switch b {
	case Data:
		return "Data"
	case RAM:
		return "RAM"
	case Acc:
		return "Acc"
	case In:
		return "In"
	}
	return fmt.Sprintf("Bus(%d)", uint8(b))
}

// Instruction is a decoded opcode.
type Instruction struct {
	Operation Operation
	Mode      Mode
	Bus       Bus
}

// NOP is the instruction substituted for an Instruction that has somehow
// been given out of range fields. It loads the accumulator with itself.
var NOP = Instruction{Operation: Load, Mode: AccDFar, Bus: Acc}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s %s %s", ins.Operation, ins.Mode, ins.Bus)
}

// Valid returns false if any field is out of range.
func (ins Instruction) Valid() bool {
	return ins.Operation < numOperations && ins.Mode < numModes && ins.Bus < numBuses
}

// IsWrite returns true if the instruction writes to RAM.
func (ins Instruction) IsWrite() bool {
	return ins.Operation == Store
}

// IsJump returns true if the instruction is a jump or branch.
func (ins Instruction) IsJump() bool {
	return ins.Operation == Jump
}

// Decode an opcode. The result is always a valid Instruction.
func Decode(opcode uint8) Instruction {
	ins := Instruction{
		Operation: Operation(opcode >> 5),
		Mode:      Mode((opcode >> 2) & 0x07),
		Bus:       Bus(opcode & 0x03),
	}
	return ins.Normalise()
}

// Normalise returns the instruction unchanged if it is valid and NOP if it
// is not.
func (ins Instruction) Normalise() Instruction {
	if !ins.Valid() {
		return NOP
	}
	return ins
}

// Encode the instruction as an opcode. Encoding a decoded opcode returns the
// original opcode.
func (ins Instruction) Encode() uint8 {
	ins = ins.Normalise()
	return uint8(ins.Operation)<<5 | uint8(ins.Mode)<<2 | uint8(ins.Bus)
}
