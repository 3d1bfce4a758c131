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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/cpu/instructions"
	"github.com/jetsetilly/gotron/hardware/cpu/registers"
	"github.com/jetsetilly/gotron/hardware/memory"
)

// Entropy is the source of values for undefined state.
type Entropy interface {
	Uint8() uint8
	Fill([]uint8)
}

// CPU implements the Gigatron CPU.
type CPU struct {
	Reg registers.File

	// address of the instruction in the IR register. the instruction will be
	// executed on the next call to Step()
	QueuedPC uint16

	mem *memory.Memory
	rnd Entropy

	// value of the input port
	input uint8
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// CPU will be in an undefined state until HardReset() is called.
func NewCPU(rnd Entropy, mem *memory.Memory) *CPU {
	return &CPU{
		mem:   mem,
		rnd:   rnd,
		input: 0xff,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%04x: %s", mc.QueuedPC, mc.Reg)
}

// HardReset is the equivalent of powering on the Gigatron. Registers and RAM
// are randomised if the randomise argument is true, otherwise they are set
// to zero. A soft reset follows.
func (mc *CPU) HardReset(randomise bool) {
	if randomise {
		mc.Reg = registers.File{
			IR:    mc.rnd.Uint8(),
			D:     mc.rnd.Uint8(),
			AC:    mc.rnd.Uint8(),
			X:     mc.rnd.Uint8(),
			Y:     mc.rnd.Uint8(),
			OUT:   mc.rnd.Uint8(),
			Undef: mc.rnd.Uint8(),
		}
		mc.mem.RAM.Randomise(mc.rnd.Fill)
	} else {
		mc.Reg = registers.File{}
		mc.mem.RAM.Clear()
	}
	mc.SoftReset()
}

// SoftReset is the equivalent of pressing the reset button. RAM and most
// registers are unchanged. The pipeline is flushed so that the next cycle
// executes a NOP and fetches the ROM word at address zero.
func (mc *CPU) SoftReset() {
	mc.Reg.PC = 0
	mc.Reg.IR = instructions.NOP.Encode()
	mc.Reg.D = 0
	mc.QueuedPC = 0
}

// SetInput sets the value of the input port. The value will be used by every
// subsequent cycle until it is changed.
func (mc *CPU) SetInput(v uint8) {
	mc.input = v
}

// Input returns the current value of the input port.
func (mc *CPU) Input() uint8 {
	return mc.input
}

// destinations of the ALU result
type destination int

const (
	destNone destination = iota
	destAC
	destX
	destY
	destOUT
)

// Clock computes the effect of the next cycle. The state of the CPU is not
// changed.
func (mc *CPU) Clock() execution.Effect {
	reg := mc.Reg

	e := execution.Effect{
		Reg:      reg,
		QueuedPC: reg.PC,
	}
	next := &e.Reg

	// fetch happens unconditionally. the fetched word will be executed next
	// cycle
	w := mc.mem.ROM.Fetch(reg.PC)
	next.IR = w.Opcode
	next.D = w.Data
	next.Undef = mc.rnd.Uint8()

	ins := instructions.Decode(reg.IR)
	write := ins.IsWrite()
	jump := ins.IsJump()

	lo := reg.D
	var hi uint8
	dest := destNone
	incX := false

	if !jump {
		switch ins.Mode {
		case instructions.AccDFar:
			dest = destAC
		case instructions.AccXGt:
			dest = destAC
			lo = reg.X
		case instructions.AccYDLt:
			dest = destAC
			hi = reg.Y
		case instructions.AccYXNe:
			dest = destAC
			lo = reg.X
			hi = reg.Y
		case instructions.XDEq:
			dest = destX
		case instructions.YDGe:
			dest = destY
		case instructions.OutDLe:
			dest = destOUT
		case instructions.OutYXppBra:
			dest = destOUT
			lo = reg.X
			hi = reg.Y
			incX = true
		}

		// the X and Y destinations survive a write
		if write && (dest == destAC || dest == destOUT) {
			dest = destNone
		}
	}

	addr := (uint16(hi)<<8 | uint16(lo)) & memory.RAMMask

	var b uint8
	switch ins.Bus {
	case instructions.Data:
		b = reg.D
	case instructions.RAM:
		if write {
			// nothing is driving the bus
			b = reg.Undef
		} else {
			b = mc.mem.RAM.Read(addr)
			e.Access = execution.MemoryAccess{
				Kind:    execution.Read,
				Address: addr,
				Value:   b,
				Prev:    b,
			}
		}
	case instructions.Acc:
		b = reg.AC
	case instructions.In:
		b = mc.input
	}

	if write {
		e.Access = execution.MemoryAccess{
			Kind:    execution.Write,
			Address: addr,
			Value:   b,
			Prev:    mc.mem.RAM.Read(addr),
		}
	}

	var alu uint8
	switch ins.Operation {
	case instructions.Load:
		alu = b
	case instructions.And:
		alu = reg.AC & b
	case instructions.Or:
		alu = reg.AC | b
	case instructions.Xor:
		alu = reg.AC ^ b
	case instructions.Add:
		alu = reg.AC + b
	case instructions.Sub:
		alu = reg.AC - b
	case instructions.Store:
		alu = reg.AC
	case instructions.Jump:
		// the ALU still produces a value but there is no destination for it
		alu = -reg.AC
	}

	switch dest {
	case destAC:
		next.AC = alu
	case destX:
		next.X = alu
	case destY:
		next.Y = alu
	case destOUT:
		next.OUT = alu
	}

	if incX {
		next.X = reg.X + 1
	}

	next.PC = reg.PC + 1
	if jump {
		if ins.Mode == instructions.AccDFar {
			next.PC = uint16(reg.Y)<<8 | uint16(b)
		} else if branchTaken(ins.Mode, reg.AC) {
			next.PC = reg.PC&0xff00 | uint16(b)
		}
	}

	return e
}

// branchTaken uses the mode as a mask of the conditions under which the
// branch is taken. bit 0 is set when AC is greater than zero, bit 1 when AC is
// negative and bit 2 when AC is zero.
func branchTaken(mode instructions.Mode, ac uint8) bool {
	cond := ac >> 7
	if ac == 0 {
		cond += 2
	}
	return uint8(mode)&(1<<cond) != 0
}

// Apply an effect to the CPU. The returned effect will undo the changes when
// it is applied in turn.
func (mc *CPU) Apply(e execution.Effect) execution.Effect {
	inv := execution.Effect{
		Reg:      mc.Reg,
		QueuedPC: mc.QueuedPC,
		Access:   e.Access,
	}

	if e.Access.Kind == execution.Write {
		prev := mc.mem.RAM.Write(e.Access.Address, e.Access.Value)
		inv.Access.Value = prev
		inv.Access.Prev = e.Access.Value
	}

	mc.Reg = e.Reg
	mc.QueuedPC = e.QueuedPC

	return inv
}

// Step the CPU forward one cycle. Returns the effect that was applied and
// the inverse of that effect.
func (mc *CPU) Step() (execution.Effect, execution.Effect) {
	e := mc.Clock()
	return e, mc.Apply(e)
}
