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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gotron/hardware/cpu/instructions"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/symbols"
)

// Entry is a disassembled ROM word.
type Entry struct {
	Address uint16
	Word    memory.Word
	Ins     instructions.Instruction

	// label at this address. empty string if there is no label
	Label string

	// the mnemonic padded to a fixed width
	Mnemonic string

	// the operand field. the data byte is represented by a placeholder if
	// one exists
	Operand string
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x  %s%s", e.Address, e.Mnemonic, e.Operand)
}

// Bytecode returns the opcode and data byte as hex.
func (e Entry) Bytecode() string {
	return fmt.Sprintf("%02x %02x", e.Word.Opcode, e.Word.Data)
}

// mnemonics for the non-jump operations. padded to a fixed width
var mnemonics = map[instructions.Operation]string{
	instructions.Load:  "ld   ",
	instructions.And:   "anda ",
	instructions.Or:    "ora  ",
	instructions.Xor:   "xora ",
	instructions.Add:   "adda ",
	instructions.Sub:   "suba ",
	instructions.Store: "st   ",
}

// for the jump operation the mode field selects the mnemonic
var jumpMnemonics = map[instructions.Mode]string{
	instructions.AccDFar:    "jmp  y,",
	instructions.AccXGt:     "bgt  ",
	instructions.AccYDLt:    "blt  ",
	instructions.AccYXNe:    "bne  ",
	instructions.XDEq:       "beq  ",
	instructions.YDGe:       "bge  ",
	instructions.OutDLe:     "ble  ",
	instructions.OutYXppBra: "bra  ",
}

// Format returns the mnemonic and operand of the ROM word at the address.
// The symbols argument can be nil.
func Format(address uint16, w memory.Word, sym *symbols.Symbols) Entry {
	ins := instructions.Decode(w.Opcode)

	e := Entry{
		Address: address,
		Word:    w,
		Ins:     ins,
	}

	data := fmt.Sprintf("$%02x", w.Data)
	if sym != nil {
		if l, ok := sym.Label(address); ok {
			e.Label = l
		}
		if p, ok := sym.Placeholder(address); ok {
			data = p.String()
		}
	}

	if ins.Operation == instructions.Jump {
		e.Mnemonic = jumpMnemonics[ins.Mode]
	} else {
		e.Mnemonic = mnemonics[ins.Operation]
	}

	// the store operation ignores the OUT destination
	out := ",out"
	if ins.Operation == instructions.Store {
		out = ""
	}

	// address and destination register
	var addr string
	var reg string

	if ins.Operation == instructions.Jump {
		addr = fmt.Sprintf("[%s]", data)
	} else {
		switch ins.Mode {
		case instructions.AccDFar:
			addr = fmt.Sprintf("[%s]", data)
		case instructions.AccXGt:
			addr = "[x]"
		case instructions.AccYDLt:
			addr = fmt.Sprintf("[y,%s]", data)
		case instructions.AccYXNe:
			addr = "[y,x]"
		case instructions.XDEq:
			addr = fmt.Sprintf("[%s]", data)
			reg = ",x"
		case instructions.YDGe:
			addr = fmt.Sprintf("[%s]", data)
			reg = ",y"
		case instructions.OutDLe:
			addr = fmt.Sprintf("[%s]", data)
			reg = out
		case instructions.OutYXppBra:
			addr = "[y,x++]"
			reg = out
		}
	}

	var bus string
	switch ins.Bus {
	case instructions.Data:
		bus = data
	case instructions.RAM:
		bus = addr
	case instructions.Acc:
		bus = "ac"
	case instructions.In:
		bus = "in"
	}

	if ins.Operation == instructions.Store {
		if ins.Bus == instructions.Acc {
			e.Operand = fmt.Sprintf("%s%s", addr, reg)
		} else {
			e.Operand = fmt.Sprintf("%s,%s%s", bus, addr, reg)
		}
	} else {
		e.Operand = fmt.Sprintf("%s%s", bus, reg)
	}

	return e
}
