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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gotron/hardware/cpu/registers"
)

// AccessKind indicates the type of memory access made during a cycle.
type AccessKind int

// List of valid AccessKind values.
const (
	NoAccess AccessKind = iota
	Read
	Write
)

func (k AccessKind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "none"
}

// MemoryAccess describes the single RAM access that can occur in a cycle.
// The Gigatron has one data bus so there can be no more than one.
type MemoryAccess struct {
	Kind AccessKind

	// address has already been masked to the RAM address range
	Address uint16

	// the value read or the value written
	Value uint8

	// the value in RAM before a write. same as Value for reads
	Prev uint8
}

func (a MemoryAccess) String() string {
	switch a.Kind {
	case Read:
		return fmt.Sprintf("read %04x -> %02x", a.Address, a.Value)
	case Write:
		return fmt.Sprintf("write %04x: %02x -> %02x", a.Address, a.Prev, a.Value)
	}
	return "no access"
}

// Invert returns the access that undoes this access. A read inverts to
// itself.
func (a MemoryAccess) Invert() MemoryAccess {
	if a.Kind == Write {
		a.Value, a.Prev = a.Prev, a.Value
	}
	return a
}

// Effect is the complete result of one CPU cycle.
type Effect struct {
	// register file after the cycle
	Reg registers.File

	// the value of the program counter before the cycle. this is the address
	// of the instruction that will be executed next cycle
	QueuedPC uint16

	Access MemoryAccess
}

func (e Effect) String() string {
	return fmt.Sprintf("%04x: %s (%s)", e.QueuedPC, e.Reg, e.Access)
}
