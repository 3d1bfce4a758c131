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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// show the label that precedes the instruction when the instruction is
	// not itself labelled. only used by WriteRange()
	Context bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for a := 0; a < dsm.Size(); a++ {
		dsm.WriteLine(output, attr, dsm.GetEntryByAddress(uint16(a)))
	}
}

// WriteRange writes count entries starting from the address. The address
// wraps at the end of the ROM.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, address uint16, count int) {
	if attr.Context {
		if a, l, ok := dsm.Sym.LabelBefore(address); ok && a != address {
			output.Write([]byte(fmt.Sprintf("%s: (+%d)\n", l, address-a)))
		}
	}

	for i := 0; i < count; i++ {
		dsm.WriteLine(output, attr, dsm.GetEntryByAddress(address))
		address++
	}
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) {
	if e.Label != "" {
		output.Write([]byte(fmt.Sprintf("%s:\n", e.Label)))
	}

	if attr.ByteCode {
		output.Write([]byte(e.Bytecode()))
		output.Write([]byte("  "))
	}

	output.Write([]byte(e.String()))
	output.Write([]byte("\n"))
}
