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
	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/romloader"
	"github.com/jetsetilly/gotron/symbols"
)

// Sentinal errors.
const (
	DisasmError = "disassembly: %v"
)

// Disassembly represents the annotated disassembly of a Gigatron ROM.
type Disassembly struct {
	rom *memory.ROM

	// symbols used to format disassembly output. never nil
	Sym *symbols.Symbols
}

// FromROM disassembles an instance of memory.ROM. The symbols argument can be
// nil.
func FromROM(rom *memory.ROM, sym *symbols.Symbols) *Disassembly {
	if sym == nil {
		sym = symbols.NewSymbols()
	}
	return &Disassembly{
		rom: rom,
		Sym: sym,
	}
}

// FromLoader loads the ROM image and returns a disassembly of it. Useful for
// one-shot disassemblies, like the "disasm" mode. The symfile argument can be
// empty, in which case no symbols are used.
func FromLoader(ld romloader.Loader, symfile string) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	rom, err := ld.ROM(nil)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	var sym *symbols.Symbols
	if symfile != "" {
		sym, err = symbols.ReadSymbolsFile(symfile)
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
	}

	return FromROM(rom, sym), nil
}

// Size returns the number of words in the disassembly. This is the number of
// words in the loaded image and not the size of the ROM address space.
func (dsm *Disassembly) Size() int {
	return dsm.rom.Size()
}

// GetEntryByAddress returns the disassembly entry for the ROM word at the
// address. Any address in the ROM can be disassembled, not only those
// within the loaded image.
func (dsm *Disassembly) GetEntryByAddress(address uint16) Entry {
	return Format(address, dsm.rom.Fetch(address), dsm.Sym)
}
