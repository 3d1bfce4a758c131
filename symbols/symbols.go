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

package symbols

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/logger"
)

// Sentinal errors.
const (
	SymbolsFileError = "symbols: %v"
)

// Variable is a named region of zero page RAM.
type Variable struct {
	Address uint8
	Length  uint8
	Name    string
}

func (v Variable) String() string {
	return fmt.Sprintf("%s ($%02x, %d bytes)", v.Name, v.Address, v.Length)
}

// Symbols is the symbols table for the loaded ROM.
type Symbols struct {
	Labels       *Table
	ZeroPage     []Variable
	Placeholders map[uint16]Placeholder
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The symbols table will be empty.
func NewSymbols() *Symbols {
	return &Symbols{
		Labels:       newTable(),
		Placeholders: make(map[uint16]Placeholder),
	}
}

// ReadSymbolsFile initialises a symbols table from the named file.
func ReadSymbolsFile(filename string) (*Symbols, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}
	defer f.Close()

	return ReadSymbols(f)
}

// ReadSymbols initialises a symbols table from an io.Reader.
func ReadSymbols(r io.Reader) (*Symbols, error) {
	sym := NewSymbols()

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		p := strings.Fields(scanner.Text())
		if len(p) == 0 {
			continue // for loop
		}
		if err := sym.parseRecord(p); err != nil {
			logger.Logf(logger.Allow, "symbols", "line %d: %v", ln, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}

	sort.SliceStable(sym.ZeroPage, func(i, j int) bool {
		return sym.ZeroPage[i].Address < sym.ZeroPage[j].Address
	})

	return sym, nil
}

func (sym *Symbols) parseRecord(p []string) error {
	switch p[0] {
	case "z":
		if len(p) != 4 {
			return fmt.Errorf("zero page record should have 3 fields")
		}
		addr, err := strconv.ParseUint(p[1], 0, 8)
		if err != nil {
			return err
		}
		length, err := strconv.ParseUint(p[2], 0, 8)
		if err != nil {
			return err
		}
		sym.ZeroPage = append(sym.ZeroPage, Variable{
			Address: uint8(addr),
			Length:  uint8(length),
			Name:    p[3],
		})

	case "l":
		if len(p) != 3 {
			return fmt.Errorf("label record should have 2 fields")
		}
		addr, err := strconv.ParseUint(p[1], 0, 16)
		if err != nil {
			return err
		}
		sym.Labels.add(uint16(addr), p[2])

	case "p":
		if len(p) < 3 {
			return fmt.Errorf("placeholder record should have at least 2 fields")
		}
		addr, err := strconv.ParseUint(p[1], 0, 16)
		if err != nil {
			return err
		}
		ph, _, err := parsePlaceholder(p[2:])
		if err != nil {
			return err
		}
		sym.Placeholders[uint16(addr)] = ph

	default:
		return fmt.Errorf("unknown record type (%s)", p[0])
	}

	return nil
}

// Label returns the label at the address.
func (sym *Symbols) Label(addr uint16) (string, bool) {
	s, ok := sym.Labels.Entries[addr]
	return s, ok
}

// LabelBefore returns the nearest label at or before the address.
func (sym *Symbols) LabelBefore(addr uint16) (uint16, string, bool) {
	return sym.Labels.before(addr)
}

// SearchLabel returns the address of the named label. Matching is
// case-insensitive.
func (sym *Symbols) SearchLabel(label string) (uint16, bool) {
	return sym.Labels.search(label)
}

// Placeholder returns the placeholder for the data byte at the address.
func (sym *Symbols) Placeholder(addr uint16) (Placeholder, bool) {
	p, ok := sym.Placeholders[addr]
	return p, ok
}

// Variable returns the zero page variable that covers the RAM address.
func (sym *Symbols) Variable(addr uint16) (Variable, bool) {
	if addr > 0xff {
		return Variable{}, false
	}
	for _, v := range sym.ZeroPage {
		if addr >= uint16(v.Address) && addr < uint16(v.Address)+uint16(v.Length) {
			return v, true
		}
	}
	return Variable{}, false
}

// ListSymbols outputs every label and zero page variable.
func (sym *Symbols) ListSymbols(output io.Writer) {
	output.Write([]byte("Labels\n------\n"))
	output.Write([]byte(sym.Labels.String()))
	output.Write([]byte("\nZero Page\n---------\n"))
	for _, v := range sym.ZeroPage {
		output.Write([]byte(fmt.Sprintf("$%02x -> %s (%d)\n", v.Address, v.Name, v.Length)))
	}
}
