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
	"fmt"
	"sort"
	"strings"
)

// Table maps an address to a symbol. it also keeps track of the widest symbol
// in the Table.
type Table struct {
	// indexed by address
	Entries map[uint16]string

	// index of keys in Entries. sortable through the sort.Interface
	idx []uint16

	// the longest symbol in the Entries map
	maxWidth int
}

// newTable is the preferred method of initialisation for the Table type.
func newTable() *Table {
	return &Table{
		Entries: make(map[uint16]string),
		idx:     make([]uint16, 0),
	}
}

func (t Table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("$%04x -> %s\n", a, t.Entries[a]))
	}
	return s.String()
}

// add symbol to table. an existing symbol for the address is replaced.
func (t *Table) add(addr uint16, symbol string) {
	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}

	if _, ok := t.Entries[addr]; ok {
		t.Entries[addr] = symbol
		return
	}

	t.Entries[addr] = symbol
	t.idx = append(t.idx, addr)
	sort.Sort(t)
}

// search is case-insensitive.
func (t Table) search(symbol string) (uint16, bool) {
	for _, a := range t.idx {
		if strings.EqualFold(t.Entries[a], symbol) {
			return a, true
		}
	}
	return 0, false
}

// before returns the entry with the highest address that is not greater than
// addr.
func (t Table) before(addr uint16) (uint16, string, bool) {
	i := sort.Search(len(t.idx), func(i int) bool {
		return t.idx[i] > addr
	})
	if i == 0 {
		return 0, "", false
	}
	a := t.idx[i-1]
	return a, t.Entries[a], true
}

// MaxWidth returns the length of the longest symbol in the table.
func (t Table) MaxWidth() int {
	return t.maxWidth
}

// Len implements the sort.Interface.
func (t Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
