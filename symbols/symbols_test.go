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

package symbols_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/symbols"
	"github.com/jetsetilly/gotron/test"
)

const symbolsFile = `z 0x30 2 vPC
z 48 2 vPCdup
z 0x80 1 oneConst
l 0x0000 reset
l 0x0100 videoLoop
l 0x00f0 timing

p 0x0001 lo videoLoop
p 0x0002 hi videoLoop
p 0x0003 add timing 1
p 0x0004 zp vPC
p 0x0005 add hi videoLoop lo timing
p 0x0006 1

this line is rubbish
z 0x30 vPC
l reset
p 0x0007 add timing
`

func TestReadSymbols(t *testing.T) {
	sym, err := symbols.ReadSymbols(strings.NewReader(symbolsFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(sym.ZeroPage), 3)
	test.ExpectEquality(t, sym.Labels.Len(), 3)
	test.ExpectEquality(t, len(sym.Placeholders), 6)
	test.ExpectEquality(t, sym.Labels.MaxWidth(), len("videoLoop"))

	l, ok := sym.Label(0x0100)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "videoLoop")

	_, ok = sym.Label(0x0101)
	test.ExpectFailure(t, ok)
}

func TestPlaceholders(t *testing.T) {
	sym, err := symbols.ReadSymbols(strings.NewReader(symbolsFile))
	test.DemandSuccess(t, err)

	expected := map[uint16]string{
		0x0001: "lo(videoLoop)",
		0x0002: "hi(videoLoop)",
		0x0003: "timing add 1",
		0x0004: "vPC",
		0x0005: "hi(videoLoop) add lo(timing)",
		0x0006: "1",
	}

	for a, s := range expected {
		p, ok := sym.Placeholder(a)
		if test.ExpectSuccess(t, ok, a) {
			test.ExpectEquality(t, p.String(), s, a)
		}
	}

	// the truncated expression was not added
	_, ok := sym.Placeholder(0x0007)
	test.ExpectFailure(t, ok)
}

func TestLabelBefore(t *testing.T) {
	sym, err := symbols.ReadSymbols(strings.NewReader(symbolsFile))
	test.DemandSuccess(t, err)

	a, l, ok := sym.LabelBefore(0x0010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x0000))
	test.ExpectEquality(t, l, "reset")

	a, l, ok = sym.LabelBefore(0x00f0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x00f0))
	test.ExpectEquality(t, l, "timing")

	a, l, ok = sym.LabelBefore(0xffff)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x0100))
	test.ExpectEquality(t, l, "videoLoop")

	sym = symbols.NewSymbols()
	_, _, ok = sym.LabelBefore(0x1000)
	test.ExpectFailure(t, ok)
}

func TestSearchAndVariables(t *testing.T) {
	sym, err := symbols.ReadSymbols(strings.NewReader(symbolsFile))
	test.DemandSuccess(t, err)

	a, ok := sym.SearchLabel("VIDEOLOOP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x0100))

	_, ok = sym.SearchLabel("missing")
	test.ExpectFailure(t, ok)

	v, ok := sym.Variable(0x31)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.Name, "vPC")

	_, ok = sym.Variable(0x32)
	test.ExpectFailure(t, ok)

	_, ok = sym.Variable(0x130)
	test.ExpectFailure(t, ok)
}

func TestListSymbols(t *testing.T) {
	sym, err := symbols.ReadSymbols(strings.NewReader("l 0x10 start\nz 0x20 1 counter\n"))
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	sym.ListSymbols(w)
	test.ExpectSuccess(t, w.Compare("Labels\n------\n$0010 -> start\n\nZero Page\n---------\n$20 -> counter (1)\n"))
}

func TestMissingFile(t *testing.T) {
	_, err := symbols.ReadSymbolsFile("/no/such/file.sym")
	test.ExpectSuccess(t, curated.Is(err, symbols.SymbolsFileError))
}
