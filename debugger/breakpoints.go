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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/terminal"
)

// breakpoints halt the emulation when the instruction at the address is about
// to be executed.
type breakpoints struct {
	dbg *Debugger

	breaks []uint16
}

// newBreakpoints is the preferred method of initialisation for breakpoints.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

func (bp *breakpoints) clear() {
	bp.breaks = make([]uint16, 0, 10)
}

func (bp *breakpoints) add(addr uint16) error {
	for _, b := range bp.breaks {
		if b == addr {
			return curated.Errorf("breakpoint already exists (%s)", bp.dbg.formatAddress(addr))
		}
	}
	bp.breaks = append(bp.breaks, addr)
	return nil
}

func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return curated.Errorf("breakpoint #%d is not defined", num)
	}
	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)
	return nil
}

// check returns true if there is a breakpoint at the address.
func (bp *breakpoints) check(addr uint16) bool {
	for _, b := range bp.breaks {
		if b == addr {
			return true
		}
	}
	return false
}

func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%d: %s", i, bp.dbg.formatAddress(b)))
	}
}
