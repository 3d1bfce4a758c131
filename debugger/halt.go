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
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/television"
)

// onStep is the hardware.StepCallback used by the debugger.
func (dbg *Debugger) onStep(fwd execution.Effect, inv execution.Effect) error {
	dbg.Rewind.Record(inv)
	dbg.lastPC = inv.QueuedPC

	if w, ok := dbg.watches.check(fwd.Access); ok {
		dbg.watchLog.add(watchHit{
			cycle:  dbg.gig.Cycles(),
			pc:     inv.QueuedPC,
			access: fwd.Access,
		})
		dbg.haltf("watch %s: %s", w, fwd.Access)
	}

	if dbg.breakpoints.check(fwd.QueuedPC) {
		dbg.haltf("break at %s", dbg.formatAddress(fwd.QueuedPC))
	}

	return nil
}

func (dbg *Debugger) haltf(format string, args ...any) {
	dbg.halt = append(dbg.halt, fmt.Sprintf(format, args...))
}

// runUntil steps the emulation until a halt condition is met or until the
// limit function returns true. A limit of nil means that the emulation runs
// until a halt condition is met. Returns the number of cycles executed.
func (dbg *Debugger) runUntil(state govern.State, limit func(n int, res television.Result) bool) (int, error) {
	dbg.halt = dbg.halt[:0]

	dbg.setState(state)
	defer dbg.setState(govern.Paused)

	var n int
	var filter int

	for {
		res, err := dbg.gig.Step(dbg.onStep)
		n++

		if err != nil {
			if !curated.Is(err, hardware.FrameTimeout) {
				return n, err
			}
			if dbg.Prefs.HaltFrameTimeout.Bool() {
				dbg.haltf("%v", err)
			}
		}

		if res.HorizTimingError && dbg.Prefs.HaltHSync.Bool() {
			dbg.haltf("horizontal timing error (%d columns)", dbg.gig.TV.LastHorizError())
		}

		filter++
		if filter >= hardware.PerformanceBrake {
			filter = 0
			select {
			case <-dbg.events.IntEvents:
				dbg.haltf("interrupted")
			case f := <-dbg.events.RawEvents:
				f()
			default:
			}
		}

		if len(dbg.halt) > 0 {
			break // for loop
		}

		if limit != nil && limit(n, res) {
			break // for loop
		}
	}

	for _, s := range dbg.halt {
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("halted: %s", s))
	}

	return n, nil
}
