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
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/memory"
)

type watchEvent int

const (
	watchEventAny watchEvent = iota
	watchEventRead
	watchEventWrite
)

func (ev watchEvent) String() string {
	switch ev {
	case watchEventRead:
		return "read"
	case watchEventWrite:
		return "write"
	}
	return "any"
}

func (ev watchEvent) match(kind execution.AccessKind) bool {
	switch ev {
	case watchEventRead:
		return kind == execution.Read
	case watchEventWrite:
		return kind == execution.Write
	}
	return kind != execution.NoAccess
}

type watcher struct {
	address uint16
	event   watchEvent
}

func (wtr watcher) String() string {
	return fmt.Sprintf("$%04x (%s)", wtr.address, wtr.event)
}

// watches halt the emulation when a RAM address is accessed.
type watches struct {
	dbg *Debugger

	watches []watcher
}

// newWatches is the preferred method of initialisation for watches.
func newWatches(dbg *Debugger) *watches {
	wtc := &watches{dbg: dbg}
	wtc.clear()
	return wtc
}

func (wtc *watches) clear() {
	wtc.watches = make([]watcher, 0, 10)
}

func (wtc *watches) add(addr uint16, event watchEvent) error {
	w := watcher{address: addr & memory.RAMMask, event: event}
	for _, x := range wtc.watches {
		if x == w {
			return curated.Errorf("watch already exists (%s)", w)
		}
	}
	wtc.watches = append(wtc.watches, w)
	wtc.dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("watching %s", w))
	return nil
}

func (wtc *watches) drop(num int) error {
	if num < 0 || num >= len(wtc.watches) {
		return curated.Errorf("watch #%d is not defined", num)
	}
	wtc.watches = append(wtc.watches[:num], wtc.watches[num+1:]...)
	return nil
}

// check the memory access against every watch. returns the matching watch.
func (wtc *watches) check(acc execution.MemoryAccess) (watcher, bool) {
	if acc.Kind == execution.NoAccess {
		return watcher{}, false
	}
	for _, w := range wtc.watches {
		if w.address == acc.Address && w.event.match(acc.Kind) {
			return w, true
		}
	}
	return watcher{}, false
}

func (wtc *watches) list() {
	if len(wtc.watches) == 0 {
		wtc.dbg.printLine(terminal.StyleFeedback, "no watches")
		return
	}
	for i, w := range wtc.watches {
		wtc.dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%d: %s", i, w))
	}
}

// maximum number of entries in the watch log.
const maxWatchLog = 100

// watchHit is an entry in the watch log.
type watchHit struct {
	cycle uint64

	// address of the instruction that made the access
	pc uint16

	access execution.MemoryAccess
}

func (h watchHit) String() string {
	return fmt.Sprintf("cycle %d: %04x %s", h.cycle, h.pc, h.access)
}

// watchLog is a circular list of the most recent watch hits.
type watchLog struct {
	hits  [maxWatchLog]watchHit
	start int
	count int
}

func (l *watchLog) add(h watchHit) {
	if l.count < maxWatchLog {
		l.hits[(l.start+l.count)%maxWatchLog] = h
		l.count++
		return
	}
	l.hits[l.start] = h
	l.start = (l.start + 1) % maxWatchLog
}

func (l *watchLog) clear() {
	l.start = 0
	l.count = 0
}

// entries returns the hits in chronological order.
func (l *watchLog) entries() []watchHit {
	e := make([]watchHit, l.count)
	for i := range e {
		e[i] = l.hits[(l.start+i)%maxWatchLog]
	}
	return e
}
