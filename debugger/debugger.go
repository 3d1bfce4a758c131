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
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/debugger/terminal/commandline"
	"github.com/jetsetilly/gotron/disassembly"
	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/paths"
	"github.com/jetsetilly/gotron/prefs"
	"github.com/jetsetilly/gotron/rewind"
	"github.com/jetsetilly/gotron/romloader"
	"github.com/jetsetilly/gotron/symbols"
)

// Sentinal errors.
const (
	DebuggerError  = "debugger: %v"
	UnknownCommand = "debugger: unknown command (%s)"
)

// size of the RawEvents queue.
const rawEventsQueue = 64

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	gig *hardware.Gigatron

	// interface to the terminal
	term terminal.Terminal

	// disassembly of the attached ROM
	dsm *disassembly.Disassembly

	// history of inverse effects
	Rewind *rewind.Rewind

	Prefs *Preferences

	// every preference used by the emulation. hardware, rewind and debugger
	registry *prefs.Registry

	breakpoints *breakpoints
	watches     *watches
	watchLog    watchLog

	// address of the most recently executed instruction
	lastPC uint16

	// short name of the attached ROM
	romName string

	// reasons why the most recent run or step halted
	halt []string

	// the current state of the debugger. a value of govern.State
	state atomic.Int32

	events *terminal.ReadEvents
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The sym argument can be nil.
func NewDebugger(gig *hardware.Gigatron, term terminal.Terminal, sym *symbols.Symbols) (*Debugger, error) {
	dbg := &Debugger{
		gig:  gig,
		term: term,
		dsm:  disassembly.FromROM(gig.Mem.ROM, sym),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
			RawEvents: make(chan func(), rawEventsQueue),
		},
		Prefs:    newPreferences(),
		registry: prefs.NewRegistry(),
	}

	dbg.Rewind = rewind.NewRewind(gig.CPU)
	dbg.breakpoints = newBreakpoints(dbg)
	dbg.watches = newWatches(dbg)

	if err := gig.Instance.Prefs.Register(dbg.registry); err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}
	if err := dbg.Rewind.Prefs.Register(dbg.registry); err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}
	if err := dbg.Prefs.Register(dbg.registry); err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}

	// interrupt signals are only caught for interactive terminals. they are
	// handled by the terminal or by the run loop
	if term.IsInteractive() {
		signal.Notify(dbg.events.IntEvents, os.Interrupt)
	}

	dbg.setState(govern.Initialising)

	return dbg, nil
}

// AttachLoader loads the ROM image and attaches it to the Gigatron. The
// emulation is hard reset and the rewind history is cleared.
func (dbg *Debugger) AttachLoader(ld *romloader.Loader) error {
	if err := dbg.gig.AttachLoader(ld); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	dbg.dsm = disassembly.FromROM(dbg.gig.Mem.ROM, dbg.dsm.Sym)
	dbg.romName = ld.ShortName()
	dbg.Rewind.Reset()
	dbg.watchLog.clear()
	return nil
}

// SetPreferences parses a string of preference values. See the prefs package
// for the format.
func (dbg *Debugger) SetPreferences(s string) error {
	return dbg.registry.Parse(s)
}

// LoadPreferences sets preferences from the preferences file. A missing
// file is not an error.
func (dbg *Debugger) LoadPreferences() error {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	return dbg.registry.Load(pth)
}

// SavePreferences writes the current preferences to the preferences file.
func (dbg *Debugger) SavePreferences() error {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if err := dbg.registry.Save(pth); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("preferences saved to %s", pth))
	return nil
}

// PushFunction queues a function to be run in the debugger's goroutine. Used
// by the GUI to make changes to the emulation safely. The function is
// dropped if the queue is full.
func (dbg *Debugger) PushFunction(f func()) {
	select {
	case dbg.events.RawEvents <- f:
	default:
		logger.Log(logger.Allow, "debugger", "raw events queue is full")
	}
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return govern.State(dbg.state.Load())
}

func (dbg *Debugger) setState(state govern.State) {
	dbg.state.Store(int32(state))
}

// Start the main debugger sequence. Returns when the QUIT command is
// entered or when the terminal is closed.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(commandOptions))

	defer signal.Stop(dbg.events.IntEvents)

	dbg.setState(govern.Paused)

	for dbg.State() != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				continue // for loop
			}
			if curated.Is(err, terminal.UserAbort) || err == io.EOF {
				dbg.setState(govern.Ending)
				continue // for loop
			}
			return curated.Errorf(DebuggerError, err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	e := dbg.dsm.GetEntryByAddress(dbg.gig.CPU.QueuedPC)
	return terminal.Prompt{
		Content: e.String(),
		Redo:    dbg.Rewind.RedoLen(),
	}
}

func (dbg *Debugger) printLine(sty terminal.Style, s string) {
	dbg.term.TermPrintLine(sty, s)
}

// formatAddress includes the label at the address if there is one.
func (dbg *Debugger) formatAddress(addr uint16) string {
	if l, ok := dbg.dsm.Sym.Label(addr); ok {
		return fmt.Sprintf("$%04x (%s)", addr, l)
	}
	return fmt.Sprintf("$%04x", addr)
}

// termWriter adapts the terminal to the io.Writer interface. Each line is
// printed separately.
type termWriter struct {
	dbg *Debugger
	sty terminal.Style
}

func (w termWriter) Write(p []byte) (int, error) {
	s := string(p)
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\n' {
			i++
		}
		w.dbg.printLine(w.sty, s[:i])
		if i < len(s) {
			i++
		}
		s = s[i:]
	}
	return len(p), nil
}
