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

package terminal

import (
	"os"
)

// Input is implemented by terminals that can read commands from the user.
type Input interface {
	// TermRead returns the next line of input without the terminating
	// newline. Implementations should check the ReadEvents channels while
	// waiting, if they are able to.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive is false for terminals reading from a file or a test
	// harness. The debugger only installs a tab completer for interactive
	// terminals.
	IsInteractive() bool
}

// Sentinal errors returned by TermRead() for signals caught while waiting
// for input. Terminals that cannot catch signals themselves leave them to
// the IntEvents channel.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents must be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal

	// functions pushed by the display window, to be run in the debugger's
	// goroutine. for example, a change to the input port
	RawEvents chan func()
}

// Output is implemented by terminals that can display debugger output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is the debugger's command line interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. For example, put the terminal into cbreak
	// mode.
	Initialise() error

	// CleanUp returns the terminal to its original state.
	CleanUp()

	// RegisterTabCompletion is ignored by terminals with no line editor.
	RegisterTabCompletion(TabCompletion)
}

// TabCompletion is implemented by commandline.TabCompletion.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
