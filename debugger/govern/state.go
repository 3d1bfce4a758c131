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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
const (
	// EmulatorStart is the default state and should never be entered once
	// the emulator has begun
	EmulatorStart State = iota

	// a ROM is being attached or the emulation is being reset. a Run() loop
	// that sees this state returns immediately
	Initialising

	// the debugger is waiting for input
	Paused

	// single or multiple cycles are being executed by the STEP command
	Stepping

	// history is being undone or replayed. the television is not updated
	// while rewinding
	Rewinding

	// free running. RUN, FRAME and the RUN mode
	Running

	// the emulation is shutting down
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Rewinding:
		return "Rewinding"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}
