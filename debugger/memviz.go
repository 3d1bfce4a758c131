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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/hardware/cpu/registers"
	"github.com/jetsetilly/gotron/hardware/television/coords"
)

// memvizState is the part of the emulation shown by the MEMVIZ command.
type memvizState struct {
	Reg      registers.File
	QueuedPC uint16
	Input    uint8
	Coords   coords.TelevisionCoords
	Breaks   []uint16
	Rewind   int
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	st := &memvizState{
		Reg:      dbg.gig.CPU.Reg,
		QueuedPC: dbg.gig.CPU.QueuedPC,
		Input:    dbg.gig.CPU.Input(),
		Coords:   dbg.gig.TV.GetCoords(),
		Breaks:   dbg.breakpoints.breaks,
		Rewind:   dbg.Rewind.Len(),
	}
	memviz.Map(f, st)

	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("memviz written to %s", filename))

	return nil
}
