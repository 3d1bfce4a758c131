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

package rewind

import (
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/prefs"
)

// Applier is implemented by the CPU.
type Applier interface {
	Apply(execution.Effect) execution.Effect
}

// Rewind contains the history of CPU cycles.
type Rewind struct {
	Prefs *Preferences

	applier Applier

	// circular array of inverse effects. start is the index of the oldest
	// entry
	entries []execution.Effect
	start   int
	count   int

	// effects that will replay steps undone by Back(). the most recently
	// undone step is at the end of the slice
	redo []execution.Effect
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(applier Applier) *Rewind {
	r := &Rewind{
		Prefs:   newPreferences(),
		applier: applier,
	}

	r.Prefs.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.Reset()
		return nil
	})

	r.Reset()

	return r
}

// Reset removes all entries from the history. Should be called whenever the
// emulation is reset.
func (r *Rewind) Reset() {
	r.entries = make([]execution.Effect, r.Prefs.MaxEntries.Int())
	r.start = 0
	r.count = 0
	r.redo = r.redo[:0]
}

// Len returns the number of steps that can be undone.
func (r *Rewind) Len() int {
	return r.count
}

// RedoLen returns the number of steps that can be replayed.
func (r *Rewind) RedoLen() int {
	return len(r.redo)
}

// Record the inverse effect of a cycle that has just been applied. The
// oldest entry is forgotten if the history is full.
func (r *Rewind) Record(inverse execution.Effect) {
	r.redo = r.redo[:0]
	r.push(inverse)
}

func (r *Rewind) push(inverse execution.Effect) {
	if r.count < len(r.entries) {
		r.entries[(r.start+r.count)%len(r.entries)] = inverse
		r.count++
		return
	}

	// history is full. overwrite oldest entry
	r.entries[r.start] = inverse
	r.start = (r.start + 1) % len(r.entries)
}

// Back undoes the most recent cycle. Returns false if there is nothing to
// undo.
func (r *Rewind) Back() bool {
	if r.count == 0 {
		return false
	}

	r.count--
	idx := (r.start + r.count) % len(r.entries)
	redo := r.applier.Apply(r.entries[idx])
	r.redo = append(r.redo, redo)

	return true
}

// Forward replays the most recently undone cycle. Returns false if there is
// nothing to replay.
func (r *Rewind) Forward() bool {
	if len(r.redo) == 0 {
		return false
	}

	e := r.redo[len(r.redo)-1]
	r.redo = r.redo[:len(r.redo)-1]
	r.push(r.applier.Apply(e))

	return true
}

// PeekForward returns the effect that will be applied by the next call to
// Forward(). Returns false if there is nothing to replay.
func (r *Rewind) PeekForward() (execution.Effect, bool) {
	if len(r.redo) == 0 {
		return execution.Effect{}, false
	}
	return r.redo[len(r.redo)-1], true
}
