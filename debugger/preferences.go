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
	"github.com/jetsetilly/gotron/prefs"
)

// Preferences defines and collates all the preference values used by the
// debugger.
type Preferences struct {
	// halt the emulation when the television reports a horizontal timing
	// error
	HaltHSync *prefs.Bool

	// halt the emulation when there has been no vertical sync for too long
	HaltFrameTimeout *prefs.Bool
}

func newPreferences() *Preferences {
	return &Preferences{
		HaltHSync:        prefs.NewBool(false),
		HaltFrameTimeout: prefs.NewBool(true),
	}
}

// Register the preference values with a registry.
func (p *Preferences) Register(reg *prefs.Registry) error {
	if err := reg.Add("debugger.halthsync", p.HaltHSync); err != nil {
		return err
	}
	return reg.Add("debugger.haltframetimeout", p.HaltFrameTimeout)
}
