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

// Package preferences holds the preference values that alter how the
// hardware is emulated.
package preferences

import (
	"github.com/jetsetilly/gotron/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	// initialise RAM and registers to an unknown state on hard reset. when
	// false, RAM and registers are zeroed
	RandomState *prefs.Bool

	// fill the part of ROM not supplied by the ROM file with random values
	// rather than zero
	RandomROM *prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() *Preferences {
	return &Preferences{
		RandomState: prefs.NewBool(true),
		RandomROM:   prefs.NewBool(false),
	}
}

// Register the preference values with a registry.
func (p *Preferences) Register(reg *prefs.Registry) error {
	if err := reg.Add("hardware.randstate", p.RandomState); err != nil {
		return err
	}
	return reg.Add("hardware.randrom", p.RandomROM)
}
