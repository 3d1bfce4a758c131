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
	"github.com/jetsetilly/gotron/prefs"
)

// default number of cycles in the history
const defaultMaxEntries = 10000

// Preferences for the rewind package.
type Preferences struct {
	// maximum number of cycles kept in the history. changing the value
	// clears the history
	MaxEntries *prefs.Int
}

func newPreferences() *Preferences {
	return &Preferences{
		MaxEntries: prefs.NewInt(defaultMaxEntries, 1, 1000000),
	}
}

// Register the preference values with a registry.
func (p *Preferences) Register(reg *prefs.Registry) error {
	return reg.Add("rewind.max", p.MaxEntries)
}
