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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Gigatron type, but is not actually the Gigatron
// itself.
package instance

import (
	"github.com/jetsetilly/gotron/hardware/preferences"
	"github.com/jetsetilly/gotron/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Gigatron type.
type Instance struct {
	Random *random.Random
	Prefs  *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance is
// created.
func NewInstance(prefs *preferences.Preferences) *Instance {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	return &Instance{
		Random: random.NewRandom(),
		Prefs:  prefs,
	}
}

// Normalise ensures the instance is suitable for testing and regression runs.
// Random numbers always come from the same sequence.
func (ins *Instance) Normalise() {
	ins.Random.Seed(0)
	_ = ins.Prefs.RandomState.Set(true)
	_ = ins.Prefs.RandomROM.Set(false)
}
