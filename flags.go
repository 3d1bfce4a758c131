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

package main

import (
	"os"

	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/hardware/television/specification"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/modalflag"
	"github.com/jetsetilly/gotron/prefs"
	"github.com/jetsetilly/gotron/romloader"
)

// flags shared by every mode that runs the emulation.
type emulationFlags struct {
	spec    *string
	htiming *string
	vtiming *string
	seed    *int64
	prefs   *string
	log     *bool
}

func addEmulationFlags(md *modalflag.Modes) *emulationFlags {
	return &emulationFlags{
		spec:    md.AddString("spec", "VGA", "television specification"),
		htiming: md.AddString("htiming", "", "override horizontal timing: front,pulse,back,visible"),
		vtiming: md.AddString("vtiming", "", "override vertical timing: front,pulse,back,visible"),
		seed:    md.AddInt64("seed", 0, "seed for random number generator"),
		prefs:   md.AddString("prefs", "", "preferences to apply: key::value; key::value"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

func (f *emulationFlags) prefsString() string {
	return *f.prefs
}

// buildSpec returns the television specification named by the -spec flag
// with any timing overrides applied.
func (f *emulationFlags) buildSpec() (specification.Spec, error) {
	spec, err := specification.SearchSpec(*f.spec)
	if err != nil {
		return specification.Spec{}, err
	}

	if *f.htiming != "" {
		spec.Horiz, err = specification.ParseSyncTiming(*f.htiming)
		if err != nil {
			return specification.Spec{}, err
		}
		spec.ID = "CUSTOM"
	}

	if *f.vtiming != "" {
		spec.Vert, err = specification.ParseSyncTiming(*f.vtiming)
		if err != nil {
			return specification.Spec{}, err
		}
		spec.ID = "CUSTOM"
	}

	return spec, spec.Validate()
}

// newGigatron creates a Gigatron according to the flags. A ROM is not
// attached.
func (f *emulationFlags) newGigatron(md *modalflag.Modes) (*hardware.Gigatron, error) {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	spec, err := f.buildSpec()
	if err != nil {
		return nil, err
	}

	tv, err := television.NewTelevision(spec)
	if err != nil {
		return nil, err
	}

	gig, err := hardware.NewGigatron(tv, nil)
	if err != nil {
		return nil, err
	}

	// only seed the random number generator if the flag has been set. a seed
	// of zero is valid
	md.Visit(func(flag string) {
		if flag == "seed" {
			gig.Instance.Random.Seed(*f.seed)
		}
	})

	return gig, nil
}

// attach applies the hardware preferences and then attaches the ROM file.
// Preferences must be applied first because attaching causes a hard reset.
func (f *emulationFlags) attach(gig *hardware.Gigatron, filename string) error {
	reg := prefs.NewRegistry()
	if err := gig.Instance.Prefs.Register(reg); err != nil {
		return err
	}
	if err := reg.Parse(*f.prefs); err != nil {
		return err
	}

	ld := romloader.NewLoader(filename)
	return gig.AttachLoader(&ld)
}
