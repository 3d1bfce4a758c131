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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/prefs"
	"github.com/jetsetilly/gotron/test"
)

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	reg := prefs.NewRegistry()
	b := prefs.NewBool(false)
	test.DemandSuccess(t, reg.Add("test.bool", b))

	// loading a missing file is not an error
	test.ExpectSuccess(t, reg.Load(fn))
	test.ExpectEquality(t, b.Bool(), false)

	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, reg.Save(fn))

	// a second registry sharing the file must not remove the first
	// registry's entries
	other := prefs.NewRegistry()
	i := prefs.NewInt(5, 0, 10)
	test.DemandSuccess(t, other.Add("test.int", i))
	test.ExpectSuccess(t, i.Set(9))
	test.DemandSuccess(t, other.Save(fn))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), strings.Join([]string{
		prefs.WarningBoilerPlate,
		"test.bool :: true",
		"test.int :: 9",
		"",
	}, "\n"))

	test.ExpectSuccess(t, b.Set(false))
	test.ExpectSuccess(t, reg.Load(fn))
	test.ExpectEquality(t, b.Bool(), true)
}

func TestDiskInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0600))

	reg := prefs.NewRegistry()
	err := reg.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidFile))

	err = reg.Save(fn)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidFile))
}
