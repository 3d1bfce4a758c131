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
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/prefs"
	"github.com/jetsetilly/gotron/test"
)

func TestBool(t *testing.T) {
	b := prefs.NewBool(true)
	test.ExpectEquality(t, b.Bool(), true)

	test.ExpectSuccess(t, b.Set("off"))
	test.ExpectEquality(t, b.Bool(), false)
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set("ON"))
	test.ExpectEquality(t, b.Bool(), true)

	test.ExpectFailure(t, b.Set(10))

	test.ExpectSuccess(t, b.Set(false))
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Bool(), true)
}

func TestInt(t *testing.T) {
	i := prefs.NewInt(10, 1, 100)
	test.ExpectEquality(t, i.Int(), 10)

	test.ExpectSuccess(t, i.Set("20"))
	test.ExpectEquality(t, i.Int(), 20)

	test.ExpectFailure(t, i.Set(1000))
	test.ExpectEquality(t, i.Int(), 20)

	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Int(), 10)
}

func TestHook(t *testing.T) {
	var seen prefs.Value
	b := prefs.NewBool(false)
	b.SetHookPost(func(v prefs.Value) error {
		seen = v
		return nil
	})
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, seen, prefs.Value(true))
}

func TestRegistry(t *testing.T) {
	reg := prefs.NewRegistry()
	b := prefs.NewBool(false)
	i := prefs.NewInt(5, 0, 10)
	test.DemandSuccess(t, reg.Add("test.bool", b))
	test.DemandSuccess(t, reg.Add("test.int", i))

	err := reg.Add("test.bool", b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, reg.Parse("test.bool::true; test.int::7"))
	test.ExpectEquality(t, b.Bool(), true)
	test.ExpectEquality(t, i.Int(), 7)
	test.ExpectEquality(t, reg.String(), "test.bool :: true\ntest.int :: 7\n")

	err = reg.Parse("test.missing::1")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	err = reg.Parse("test.bool")
	test.ExpectSuccess(t, curated.Is(err, prefs.BadEntry))

	v, err := reg.Get("TEST.INT")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value(7))

	test.ExpectSuccess(t, reg.Reset())
	test.ExpectEquality(t, b.Bool(), false)
	test.ExpectEquality(t, i.Int(), 5)
}
