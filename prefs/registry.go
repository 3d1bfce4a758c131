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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gotron/curated"
)

// Sentinal errors returned by Registry.
const (
	UnknownKey   = "prefs: unknown key (%s)"
	DuplicateKey = "prefs: key already registered (%s)"
	BadEntry     = "prefs: malformed entry (%s)"
)

// Registry collects named preferences.
type Registry struct {
	entries map[string]Pref
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the registry.
func (reg *Registry) Add(key string, p Pref) error {
	key = strings.ToLower(key)
	if _, ok := reg.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	reg.entries[key] = p
	return nil
}

// Set the named preference.
func (reg *Registry) Set(key string, v Value) error {
	p, ok := reg.entries[strings.ToLower(key)]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value of the named preference.
func (reg *Registry) Get(key string) (Value, error) {
	p, ok := reg.entries[strings.ToLower(key)]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the sorted list of registered keys.
func (reg *Registry) Keys() []string {
	keys := make([]string, 0, len(reg.entries))
	for k := range reg.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preferences to their default values.
func (reg *Registry) Reset() error {
	for _, k := range reg.Keys() {
		if err := reg.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String lists every key and value, one per line.
func (reg *Registry) String() string {
	s := strings.Builder{}
	for _, k := range reg.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, reg.entries[k]))
	}
	return s.String()
}

// Parse a string of key::value entries, separated by semicolons, and set
// each preference in turn. Parsing stops at the first error.
func (reg *Registry) Parse(s string) error {
	for _, e := range strings.Split(s, ";") {
		if strings.TrimSpace(e) == "" {
			continue
		}
		kv := strings.Split(e, "::")
		if len(kv) != 2 {
			return curated.Errorf(BadEntry, strings.TrimSpace(e))
		}
		if err := reg.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])); err != nil {
			return err
		}
	}
	return nil
}
