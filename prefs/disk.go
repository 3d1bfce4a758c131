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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gotron/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory. See the paths package.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a preferences file.
const KeySep = " :: "

// Sentinal errors returned by Save() and Load().
const (
	DiskError   = "prefs: %v"
	InvalidFile = "prefs: not a valid preferences file (%s)"
)

// readEntries returns the key/value pairs in a preferences file. A missing
// file is not an error.
func readEntries(filename string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boiler plate warning
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidFile, filename)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(spt) != 2 {
			continue
		}
		entries[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Save the registry to the named file. Entries already in the file for keys
// that are not in the registry are preserved.
func (reg *Registry) Save(filename string) (rerr error) {
	entries, err := readEntries(filename)
	if err != nil {
		return err
	}

	for k, p := range reg.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load values from the named file. Keys in the file that are not in the
// registry are ignored. A missing file is not an error and leaves the
// registry unchanged.
func (reg *Registry) Load(filename string) error {
	entries, err := readEntries(filename)
	if err != nil {
		return err
	}

	for k, v := range entries {
		if p, ok := reg.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}
