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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	keywords []string
	options  map[string][]string

	// matches from the most recent call to Complete()
	matches []string
	match   int

	// the input string minus the token being completed
	prefix string

	// the most recent string returned by Complete()
	last string
}

// NewTabCompletion initialises a new TabCompletion instance. The keys of the
// map are the top-level keywords. The values are the options that can follow
// the keyword.
func NewTabCompletion(cmds map[string][]string) *TabCompletion {
	tc := &TabCompletion{
		options: make(map[string][]string),
	}
	for k, v := range cmds {
		k = strings.ToUpper(k)
		tc.keywords = append(tc.keywords, k)
		tc.options[k] = v
	}
	sort.Strings(tc.keywords)
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the first candidate. Calling Complete() again with the
// value it returned selects the next candidate.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.prefix + tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	fields := strings.Fields(input)

	// the token being completed. empty if the input ends with a space
	partial := ""
	if len(fields) > 0 && !strings.HasSuffix(input, " ") {
		partial = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	var candidates []string
	switch len(fields) {
	case 0:
		candidates = tc.keywords
	case 1:
		candidates = tc.options[strings.ToUpper(fields[0])]
	default:
		return input
	}

	p := strings.ToUpper(partial)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToUpper(c), p) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.prefix = input[:len(input)-len(partial)]
	tc.last = tc.prefix + tc.matches[0] + " "

	return tc.last
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.last = ""
}
