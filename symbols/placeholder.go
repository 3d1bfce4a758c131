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

package symbols

import (
	"fmt"

	"github.com/jetsetilly/gotron/curated"
)

// Sentinal errors.
const (
	PlaceholderEnd = "placeholder: unexpected end of expression"
)

// Placeholder is the symbolic form of the data byte of a ROM word. For
// example, the data byte of a "ld" instruction might be the low byte of a
// label's address.
type Placeholder interface {
	String() string
}

// Literal is a token with no further meaning to the symbols package. Usually
// a label or a number.
type Literal string

func (l Literal) String() string {
	return string(l)
}

// Unary is an operator with a single operand. The hi and lo operators.
type Unary struct {
	Name string
	Val  Placeholder
}

func (u Unary) String() string {
	return fmt.Sprintf("%s(%s)", u.Name, u.Val)
}

// Binary is an operator with two operands. The add operator.
type Binary struct {
	Name string
	LHS  Placeholder
	RHS  Placeholder
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.LHS, b.Name, b.RHS)
}

// parsePlaceholder parses the prefix expression at the start of tokens. Also
// returns the number of tokens consumed.
func parsePlaceholder(tokens []string) (Placeholder, int, error) {
	if len(tokens) == 0 {
		return nil, 0, curated.Errorf(PlaceholderEnd)
	}

	switch tokens[0] {
	case "hi", "lo":
		val, n, err := parsePlaceholder(tokens[1:])
		if err != nil {
			return nil, 0, err
		}
		return Unary{Name: tokens[0], Val: val}, n + 1, nil

	case "add":
		lhs, ln, err := parsePlaceholder(tokens[1:])
		if err != nil {
			return nil, 0, err
		}
		rhs, rn, err := parsePlaceholder(tokens[1+ln:])
		if err != nil {
			return nil, 0, err
		}
		return Binary{Name: tokens[0], LHS: lhs, RHS: rhs}, ln + rn + 1, nil

	case "zp":
		// zero page marker has no effect on the value
		val, n, err := parsePlaceholder(tokens[1:])
		if err != nil {
			return nil, 0, err
		}
		return val, n + 1, nil
	}

	return Literal(tokens[0]), 1, nil
}
