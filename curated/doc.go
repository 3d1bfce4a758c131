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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf(), which looks like the
// function of the same name in the fmt package:
//
//	err := curated.Errorf("romloader: %v", ioErr)
//
// The pattern string identifies the error. Is() checks the outermost error
// in a chain and Has() checks every curated error in the chain:
//
//	if curated.Has(err, romloader.TooLarge) {
//		...
//	}
//
// Patterns are best kept as exported string constants in the package that
// raises them.
//
// When an error chain is printed, adjacent duplicate parts are collapsed.
// Wrapping "romloader: %v" around another "romloader: %v" error prints the
// prefix once. Parts of a chain are separated by ": ".
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see through them.
package curated
