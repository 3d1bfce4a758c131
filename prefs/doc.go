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

// Package prefs implements the preference values used throughout the
// emulator. Preferences are typed (Bool and Int) and can be gathered into a
// Registry under a dotted key name, for example "hardware.randstate".
//
// A Registry can be updated from a single string, in the form taken by the
// -prefs command line flag:
//
//	hardware.randstate::true; rewind.max::5000
//
// Preferences are not saved between runs.
package prefs
