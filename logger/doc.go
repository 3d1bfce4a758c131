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

// Package logger is the central log for the emulator. Log entries are made
// with the Log() and Logf() functions, with a tag and detail string:
//
//	logger.Log(logger.Allow, "romloader", "odd number of bytes in ROM file")
//
// The first argument is a Permission implementation. Packages can use this
// to suppress logging in some circumstances. The Allow value should be used
// when the log entry should always be made.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. The log is capped at a fixed number of
// entries, with the oldest entries being dropped first.
package logger
