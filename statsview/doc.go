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

// Package statsview serves runtime statistics over HTTP. The server is only
// available when the program is built with the statsview build tag:
//
//	go build -tags statsview
//
// Graphs are then viewable at localhost:12600/debug/statsview and the
// standard pprof pages at localhost:12600/debug/pprof/
package statsview
