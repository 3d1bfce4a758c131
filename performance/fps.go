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

package performance

import (
	"github.com/jetsetilly/gotron/hardware/clocks"
	"github.com/jetsetilly/gotron/hardware/television/specification"
)

// RefreshRate returns the number of frames per second produced by a Gigatron
// running at full speed and generating the video signal in the specification.
func RefreshRate(spec specification.Spec) float64 {
	return clocks.Gigatron * 1000000 / float64(spec.CyclesPerFrame())
}

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage.
func CalcFPS(spec specification.Spec, numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / RefreshRate(spec)
	return fps, accuracy
}

// CalcMHz returns the effective clock speed of the emulation in MHz, along
// with the accuracy of that value as a percentage of the real clock.
func CalcMHz(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.Gigatron
	return mhz, accuracy
}
