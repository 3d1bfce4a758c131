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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/hardware"
)

// Sentinal errors.
const (
	PerformanceError = "performance: %v"
)

// the amount of time the emulation runs before measurement begins. allows the
// frame rate to settle
var leadTime = 2 * time.Second

// returned by the continue check of the Run() loop when the measurement
// period has ended
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator. The Gigatron should have a ROM
// attached. Emulation will run for the specified duration and can create
// profiling reports as defined by the Profile argument.
func Check(output io.Writer, profile Profile, gig *hardware.Gigatron, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := gig.TV.GetCoords().Frame
	startCycles := gig.Cycles()

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has ended
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for the end of the measurement period every
		// PerformanceBrake cycles. checking the timerChan is relatively
		// expensive
		performanceBrake := 0

		err := gig.Run(nil, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = gig.TV.GetCoords().Frame
				startCycles = gig.Cycles()
			default:
			}

			return govern.Running, nil
		})
		if errors.Is(err, timedOut) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := gig.TV.GetCoords().Frame - startFrame
	fps, fpsAccuracy := CalcFPS(gig.TV.GetSpec(), numFrames, dur.Seconds())
	mhz, mhzAccuracy := CalcMHz(gig.Cycles()-startCycles, dur.Seconds())

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), fpsAccuracy)
	fmt.Fprintf(output, "%.2f MHz %.1f%%\n", mhz, mhzAccuracy)

	return nil
}
