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

package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gotron/curated"
)

// Sentinal errors.
const (
	InvalidRate = "limiter: invalid rate (%.2f)"
)

// FpsLimiter waits until the next tick of a fixed rate.
type FpsLimiter struct {
	ticker *time.Ticker

	// Wait() does nothing if active is false
	active atomic.Bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim := &FpsLimiter{
		ticker: time.NewTicker(period(framesPerSecond)),
	}
	lim.active.Store(true)
	return lim, nil
}

func period(framesPerSecond float64) time.Duration {
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the rate of the limiter.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim.ticker.Reset(period(framesPerSecond))
	return nil
}

// Active turns the limiter on or off. Wait() returns immediately when the
// limiter is off.
func (lim *FpsLimiter) Active(active bool) {
	lim.active.Store(active)
}

// Wait blocks until the next tick.
func (lim *FpsLimiter) Wait() {
	if !lim.active.Load() {
		return
	}
	<-lim.ticker.C
}

// HasWaited returns true if the next tick has already happened. The tick is
// consumed.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will block forever if it is called after Stop()
// and the limiter is active.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
