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

package hardware

import (
	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/cpu/execution"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/logger"
)

// StepCallback is called once per cycle with the effect that was applied to
// the CPU and the effect that will undo it.
type StepCallback func(forward execution.Effect, inverse execution.Effect) error

// Step the emulation forward one cycle. The input port is latched from the
// controller before the CPU is clocked.
//
// A FrameTimeout error is returned if there has been no vertical sync for
// twice the expected length of a frame. The emulation can continue after
// such an error.
func (g *Gigatron) Step(cb StepCallback) (television.Result, error) {
	g.CPU.SetInput(g.Input.Value())

	fwd, inv := g.CPU.Step()
	g.cycles++

	res, err := g.TV.Signal(g.CPU.Reg.OUT)
	if err != nil {
		return res, err
	}

	if cb != nil {
		if err := cb(fwd, inv); err != nil {
			return res, err
		}
	}

	if res.NewFrame {
		g.cyclesSinceFrame = 0
	} else {
		g.cyclesSinceFrame++
		if g.cyclesSinceFrame >= g.frameTimeout {
			g.cyclesSinceFrame = 0
			logger.Logf(logger.Allow, "gigatron", "no vertical sync after %d cycles", g.frameTimeout)
			return res, curated.Errorf(FrameTimeout, g.frameTimeout)
		}
	}

	return res, nil
}
