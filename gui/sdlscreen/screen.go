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

package sdlscreen

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/input"
	"github.com/jetsetilly/gotron/hardware/television"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/performance"
	"github.com/jetsetilly/gotron/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal errors.
const (
	SDLError = "sdlscreen: %v"
)

const pixelDepth = 4

// Screen is an SDL implementation of the television.FrameRenderer
// interface.
type Screen struct {
	tv *television.Television

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	// pixels is written by NewFrame() and read by Service(). the dirty flag
	// indicates that there is a frame that has not been presented yet
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	// limits the emulation to the refresh rate of the television
	lmtr *limiter.FpsLimiter

	// the game controller and the function used to queue changes to it
	input *input.Controller
	push  func(func())

	// called when the window is closed
	quit func()
}

// NewScreen is the preferred method of initialisation for the Screen type.
// Must be called from the main thread.
//
// The window is the size of the visible area of the television multiplied
// by the scale argument.
func NewScreen(tv *television.Television, scale float32) (*Screen, error) {
	spec := tv.GetSpec()

	scr := &Screen{
		tv:     tv,
		width:  int32(spec.Horiz.Visible),
		height: int32(spec.Vert.Visible),
	}
	scr.pixels = make([]byte, scr.width*scr.height*pixelDepth)

	var err error

	scr.lmtr, err = limiter.NewFPSLimiter(performance.RefreshRate(spec))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	if scale <= 0 {
		scale = 1
	}

	scr.window, err = sdl.CreateWindow("Gotron",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(scr.width)*scale), int32(float32(scr.height)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the pixel array. the renderer scales it to
	// fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	tv.AddFrameRenderer(scr)

	logger.Logf(logger.Allow, "sdlscreen", "window created (%dx%d scaled by %.1f)", scr.width, scr.height, scale)

	return scr, nil
}

// SetInput connects the keyboard to the game controller. The push function
// must run the function it is given in the emulation goroutine.
func (scr *Screen) SetInput(ctrl *input.Controller, push func(func())) {
	scr.input = ctrl
	scr.push = push
}

// SetQuit sets the function that is called when the window is closed. The
// function is called from the main thread.
func (scr *Screen) SetQuit(quit func()) {
	scr.quit = quit
}

// SetFPSCap limits the emulation to the refresh rate of the television.
func (scr *Screen) SetFPSCap(limit bool) {
	scr.lmtr.Active(limit)
}

// NewFrame implements the television.FrameRenderer interface.
func (scr *Screen) NewFrame(_ int, img *image.RGBA) error {
	scr.crit.Lock()
	copyFrame(scr.pixels, img, int(scr.width), int(scr.height))
	scr.dirty = true
	scr.crit.Unlock()

	scr.lmtr.Wait()

	return nil
}

// copyFrame copies the visible area of the image into the pixel array. The
// alpha channel is forced to opaque.
func copyFrame(pixels []byte, img *image.RGBA, width int, height int) {
	b := img.Bounds()
	w := width
	if b.Dx() < w {
		w = b.Dx()
	}
	h := height
	if b.Dy() < h {
		h = b.Dy()
	}

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*pixelDepth]
		dst := pixels[y*width*pixelDepth : (y*width+w)*pixelDepth]
		copy(dst, src)
		for i := pixelDepth - 1; i < len(dst); i += pixelDepth {
			dst[i] = 0xff
		}
	}
}

// Service must be called regularly from the main thread.
func (scr *Screen) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if scr.quit != nil {
				scr.quit()
			}
		case *sdl.KeyboardEvent:
			scr.serviceKeyboard(ev)
		}
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.dirty {
		sdl.Delay(1)
		return
	}
	scr.dirty = false

	tex, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlscreen", err)
		return
	}
	rowSize := int(scr.width) * pixelDepth
	for y := 0; y < int(scr.height); y++ {
		copy(tex[y*pitch:y*pitch+rowSize], scr.pixels[y*rowSize:(y+1)*rowSize])
	}
	scr.texture.Unlock()

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		logger.Log(logger.Allow, "sdlscreen", err)
		return
	}
	scr.renderer.Present()
}

// Destroy the window and release SDL resources. Must be called from the main
// thread.
func (scr *Screen) Destroy(output io.Writer) {
	scr.lmtr.Stop()

	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintf(output, "sdlscreen: %v\n", err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintf(output, "sdlscreen: %v\n", err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintf(output, "sdlscreen: %v\n", err)
	}
	sdl.Quit()
}
