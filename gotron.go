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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/debugger"
	"github.com/jetsetilly/gotron/debugger/govern"
	"github.com/jetsetilly/gotron/debugger/terminal"
	"github.com/jetsetilly/gotron/debugger/terminal/colorterm"
	"github.com/jetsetilly/gotron/debugger/terminal/plainterm"
	"github.com/jetsetilly/gotron/digest"
	"github.com/jetsetilly/gotron/disassembly"
	"github.com/jetsetilly/gotron/gui/sdlscreen"
	"github.com/jetsetilly/gotron/hardware"
	"github.com/jetsetilly/gotron/logger"
	"github.com/jetsetilly/gotron/modalflag"
	"github.com/jetsetilly/gotron/performance"
	"github.com/jetsetilly/gotron/romloader"
	"github.com/jetsetilly/gotron/statsview"
	"github.com/jetsetilly/gotron/symbols"
	"github.com/jetsetilly/gotron/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the debugger provides its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It must only
	// be called from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if v, ok := state.args.(int); ok {
					exitVal = v
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	if gui != nil {
		gui.Destroy(os.Stderr)
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md, sync)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// createScreen asks the main thread to create the SDL window and waits for
// the result.
func createScreen(sync *mainSync, gig *hardware.Gigatron, scale float64) (*sdlscreen.Screen, error) {
	sync.creator <- func() (GuiCreator, error) {
		return sdlscreen.NewScreen(gig.TV, float32(scale))
	}

	select {
	case g := <-sync.creation:
		return g.(*sdlscreen.Screen), nil
	case err := <-sync.creationError:
		return nil, err
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	emuFlags := addEmulationFlags(md)
	scale := md.AddFloat64("scale", 1.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap speed to the real Gigatron")
	showDigest := md.AddBool("digest", false, "print digest of video output on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gig, err := emuFlags.newGigatron(md)
	if err != nil {
		return err
	}
	if err := emuFlags.attach(gig, md.GetArg(0)); err != nil {
		return err
	}

	dig := digest.NewVideo()
	if *showDigest {
		gig.TV.AddFrameRenderer(dig)
	}

	scr, err := createScreen(sync, gig, *scale)
	if err != nil {
		return err
	}
	scr.SetFPSCap(*fpsCap)

	// keyboard events are serviced in the main thread and applied to the
	// controller in the emulation goroutine
	events := make(chan func(), 64)
	scr.SetInput(gig.Input, func(f func()) {
		select {
		case events <- f:
		default:
		}
	})

	var quit atomic.Bool
	scr.SetQuit(func() {
		quit.Store(true)
	})

	brake := 0
	continueCheck := func() (govern.State, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		brake = 0

		if quit.Load() {
			return govern.Ending, nil
		}

		select {
		case f := <-events:
			f()
		default:
		}

		return govern.Running, nil
	}

	for {
		err = gig.Run(nil, continueCheck)
		if !curated.Is(err, hardware.FrameTimeout) {
			break // for loop
		}

		// a ROM that does not produce a stable video signal is not fatal
		logger.Log(logger.Allow, "gotron", err)
	}
	if err != nil {
		return err
	}

	if *showDigest {
		fmt.Printf("%s (%d frames)\n", dig.Hash(), dig.FrameNum())
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	emuFlags := addEmulationFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	display := md.AddBool("display", false, "display television output in a window")
	scale := md.AddFloat64("scale", 1.0, "window scaling (only valid if -display=true)")
	symfile := md.AddString("symbols", "", "symbols file for the ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gig, err := emuFlags.newGigatron(md)
	if err != nil {
		return err
	}

	var sym *symbols.Symbols
	if *symfile != "" {
		sym, err = symbols.ReadSymbolsFile(*symfile)
		if err != nil {
			return err
		}
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = colorterm.NewColorTerminal()
	}

	// turn off fallback ctrl-c handling. this so that the debugger can use
	// ctrl-c events to interrupt the emulation without quitting
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(gig, term, sym)
	if err != nil {
		return err
	}

	// preferences are applied through the debugger because it owns the
	// registry that includes the debugger preferences. values on the command
	// line take priority over the preferences file. the ROM is attached
	// afterwards so that the hardware preferences take effect
	if err := dbg.LoadPreferences(); err != nil {
		return err
	}
	if err := dbg.SetPreferences(emuFlags.prefsString()); err != nil {
		return err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := dbg.AttachLoader(&ld); err != nil {
		return err
	}

	if *display {
		scr, err := createScreen(sync, gig, *scale)
		if err != nil {
			return err
		}

		// closing the window does not end the debugging session. the
		// debugger must be quit from the terminal
		scr.SetInput(gig.Input, dbg.PushFunction)
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	symfile := md.AddString("symbols", "", "symbols file for the ROM")
	listSymbols := md.AddBool("listsymbols", false, "list symbols before the disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dsm, err := disassembly.FromLoader(romloader.NewLoader(md.GetArg(0)), *symfile)
	if err != nil {
		return err
	}

	if *listSymbols {
		dsm.Sym.ListSymbols(md.Output)
		fmt.Fprintln(md.Output)
	}

	dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information even for release builds")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, release := version.Version()
	if release && !*revision {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
		return nil
	}
	fmt.Fprintln(md.Output, version.String())
	if release {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

func perform(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	emuFlags := addEmulationFlags(md)
	display := md.AddBool("display", false, "display television output in a window")
	scale := md.AddFloat64("scale", 1.0, "window scaling (only valid if -display=true)")
	fpsCap := md.AddBool("fpscap", false, "cap speed to the real Gigatron (only valid if -display=true)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	showDigest := md.AddBool("digest", false, "print digest of video output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	gig, err := emuFlags.newGigatron(md)
	if err != nil {
		return err
	}
	if err := emuFlags.attach(gig, md.GetArg(0)); err != nil {
		return err
	}

	dig := digest.NewVideo()
	if *showDigest {
		gig.TV.AddFrameRenderer(dig)
	}

	if *display {
		scr, err := createScreen(sync, gig, *scale)
		if err != nil {
			return err
		}
		scr.SetFPSCap(*fpsCap)
	}

	if err := performance.Check(md.Output, prf, gig, *duration); err != nil {
		return err
	}

	if *showDigest {
		fmt.Fprintf(md.Output, "%s (%d frames)\n", dig.Hash(), dig.FrameNum())
	}

	return nil
}
