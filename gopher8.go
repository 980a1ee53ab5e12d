// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/kehitt/gopher8/cartridgeloader"
	"github.com/kehitt/gopher8/debugger"
	"github.com/kehitt/gopher8/debugger/terminal"
	"github.com/kehitt/gopher8/debugger/terminal/colorterm"
	"github.com/kehitt/gopher8/debugger/terminal/plainterm"
	"github.com/kehitt/gopher8/disassembly"
	"github.com/kehitt/gopher8/gui"
	"github.com/kehitt/gopher8/gui/sdlaudio"
	"github.com/kehitt/gopher8/gui/sdlplay"
	"github.com/kehitt/gopher8/hardware"
	"github.com/kehitt/gopher8/hardware/display"
	"github.com/kehitt/gopher8/logger"
	"github.com/kehitt/gopher8/modalflag"
	"github.com/kehitt/gopher8/performance"
	"github.com/kehitt/gopher8/playmode"
	"github.com/kehitt/gopher8/regression"
	"github.com/kehitt/gopher8/statsview"
	"github.com/kehitt/gopher8/version"
	"github.com/kehitt/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode and debugger packages
	// provide mode specific handlers.
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
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
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

	// the value to use with os.Exit(). can be changed with a reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with a reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything that needs doing in the Service() function of the most
	//     recently created GUI
	//
	done := false
	var g GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if g != nil {
				g.Destroy(os.Stderr)
			}

			g, err = creator()
			if err != nil {
				sync.creationError <- err

				// make sure the interface variable is actually nil and not
				// just an interface wrapped around a nil pointer. the
				// comparison below relies on it
				g = nil
			} else {
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if g != nil {
					g.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if g != nil {
				g.Service()
			} else {
				// there is nothing to service yet so don't spin
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses the mainSync instance to
// ask for gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

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

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md, sync)

	case "VERSION":
		ver, rev, rel := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !rel {
			fmt.Printf("  revision: %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	tickrate := md.AddInt("tickrate", 0, "instructions per second (0 = use saved preference)")
	scale := md.AddInt("scale", 0, "window scale (0 = use saved preference)")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
	fpsCap := md.AddBool("fpscap", true, "pace the machine to the wall clock")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		disp, err := display.NewDisplay(display.SpecCHIP8)
		if err != nil {
			return err
		}

		vm := hardware.NewCHIP8(disp)
		defer vm.End()

		// add wavwriter mixer if the wav argument has been specified
		if *wav != "" {
			aw, err := wavwriter.New(*wav)
			if err != nil {
				return err
			}
			vm.Beeper.AddAudioMixer(aw)
		}

		// sound output for the host machine
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			return err
		}
		vm.Beeper.AddAudioMixer(aud)

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(disp)
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// turn off fallback ctrl-c handling. this so that playmode can end
		// the session gracefully
		sync.state <- stateRequest{req: reqNoIntSig}

		if *scale > 0 {
			err = scr.ReqFeature(gui.ReqSetScale, *scale)
			if err != nil {
				return err
			}
		}

		if *fullScreen {
			err = scr.ReqFeature(gui.ReqFullScreen, true)
			if err != nil {
				return err
			}
		}

		// an fpscap flag on the command line supersedes the saved preference.
		// playmode needs to know the difference between the flag's default
		// value and an explicit request for the default value
		fpsCapExplicit := false
		md.Visit(func(flg string) {
			if flg == "fpscap" {
				fpsCapExplicit = true
			}
		})

		err = playmode.Play(vm, scr, cartload, *tickrate, *fpsCap, fpsCapExplicit)
		if err != nil {
			return err
		}

		// save preferences before finishing successfully
		err = scr.ReqFeature(gui.ReqSavePrefs)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	stats := md.AddBool("statsview", false, "run the runtime stats server")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not compiled into this build")
		}
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	// turn off fallback ctrl-c handling. this so that the debugger can handle
	// quit events with a confirmation request. it also allows the debugger to
	// use ctrl-c events to interrupt execution of the emulation without
	// quitting the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	// the debugger can be started with an empty machine. a cartridge can be
	// inserted from the terminal
	var cartload cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		cartload = cartridgeloader.NewLoader(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dbgRun := func() error {
		return dbg.Start(cartload)
	}

	// if profile generation has been requested then pass the dbgRun()
	// function prepared above through the ProfileCPU() command
	if *profile {
		err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
		if err != nil {
			return err
		}
		err = performance.ProfileMem("debug.mem.profile")
		if err != nil {
			return err
		}
	} else {
		err := dbgRun()
		if err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include opcode bytes in disassembly")
	reachable := md.AddBool("reachable", false, "limit disassembly to instructions the program can reach")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode:      *bytecode,
			ReachableOnly: *reachable,
		}

		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromCartridge(cartload)
		if err != nil {
			// print what disassembly output we do have
			if dsm != nil {
				// ignore any further errors
				_ = dsm.Write(md.Output, attr)
			}
			return err
		}

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	tickrate := md.AddInt("tickrate", hardware.TickRateNormal, "instructions per second")
	uncapped := md.AddBool("uncapped", false, "run the machine as fast as the host allows")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		err = performance.Check(md.Output, *profile, cartload, *tickrate, *uncapped, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// yesReader always reads 'y'. used by the regression DELETE mode when the
// -yes flag has been specified.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop when an entry errors (as opposed to fails)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		// turn off default sigint handling
		sync.state <- stateRequest{req: reqNoIntSig}

		err = regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless the "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "video", "type of digest to compare: video, audio, both")
	tickrate := md.AddInt("tickrate", hardware.TickRateNormal, "instructions per second")
	numframes := md.AddInt("frames", 10, "number of frames to run")
	seed := md.AddInt("seed", 0, "seed for the random number generator")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression test to be added is a ROM file. The ROM is run for the specified
number of frames and a digest of the display output (and/or of the audio output,
according to the -mode flag) is stored in the database. Subsequent runs of the test
compare their digest against the stored value.

The -log flag instructs the program to echo the log to the console. Note that asking
for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		digestMode, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		reg := &regression.DigestRegression{
			Cartridge: md.GetArg(0),
			TickRate:  *tickrate,
			NumFrames: *numframes,
			Seed:      int64(*seed),
			Mode:      digestMode,
		}

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at the beginning of the
			// error message because we want to overwrite the last output from
			// RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
