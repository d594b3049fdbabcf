package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncers/audio"
	"github.com/lixenwraith/bouncers/config"
	"github.com/lixenwraith/bouncers/engine"
	"github.com/lixenwraith/bouncers/input"
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/render"
	"github.com/lixenwraith/bouncers/status"
	"github.com/lixenwraith/bouncers/vmath"
)

var (
	configFlag = flag.String("config", "bouncers.toml", "Path to TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/bouncers.log")
	muteFlag   = flag.Bool("mute", false, "Disable the insertion chime")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBOUNCERS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	run(screen, cfg)
}

// applyFlags overrides file settings with explicitly set flags
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// Nil event means the screen was finalized
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func run(screen tcell.Screen, cfg config.Config) {
	log.Printf("starting: seed=%d frame_rate=%d viewport=%dx%d",
		cfg.Simulation.Seed, cfg.Simulation.FrameRate, cfg.Viewport.HalfWidth*2, cfg.Viewport.HalfHeight*2)

	metrics := status.NewRegistry()
	surface := render.NewSpriteSurface()
	renderer := render.NewTerminalRenderer(screen, surface, cfg.Bounds(), metrics, cfg.Display.Monochrome)
	keypad := input.NewKeypad()

	loopCfg := engine.Config{
		Surface:   surface,
		Bounds:    cfg.Bounds(),
		RNG:       vmath.NewFastRand(cfg.Simulation.Seed),
		Triggers:  keypad,
		Reporter:  engine.NewLogReporter(nil),
		Presenter: renderer,
		Metrics:   metrics,
	}

	if cfg.Audio.Enabled {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, runs silently
			log.Printf("Audio initialization failed: %v", err)
		} else {
			loopCfg.AddCue = chime
			defer chime.Close()
		}
	}

	loop := engine.NewLoop(loopCfg)
	defer loop.Close()

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			switch keypad.HandleEvent(ev) {
			case input.IntentQuit:
				log.Printf("quit after %d frames", loop.FrameNumber())
				return
			case input.IntentResize:
				renderer.Resize()
			}

		case <-ticker.C:
			loop.Frame()
		}
	}
}
