package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alive/audio"
	"github.com/lixenwraith/alive/clock"
	"github.com/lixenwraith/alive/config"
	"github.com/lixenwraith/alive/core"
	"github.com/lixenwraith/alive/engine"
	"github.com/lixenwraith/alive/event"
	"github.com/lixenwraith/alive/input"
	"github.com/lixenwraith/alive/status"
)

var (
	configFlag = flag.String("config", "alive.yaml", "Path to YAML config file")
	envFlag    = flag.String("env", ".env", "Path to .env file")
	debugFlag  = flag.Bool("debug", false, "Write logs to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

// app routes terminal events into the engine and draws published snapshots
type app struct {
	screen tcell.Screen
	runner *engine.Runner
	player *audio.Player
	render *renderer
	layout layout

	buttons tcell.ButtonMask
	face    bool
}

func main() {
	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Engine.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	logDir = cfg.LogDir
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	// Audio failure is never fatal
	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	}
	defer player.Close()
	if *muteFlag {
		player.ToggleMute()
	}

	reg := status.NewRegistry()
	eng := engine.New(cfg.Engine, event.Fanout(player), engine.WithStatus(reg))
	runner := engine.NewRunner(eng, clock.Real{}, cfg.Engine.FrameInterval, cfg.Engine.EventBuffer)

	a := &app{
		screen: screen,
		runner: runner,
		player: player,
		render: newRenderer(uint64(time.Now().UnixNano())),
	}
	a.resize()

	runner.Start()
	defer runner.Stop()

	a.run()

	log.Printf("exit after %d frames, %d inputs dropped", reg.Ints.Get("engine.frames").Load(), runner.Dropped())
}

// run owns the screen until the user quits
func (a *app) run() {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-a.runner.Frames():
			a.draw()
		}
	}
}

// resize recomputes the layout and pushes new bounds into the engine
func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.layout = layout{cols: cols, rows: rows}
	w, h := a.layout.viewport()
	target := a.layout.target()
	a.runner.Do(func(e *engine.Engine) {
		e.SetViewport(w, h)
		e.SetTarget(target)
	})
}

func (a *app) draw() {
	snap := a.runner.Snapshot()
	if snap == nil {
		return
	}
	a.screen.Clear()
	a.render.draw(a.screen, a.layout, snap, a.player.Muted())
	a.screen.Show()
}

// handle translates one terminal event, returning false to quit
func (a *app) handle(ev tcell.Event) bool {
	now := time.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyF2:
			// Simulated camera: toggle face presence
			a.face = !a.face
			a.runner.Submit(input.Face(now, input.FaceSignal{Detected: a.face, Confidence: 1}))
			return true
		case tcell.KeyF3:
			a.face = true
			a.runner.Submit(input.Face(now, input.FaceSignal{Detected: true, Confidence: 1, Smiling: true}))
			return true
		case tcell.KeyF4:
			muted := a.player.ToggleMute()
			log.Printf("audio muted: %v", muted)
			return true
		}
		if tok, ok := keyToken(ev); ok {
			a.runner.Submit(input.Key(now, tok))
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := toPixel(x, y)
		a.runner.Submit(input.Pointer(now, p.X, p.Y))

		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = buttons
		if pressed && a.layout.target().Contains(p) {
			a.runner.Submit(input.Click(now))
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}
