package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"gscroll/level"
	"gscroll/replay"
	"gscroll/sim"
	"gscroll/sound"
	"gscroll/spectate"
)

const (
	FPS = 30

	// maxDelta caps the step after a stall so the player cannot tunnel.
	maxDelta = 0.1
)

var (
	levelFlag    = flag.String("level", "", "Level file (YAML); the built-in level when empty")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Disable sound effects")
	recordFlag   = flag.String("record", "", "Save the session's input to this replay file on exit")
	replayFlag   = flag.String("replay", "", "Play a replay file headless and print the outcome")
	spectateFlag = flag.String("spectate", "", "Serve snapshots to websocket viewers on this address, e.g. :8080")
	fpsFlag      = flag.Int("fps", FPS, "Frames per second")
)

type Game struct {
	screen   tcell.Screen
	state    *sim.State
	controls *controls
	renderer *renderer

	sound    *sound.Player    // nil when audio is unavailable
	hub      *spectate.Hub    // nil unless spectating is enabled
	recorder *replay.Recorder // nil unless recording

	lastFrame     time.Time
	frameDuration time.Duration
}

func NewGame(screen tcell.Screen, state *sim.State) *Game {
	return &Game{
		screen:        screen,
		state:         state,
		controls:      newControls(),
		renderer:      newRenderer(screen),
		frameDuration: time.Second / FPS,
	}
}

// update advances the session by the real time since the previous frame.
// The first frame steps by zero.
func (g *Game) update(now time.Time) {
	deltaTime := 0.0
	if !g.lastFrame.IsZero() {
		deltaTime = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	// Cap delta time to prevent large jumps
	if deltaTime > maxDelta {
		deltaTime = maxDelta
	}

	in := g.controls.Input(now)
	if g.recorder != nil {
		g.recorder.Record(deltaTime, in)
	}

	for _, ev := range g.state.Step(deltaTime, in) {
		g.sound.Play(ev)
		switch ev.Kind {
		case sim.EventWon:
			log.Printf("level %q won at tick %d, score %d", g.state.Level.Name, g.state.Tick, g.state.Score)
		case sim.EventLost:
			log.Printf("level %q lost at tick %d, score %d", g.state.Level.Name, g.state.Tick, g.state.Score)
		case sim.EventRestart:
			log.Printf("level %q restarted", g.state.Level.Name)
			g.controls.reset()
		}
	}

	if g.hub != nil {
		g.hub.Broadcast(g.state.Snapshot())
	}
}

func (g *Game) render() {
	g.renderer.draw(g.state.Snapshot())
}

// pollInput forwards screen events until the screen is finalized or done is
// closed.
func (g *Game) pollInput(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) run() {
	// Start input handling goroutine
	inputChan := make(chan tcell.Event, 10)
	done := make(chan struct{})
	defer close(done)
	go g.pollInput(inputChan, done)

	ticker := time.NewTicker(g.frameDuration)
	defer ticker.Stop()

	for {
		now := time.Now()

		// Handle input (non-blocking)
	drain:
		for {
			select {
			case ev := <-inputChan:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if g.controls.handleKey(ev, now) {
						return
					}
				case *tcell.EventResize:
					g.screen.Sync()
				}
			default:
				break drain
			}
		}

		g.update(now)
		g.render()

		// Wait for next frame
		<-ticker.C
	}
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		return level.Default(), nil
	}
	return level.Load(path)
}

// playReplay runs a recorded session without a terminal and prints how it ended.
func playReplay(lvl *level.Level, path string) error {
	rec, err := replay.LoadFile(path)
	if err != nil {
		return err
	}
	state := sim.New(lvl)
	err = replay.Play(state, rec, func(tick int, ev sim.Event) {
		log.Printf("frame %d: %s", tick, ev.Kind)
	})
	if err != nil {
		return err
	}

	outcome := "unfinished"
	switch {
	case state.Won:
		outcome = "won"
	case state.Lost:
		outcome = "lost"
	}
	fmt.Printf("%s: %d frames, %.2fs, %s, score %d\n", lvl.Name, len(rec.Frames), state.Clock, outcome, state.Score)
	return nil
}

func startSpectating(addr string) (*spectate.Hub, *http.Server) {
	hub := spectate.NewHub(spectate.Config{})
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server: %v", err)
		}
	}()
	log.Printf("spectator feed on ws://%s/ws", addr)
	return hub, srv
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	lvl, err := loadLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded level %q: %d platforms, %d enemies", lvl.Name, len(lvl.Platforms), len(lvl.Enemies))

	if *replayFlag != "" {
		if err := playReplay(lvl, *replayFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ngscroll crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	game := NewGame(screen, sim.New(lvl))
	if *fpsFlag > 0 {
		game.frameDuration = time.Second / time.Duration(*fpsFlag)
	}

	if player, err := sound.New(sound.Config{Muted: *muteFlag}); err == nil {
		game.sound = player
		defer player.Close()
	} else {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	if *spectateFlag != "" {
		hub, srv := startSpectating(*spectateFlag)
		game.hub = hub
		defer srv.Close()
		defer hub.Close()
	}

	if *recordFlag != "" {
		game.recorder = replay.NewRecorder(lvl.Name)
	}

	game.run()

	if game.recorder != nil {
		if err := replay.SaveFile(*recordFlag, game.recorder.Recording()); err != nil {
			log.Printf("failed to save replay: %v", err)
		} else {
			log.Printf("saved %d frames to %s", game.recorder.Len(), *recordFlag)
		}
	}
}
