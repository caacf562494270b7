package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/angryball/internal/audio"
	"chosenoffset.com/angryball/internal/config"
	"chosenoffset.com/angryball/internal/game"
	"chosenoffset.com/angryball/internal/render"
	ebitenrender "chosenoffset.com/angryball/internal/render/ebiten"
	"chosenoffset.com/angryball/internal/render/terminal"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "angryball.json", "Path to the JSON config file")
	backend := flag.String("backend", "", "Rendering backend: window or terminal (overrides config)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	// Log lines would tear through the cell grid
	if cfg.Backend == config.BackendTerminal {
		logFile, err := os.OpenFile("angryball.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	sound := newSound(cfg.Audio)
	defer sound.Close()

	engine, renderer, inputMgr := newBackend(cfg)

	g := game.New(game.Options{
		ScreenWidth:    cfg.ScreenWidth,
		ScreenHeight:   cfg.ScreenHeight,
		TicksPerSecond: cfg.TicksPerSecond,
		SpawnX:         cfg.SpawnX,
		SpawnY:         cfg.SpawnY,
		Renderer:       renderer,
		InputMgr:       inputMgr,
		Sound:          sound,
	})

	// Set up the window
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle(cfg.Title + " - SPACE to nudge, ESC to quit")
	engine.SetTPS(cfg.TicksPerSecond)

	log.Printf("Starting game (%s backend, %d ticks/s)...", cfg.Backend, cfg.TicksPerSecond)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("Game over after %d ticks with %d hits", g.Tick, g.Ball.HitCount())
}

// newBackend creates the engine, renderer and input manager for the configured backend.
func newBackend(cfg *config.Config) (render.Engine, render.Renderer, render.InputManager) {
	switch cfg.Backend {
	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Failed to create terminal screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("Failed to initialize terminal screen: %v", err)
		}
		engine := terminal.NewEngine(screen)
		return engine, engine.Renderer(), engine.Input()

	default:
		renderer, err := ebitenrender.NewRenderer(cfg.FontPath, cfg.FontSize)
		if err != nil {
			log.Fatalf("Failed to create renderer: %v", err)
		}
		return ebitenrender.NewEngine(), renderer, ebitenrender.NewInputManager()
	}
}

// newSound opens the audio device, falling back to silence when it is
// disabled or unavailable.
func newSound(cfg config.AudioConfig) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}

	sm := audio.NewSoundManager(audio.Config{
		SampleRate: cfg.SampleRate,
		Volume:     cfg.Volume,
	})
	if err := sm.Initialize(); err != nil {
		log.Printf("Warning: sound disabled: %v", err)
		return audio.Nop{}
	}
	return sm
}
