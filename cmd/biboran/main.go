package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/assets"
	"github.com/cvltovbiboran/falling/internal/audio"
	"github.com/cvltovbiboran/falling/internal/config"
	"github.com/cvltovbiboran/falling/internal/game"
	"github.com/cvltovbiboran/falling/internal/render"
	"github.com/cvltovbiboran/falling/internal/world"
)

var clips = []string{
	game.ClipFalling1, game.ClipFalling2, game.ClipBiboran,
	game.ClipBoxHit, game.ClipScream, game.ClipClick, game.ClipHover,
}

// Game is the Ebitengine game struct. It polls input and draws;
// all gameplay state lives in app.
type Game struct {
	app      *game.App
	renderer *render.Renderer
	dt       float64
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.app.Update(g.dt, pollInput())
}

func pollInput() game.Input {
	mx, my := ebiten.CursorPosition()
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Brake: ebiten.IsKeyPressed(ebiten.KeySpace),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),

		CursorX:      mx,
		CursorY:      my,
		MouseDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MousePressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),

		ToggleInspector: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.app)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Width, g.renderer.Height
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML file overriding the built-in tunables")
		assetDir   = flag.String("assets", "assets", "directory holding music/ and images/")
		debug      = flag.Bool("debug", false, "log at debug level")
		seed       = flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
		mute       = flag.Bool("mute", false, "disable sound output")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	cfg, err := config.LoadFile(assets.Config, *configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	data, err := assets.Levels.ReadFile(cfg.Falling.Level)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.Falling.Level).Msg("read level")
	}
	lvl, err := world.LoadLevel(data)
	if err != nil {
		log.Fatal().Err(err).Msg("parse level")
	}

	var sound game.Audio = game.NopAudio{}
	if !*mute {
		engine := audio.New(cfg.Audio, *assetDir, log.With().Str("component", "audio").Logger())
		if err := engine.Start(); err != nil {
			log.Warn().Err(err).Msg("no audio device, running silent")
		} else {
			defer engine.Close()
			engine.Preload(clips...)
			sound = engine
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	app := game.NewApp(cfg, lvl, sound, *seed, log)
	if err := app.Start(game.StateMainMenu); err != nil {
		log.Fatal().Err(err).Msg("start")
	}

	g := &Game{
		app:      app,
		renderer: render.NewRenderer(cfg.Window.Width, cfg.Window.Height, *assetDir, log.With().Str("component", "render").Logger()),
		dt:       1 / float64(cfg.Window.TPS),
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Info().Uint64("seed", *seed).Str("level", lvl.Name).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
