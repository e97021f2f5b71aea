package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/fonts"
	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/i18n"
	"github.com/automoto/quintesse/menu"
	"github.com/automoto/quintesse/replay"
	"github.com/automoto/quintesse/scenes"
	"github.com/automoto/quintesse/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(deps scenes.Deps) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	ms := scenes.NewMenuScene(g, deps)
	g.scene = ms
	if config.Debug.SkipMenu {
		s, err := deps.Factory.Create(game.Args{Mode: game.FlagPractice, Replay: game.NoReplay})
		if err == nil && s.Init() == nil {
			g.scene = scenes.NewGameScene(ms, s.(*game.Session))
		}
	}
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// openReplays opens the replay database in the user config directory.
func openReplays(logger *log.Logger) *replay.SQLiteStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		logger.Warn("no config directory, replays disabled", "err", err)
		return nil
	}
	path := filepath.Join(dir, config.Storage.AppName, config.Storage.ReplayDB)
	store, err := replay.Open(path)
	if err != nil {
		logger.Warn("could not open replay store", "path", path, "err", err)
		return nil
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Warn("could not prepare replay store", "path", path, "err", err)
		_ = store.Close()
		return nil
	}
	return store
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "Start a practice session without the menu")
	flag.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&config.Storage.Player, "player", config.Storage.Player, "Player name replays are listed for")
	lang := flag.String("lang", "", "Menu language (BCP 47), overrides the saved setting")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "quintesse",
	})
	if level, err := log.ParseLevel(config.Debug.LogLevel); err == nil {
		logger.SetLevel(level)
		log.SetLevel(level)
	} else {
		logger.Warn("unknown log level", "level", config.Debug.LogLevel)
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err == nil {
		systems.LoadSettings()
	}
	if *lang != "" {
		config.Settings.Language = *lang
	}

	labels, err := i18n.New(config.Settings.Language)
	if err != nil {
		logger.Warn("could not load language, using English", "lang", config.Settings.Language, "err", err)
		labels, err = i18n.New("")
		if err != nil {
			logger.Fatal("could not load labels", "err", err)
		}
	}

	systems.PreloadAllSFX()

	factory := game.NewFactory(logger.WithPrefix("game"))
	deps := scenes.Deps{
		Factory: menu.SessionFactoryFunc(func(args game.Args) (menu.GameSession, error) {
			s, err := factory.Create(args)
			if err != nil {
				return nil, err
			}
			return s, nil
		}),
		Labels: labels,
		Player: config.Storage.Player,
		Logger: logger,
	}
	store := openReplays(logger)
	if store != nil {
		deps.Replays = store
		deps.Saver = store
	}

	err = ebiten.RunGame(NewGame(deps))
	_ = systems.SaveSettings()
	_ = store.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", "err", err)
	}
}
