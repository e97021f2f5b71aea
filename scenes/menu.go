package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/i18n"
	"github.com/automoto/quintesse/menu"
	"github.com/automoto/quintesse/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Deps are the collaborators shared by the menu and the game scenes.
type Deps struct {
	Factory menu.SessionFactory
	// Replays and Saver are nil when the replay store could not be opened.
	Replays menu.ReplayLister
	Saver   systems.ReplaySaver
	Labels  *i18n.Catalog
	Player  string
	Logger  *log.Logger
}

// MenuScene displays the menus. It lives for the whole program so the
// menu memory survives game sessions.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	session      *menu.Session
	err          error
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		return ms.err
	}
	ms.ecs.Update()

	if m := systems.GetMenu(ms.ecs); m != nil && m.Terminated {
		ms.session.Quit()
		return ebiten.Termination
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Resume returns to the menu after finished has stopped.
func (ms *MenuScene) Resume(finished menu.GameSession) {
	if err := ms.session.Resume(finished); err != nil {
		ms.deps.Logger.Error("resume menu", "err", err)
	}
	if m := systems.GetMenu(ms.ecs); m != nil {
		m.WaitRelease = true
	}
	ms.sceneChanger.ChangeScene(ms)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	s, err := menu.New(&menu.Context{
		Factory:   ms.deps.Factory,
		Replays:   ms.deps.Replays,
		Clipboard: systems.NewClipboard(),
		Cues:      &systems.CuePlayer{ECS: ms.ecs},
		Labels:    ms.deps.Labels,
		Volumes: menu.Volumes{
			Master: &cfg.Settings.MasterVolume,
			SFX:    &cfg.Settings.SFXVolume,
			Music:  &cfg.Settings.MusicVolume,
		},
		SettingsChanged: systems.MarkSettingsDirty(ms.ecs),
		Player:          ms.deps.Player,
		RepeatDelay:     cfg.Menu.RepeatDelay,
		Logger:          ms.deps.Logger,
	})
	if err != nil {
		ms.err = err
		return
	}
	ms.session = s
	systems.CreateMenu(ms.ecs, components.MenuData{Session: s, Labels: ms.deps.Labels})
	if err := s.Init(); err != nil {
		ms.err = err
		return
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.newGameScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}

func (ms *MenuScene) newGameScene(gs menu.GameSession) interface{} {
	s, ok := gs.(*game.Session)
	if !ok {
		// Only game.Session can be played here; hand it straight back.
		ms.deps.Logger.Warn("cannot run session", "type", gs)
		gs.Quit()
		ms.Resume(gs)
		return ms
	}
	return NewGameScene(ms, s)
}
