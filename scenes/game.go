package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one session handed off by the menu
type GameScene struct {
	ecs     *ecs.ECS
	menu    *MenuScene
	session *game.Session
	once    sync.Once
}

func NewGameScene(ms *MenuScene, s *game.Session) *GameScene {
	return &GameScene{menu: ms, session: s}
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.CreateGame(gs.ecs, components.GameData{Session: gs.session, Labels: gs.menu.deps.Labels})

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGame(gs.finish))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGame)
}

func (gs *GameScene) finish(s *game.Session) {
	systems.RecordSession(gs.menu.deps.Saver, gs.menu.deps.Player, s)
	gs.menu.Resume(s)
}
