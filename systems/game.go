package systems

import (
	"fmt"

	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/fonts"
	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGame advances the running session each frame. onFinish runs
// once, after the back action stopped the session.
func NewUpdateGame(onFinish func(*game.Session)) ecs.System {
	return func(e *ecs.ECS) {
		g := GetGame(e)
		if g == nil || g.Session == nil || g.Finished {
			return
		}
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			finishGame(e, g, onFinish)
			return
		}
		if err := g.Session.Update(); err != nil {
			menuLog.Error("session update", "mode", g.Session.Args().Mode, "err", err)
			finishGame(e, g, onFinish)
		}
	}
}

func finishGame(e *ecs.ECS, g *components.GameData, onFinish func(*game.Session)) {
	g.Session.Quit()
	g.Finished = true
	PlaySFX(e, cfg.SoundMenuBack)
	if onFinish != nil {
		onFinish(g.Session)
	}
}

// DrawGame renders a readout of the running session
func DrawGame(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Game.BackgroundColor, false)

	g := GetGame(e)
	if g == nil || g.Session == nil {
		return
	}
	s := g.Session
	args := s.Args()

	x, y := 32, 32
	line := func(str string, face fonts.FontName) {
		text.Draw(screen, str, face.Get(), x, y+cfg.Menu.Baseline, cfg.Game.TextColor)
		y += 20
	}

	line(args.Mode.String(), fonts.Title)
	y += 8
	line(g.Labels.Format("game.level", fmt.Sprintf("LEVEL %d", s.Level()), map[string]any{"Level": s.Level()}), fonts.Regular)
	line(replay.FormatFrames(s.Frames()), fonts.FixedSys)
	if args.Replay != game.NoReplay {
		line(fmt.Sprintf("REPLAY #%d", args.Replay), fonts.FixedSys)
	}

	if p := s.Practice(); p != nil {
		a := s.Applied()
		y += 8
		line(fmt.Sprintf("GRAV %d  LOCK %d  DAS %d", a.Timings.Grav, a.Timings.Lock, a.Timings.DAS), fonts.FixedSys)
		line(fmt.Sprintf("ARE %d  LINE ARE %d  CLEAR %d", a.Timings.ARE, a.Timings.LineARE, a.Timings.LineClear), fonts.FixedSys)
		line(fmt.Sprintf("WIDTH %d  PIECES %d", a.FieldWidth, p.PieceCount()), fonts.FixedSys)
	}

	hint := g.Labels.Localize("game.return", "ESC: RETURN TO MENU")
	text.Draw(screen, hint, fonts.Thin.Get(), 32, int(height)-16, cfg.Game.HintColor)
}

// GetGame returns the Game singleton, or nil.
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// CreateGame adds the Game singleton holding data.
func CreateGame(e *ecs.ECS, data components.GameData) *components.GameData {
	entry := e.World.Entry(e.World.Create(components.Game))
	components.Game.SetValue(entry, data)
	return components.Game.Get(entry)
}
