package systems

import (
	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/menu"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var menuLog = log.WithPrefix("systems")

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system. createGameScene builds the
// scene that runs a session the menu handed off.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func(menu.GameSession) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		m := GetMenu(e)
		if m == nil || m.Session == nil || m.Terminated {
			return
		}
		input := getOrCreateInput(e)
		if m.WaitRelease {
			if anyHeld(input) {
				return
			}
			m.WaitRelease = false
		}

		before := m.Session.State().ID
		out, err := m.Session.Input(MenuFrame(input, cfg.Menu.RepeatDelay))
		if err != nil {
			menuLog.Error("menu input", "err", err)
		}
		if after := m.Session.State().ID; after != before {
			if after == menu.MenuMain {
				PlaySFX(e, cfg.SoundMenuBack)
			} else {
				PlaySFX(e, cfg.SoundMenuSelect)
			}
		}

		if out == menu.OutcomeTerminate {
			saveIfDirty(m)
			m.Terminated = true
			return
		}

		// Volume rows change on every repeat tick; save once they settle.
		if !input.Current[cfg.ActionMenuLeft] && !input.Current[cfg.ActionMenuRight] {
			saveIfDirty(m)
		}

		animateCursor(m)

		if gs := m.Session.TakeLaunched(); gs != nil {
			PlaySFX(e, cfg.SoundMenuSelect)
			saveIfDirty(m)
			sceneChanger.ChangeScene(createGameScene(gs))
		}
	}
}

func anyHeld(input *components.InputData) bool {
	for _, on := range input.Current {
		if on {
			return true
		}
	}
	return false
}

func saveIfDirty(m *components.MenuData) {
	if !m.SettingsDirty {
		return
	}
	m.SettingsDirty = false
	_ = SaveSettings()
}

// animateCursor pulses the selection highlight, restarting the pulse
// whenever focus moves.
func animateCursor(m *components.MenuData) {
	st := m.Session.State()
	if m.Cursor == nil || st.Selection != m.LastFocus || st.ID != m.LastMenu {
		m.Cursor = newCursorPulse()
		m.LastFocus = st.Selection
		m.LastMenu = st.ID
	}
	v, _, done := m.Cursor.Update(1 / float32(ebiten.TPS()))
	if done {
		m.Cursor.Reset()
	}
	m.CursorAlpha = v
}

func newCursorPulse() *gween.Sequence {
	d := cfg.Menu.CursorPulse
	return gween.NewSequence(
		gween.New(1, 0.45, d, ease.InOutSine),
		gween.New(0.45, 1, d, ease.InOutSine),
	)
}

// GetMenu returns the singleton Menu component, or nil before the scene
// created it.
func GetMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(entry)
}

// CreateMenu adds the Menu singleton holding data.
func CreateMenu(e *ecs.ECS, data components.MenuData) *components.MenuData {
	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, data)
	return components.Menu.Get(entry)
}

// MarkSettingsDirty is the menu's settings callback: volumes are live in
// cfg.Settings already, only the save is deferred.
func MarkSettingsDirty(e *ecs.ECS) func() {
	return func() {
		if m := GetMenu(e); m != nil {
			m.SettingsDirty = true
		}
	}
}
