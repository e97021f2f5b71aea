package menu

import (
	"github.com/automoto/quintesse/game"
)

const (
	colorLauncherValue = 0xA0A0FFFF
	colorG2Master      = 0xFFFF40FF
	colorDeathMode     = 0xFF4040FF
)

// AcidRainLevel is the start level of the extra pentomino section.
const AcidRainLevel = 1500

type launcherRow struct {
	id, fallback string
	mode         game.Mode
	sections     int
	color        uint32
}

var mainLaunchers = []launcherRow{
	{"main.pentomino", "PENTOMINO", game.ModePentomino, 12, 0},
	{"main.g1_master", "G1 MASTER", game.ModeG1Master, 10, 0},
	{"main.g1_20g", "G1 20G", game.ModeG120G, 10, 0},
	{"main.g2_master", "G2 MASTER", game.ModeG2Master, 10, colorG2Master},
	{"main.g2_death", "G2 DEATH", game.ModeG2Death, 10, colorDeathMode},
	{"main.g3_terror", "G3 TERROR", game.ModeG3Terror, 13, colorDeathMode},
}

// LoadMain replaces the live menu with the main menu. It does nothing when
// the main menu is already live. Any practice session still owned by the
// menu is stopped.
func LoadMain(s *Session, _ int) (Outcome, error) {
	if s.state.ID == MenuMain {
		return OutcomeContinue, nil
	}

	s.quitPractice()
	s.clear()

	st := &s.state
	b := newBuilder(st, MenuMain)
	st.Title = s.label("main.title", "MAIN MENU")
	st.X, st.Y = 4*16, 3*16

	for i, row := range mainLaunchers {
		o := b.graduated(row.mode, row.sections, s.label(row.id, row.fallback))
		if i == 0 {
			if d := o.GameMulti(); d != nil {
				d.AddSection(s.label("main.acid_rain", "ACID RAIN"),
					&game.Args{StartLevel: AcidRainLevel, Mode: game.ModePentomino, Replay: game.NoReplay})
			}
		}
		if d := o.GameMulti(); d != nil && s.main.Selection == i {
			d.Selection = clamp(s.main.OptSelection, 0, len(d.Sections)-1)
		}
		o.X, o.Y = 4*16, (7+i)*16
		o.ValueX, o.ValueY = o.X+10*16, o.Y
		if row.color != 0 {
			o.LabelColor = rgba(row.color)
		}
		o.ValueColor = rgba(colorLauncherValue)
	}

	o := b.action(s.label("main.multi_editor", "MULTI-EDITOR"), LoadPractice, 0)
	o.X, o.Y = 4*16, 15*16

	o = b.action(s.label("main.replay", "REPLAY"), LoadReplay, 0)
	o.X, o.Y = 4*16, 16*16

	o = b.label(s.label("main.settings", "SETTINGS"))
	o.X, o.Y = 4*16, 19*16

	volumes := []struct {
		id, fallback string
		cell         *int
	}{
		{"main.master_volume", "MASTER VOLUME", s.ctx.Volumes.Master},
		{"main.sfx_volume", "SFX VOLUME", s.ctx.Volumes.SFX},
		{"main.music_volume", "MUSIC VOLUME", s.ctx.Volumes.Music},
	}
	for i, v := range volumes {
		values, labels := numbered(0, 100)
		o = b.multi(s.label(v.id, v.fallback), v.cell, settingsChanged, values, labels)
		if d := o.Multi(); d != nil {
			d.Selection = clamp(*v.cell, 0, 100)
		}
		o.X, o.Y = 4*16, (21+i)*16
		o.ValueX, o.ValueY = 21*16, o.Y
		o.ValueFlags = TextAlignRight | TextValueBar
	}

	o = b.action(s.label("main.quit", "QUIT"), quitAction, 0)
	o.X, o.Y = 4*16, 26*16

	if b.err != nil {
		return OutcomeContinue, s.recoverMain(MenuMain, b.err)
	}

	st.Selection = s.main.Selection
	st.normalize()
	s.remember()
	s.retarget()
	return OutcomeContinue, nil
}

func quitAction(*Session, int) (Outcome, error) {
	return OutcomeTerminate, nil
}

func settingsChanged(s *Session) {
	if s.ctx.SettingsChanged != nil {
		s.ctx.SettingsChanged()
	}
}
