package systems

import (
	"fmt"
	"image/color"
	"strconv"

	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/fonts"
	"github.com/automoto/quintesse/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMenu renders the live menu state
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	m := GetMenu(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	if m == nil || m.Session == nil {
		return
	}
	st := m.Session.State()

	if st.Title != "" {
		text.Draw(screen, st.Title, fonts.Title.Get(), st.X, st.Y+cfg.Menu.Baseline, cfg.Menu.TitleColor)
	}

	lo, hi := st.PageBounds()
	for i := lo; i < hi; i++ {
		o := st.Options[i]
		if i == st.Selection && o.Selectable() {
			drawCursor(screen, o, m.CursorAlpha)
		}
		drawText(screen, o.Label, o.X, o.Y, o.LabelFlags, o.LabelColor)
		drawValue(screen, o)
	}

	if st.Paging.Enabled && st.PageCount() > 1 {
		page := m.Labels.Format("replay.page", fmt.Sprintf("PAGE %d/%d", st.Paging.Page+1, st.PageCount()),
			map[string]any{"Page": st.Paging.Page + 1, "Pages": st.PageCount()})
		drawText(screen, page, st.Paging.TextX, st.Paging.TextY, menu.TextThin|menu.TextAlignRight, cfg.Menu.TitleColor)
	}
}

func faceFor(flags menu.TextFlags) font.Face {
	switch {
	case flags&menu.TextFixedSys != 0:
		return fonts.FixedSys.Get()
	case flags&menu.TextThin != 0:
		return fonts.Thin.Get()
	}
	return fonts.Regular.Get()
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// drawText draws s with its top edge at y. Right aligned text ends at x.
func drawText(screen *ebiten.Image, s string, x, y int, flags menu.TextFlags, clr color.Color) {
	if s == "" {
		return
	}
	face := faceFor(flags)
	if flags&menu.TextAlignRight != 0 {
		x -= textWidth(face, s)
	}
	text.Draw(screen, s, face, x, y+cfg.Menu.Baseline, clr)
}

func drawCursor(screen *ebiten.Image, o *menu.Option, alpha float32) {
	pad := cfg.Menu.CursorPad
	w := textWidth(faceFor(o.LabelFlags), o.Label)
	if v := o.ValueText(); v != "" && o.ValueFlags&menu.TextAlignRight == 0 && o.ValueX > o.X {
		w = o.ValueX - o.X + textWidth(faceFor(o.ValueFlags), v)
	}
	vector.FillRect(screen,
		float32(o.X)-pad, float32(o.Y)-pad,
		float32(w)+2*pad, float32(cfg.Menu.Baseline)+2*pad,
		fade(cfg.Menu.CursorColor, alpha), false)
}

func drawValue(screen *ebiten.Image, o *menu.Option) {
	switch o.Kind {
	case menu.KindTextInput:
		drawTextField(screen, o)
		return
	case menu.KindMultiOpt:
		if o.ValueFlags&menu.TextValueBar != 0 {
			drawValueBar(screen, o)
			return
		}
	}
	drawText(screen, o.ValueText(), o.ValueX, o.ValueY, o.ValueFlags, o.ValueColor)
}

// drawValueBar draws a percentage bar ending at ValueX with the number to
// its left.
func drawValueBar(screen *ebiten.Image, o *menu.Option) {
	d := o.Multi()
	if d == nil || d.Selection < 0 || d.Selection >= len(d.Values) {
		return
	}
	v := d.Values[d.Selection]
	w, h := cfg.Menu.BarWidth, cfg.Menu.BarHeight
	x := float32(o.ValueX) - w
	y := float32(o.ValueY) + (float32(cfg.Menu.Baseline)-h)/2

	vector.FillRect(screen, x, y, w, h, cfg.Menu.BarBackColor, false)
	filled := w * float32(v) / float32(cfg.Audio.VolumeMax)
	vector.FillRect(screen, x, y, filled, h, cfg.Menu.BarColor, false)

	drawText(screen, strconv.Itoa(v), int(x)-6, o.ValueY, o.ValueFlags&^menu.TextValueBar|menu.TextAlignRight, o.ValueColor)
}

func drawTextField(screen *ebiten.Image, o *menu.Option) {
	d := o.Text()
	if d == nil {
		return
	}
	face := faceFor(o.ValueFlags | menu.TextFixedSys)
	view := d.View()
	clr := o.ValueColor
	if d.Active() {
		clr = cfg.Menu.EditColor
	}

	if d.Active() && d.Selected() && view != "" {
		vector.FillRect(screen, float32(o.ValueX), float32(o.ValueY),
			float32(textWidth(face, view)), float32(cfg.Menu.Baseline)+2, cfg.Menu.CursorColor, false)
	}
	text.Draw(screen, view, face, o.ValueX, o.ValueY+cfg.Menu.Baseline, clr)

	if d.Active() {
		runes := []rune(view)
		n := min(max(d.Cursor()-d.Leftmost(), 0), len(runes))
		x := float32(o.ValueX + textWidth(face, string(runes[:n])))
		vector.StrokeLine(screen, x, float32(o.ValueY), x, float32(o.ValueY+cfg.Menu.Baseline+2), 1, clr, false)
	}
}

// fade scales a colour's alpha, keeping it premultiplied.
func fade(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
