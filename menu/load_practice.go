package menu

import (
	"fmt"
	"strconv"

	"github.com/automoto/quintesse/game"
)

// PracticeMode is the mode the practice menu starts its session with.
const PracticeMode = game.FlagPractice | game.FlagTetrominoOnly

const (
	colorGravity     = 0x70FF70FF
	colorLock        = 0xFF5050FF
	colorARE         = 0xFFA030FF
	colorLineARE     = 0xFFFF20FF
	colorLineClear   = 0x8080FFFF
	colorDAS         = 0xFF00FFFF
	colorFloorkicks  = 0xA0A0FFFF
	colorLockProtect = 0xC0C020FF
)

// gravityPresets follow the 128 linear steps 0,2,...,254.
var gravityPresets = []struct {
	value int
	label string
}{
	{game.GravityUnit, "1G"},
	{game.GravityUnit + game.GravityUnit/2, "1.5G"},
	{2 * game.GravityUnit, "2G"},
	{3 * game.GravityUnit, "3G"},
	{4 * game.GravityUnit, "4G"},
	{5 * game.GravityUnit, "5G"},
	{20 * game.GravityUnit, "20G"},
}

func gravityChoices() ([]int, []string) {
	values := make([]int, 0, 128+len(gravityPresets))
	labels := make([]string, 0, 128+len(gravityPresets))
	for i := 0; i < 128; i++ {
		values = append(values, 2*i)
		labels = append(labels, strconv.Itoa(2*i))
	}
	for _, p := range gravityPresets {
		values = append(values, p.value)
		labels = append(labels, p.label)
	}
	return values, labels
}

// GravityIndex maps a raw gravity value to its row in the gravity selector.
// Values up to 1G map onto the linear steps; anything unrecognised above
// that selects 20G.
func GravityIndex(raw int) int {
	if raw <= game.GravityUnit {
		return max(raw/2, 0)
	}
	switch raw {
	case game.GravityUnit + game.GravityUnit/2:
		return 129
	case 2 * game.GravityUnit:
		return 130
	case 3 * game.GravityUnit:
		return 131
	case 4 * game.GravityUnit:
		return 132
	case 5 * game.GravityUnit:
		return 133
	}
	return 134
}

func gameTypeIndex(t int) int {
	switch t {
	case game.SimulateQRS:
		return 0
	case game.SimulateG1:
		return 1
	case game.SimulateG2:
		return 2
	}
	return 3
}

// seedPractice writes the values a first visit to the practice menu starts
// from.
func seedPractice(p *game.PracticeData) {
	def := game.DefaultPractice()
	p.Timings = def.Timings
	p.FieldWidth = def.FieldWidth
	p.GameType = def.GameType
	p.LockProtect = def.LockProtect
}

// LoadPractice starts a practice session and replaces the live menu with
// the editor for its settings. A failure to start the session leaves the
// current menu untouched.
func LoadPractice(s *Session, _ int) (Outcome, error) {
	gs, err := s.ctx.Factory.Create(game.Args{Mode: PracticeMode, Replay: game.NoReplay})
	if err != nil {
		return OutcomeContinue, fmt.Errorf("load practice: %w", err)
	}
	if gs == nil {
		return OutcomeContinue, fmt.Errorf("load practice: %w", ErrNoSession)
	}
	pt, ok := gs.(PracticeTarget)
	if !ok || pt.Practice() == nil {
		gs.Quit()
		return OutcomeContinue, fmt.Errorf("load practice: %w", ErrNotPractice)
	}
	if err := gs.Init(); err != nil {
		gs.Quit()
		return OutcomeContinue, fmt.Errorf("load practice: init: %w", err)
	}

	s.quitPractice()
	s.clear()
	s.practiceSession = gs

	rec := pt.Practice()
	returning := s.practice.HasMirror
	if returning {
		*rec = s.practice.Mirror
	} else {
		seedPractice(rec)
		s.practice.Selection = 0
	}

	st := &s.state
	b := newBuilder(st, MenuPractice)
	st.X, st.Y = 20*16, 2*16

	const x = 16 * 16
	row := func(o *Option, y int, c uint32) {
		o.X, o.Y = x, y
		o.ValueX, o.ValueY = x+15*8, y
		o.LabelFlags = TextFixedSys
		o.ValueFlags = TextFixedSys | TextAlignRight
		if c != 0 {
			o.LabelColor = rgba(c)
			o.ValueColor = o.LabelColor
		}
	}

	o := b.action(s.label("practice.return", "RETURN"), LoadMain, 0)
	o.X, o.Y = x, 6*16
	o.LabelFlags = TextFixedSys

	o = b.action(s.label("practice.play", "PLAY"), playPractice, 0)
	o.X, o.Y = x, 7*16
	o.LabelFlags = TextFixedSys

	values, labels := gravityChoices()
	o = b.multi(s.label("practice.gravity", "GRAVITY"), &rec.Timings.Grav, syncPractice, values, labels)
	setSelection(o, GravityIndex(rec.Timings.Grav))
	row(o, 9*16, colorGravity)

	values, labels = numbered(-1, 99)
	labels[0] = s.label("practice.off", "OFF")
	o = b.multi(s.label("practice.lock", "LOCK"), &rec.Timings.Lock, syncPractice, values, labels)
	setSelection(o, rec.Timings.Lock+1)
	row(o, 10*16, colorLock)

	timings := []struct {
		id, fallback string
		cell         *int
		c            uint32
	}{
		{"practice.are", "ARE", &rec.Timings.ARE, colorARE},
		{"practice.line_are", "LINE ARE", &rec.Timings.LineARE, colorLineARE},
		{"practice.line_clear", "LINE CLEAR", &rec.Timings.LineClear, colorLineClear},
	}
	for i, t := range timings {
		values, labels = numbered(0, 99)
		o = b.multi(s.label(t.id, t.fallback), t.cell, syncPractice, values, labels)
		setSelection(o, *t.cell)
		row(o, (11+i)*16, t.c)
	}

	values, labels = numbered(1, 99)
	o = b.multi(s.label("practice.das", "DAS"), &rec.Timings.DAS, syncPractice, values, labels)
	setSelection(o, rec.Timings.DAS-1)
	row(o, 14*16, colorDAS)

	values, labels = nil, nil
	for w := 4; w <= 12; w += 2 {
		values = append(values, w)
		labels = append(labels, strconv.Itoa(w))
	}
	o = b.multi(s.label("practice.width", "WIDTH"), &rec.FieldWidth, syncPractice, values, labels)
	setSelection(o, rec.FieldWidth/2-2)
	row(o, 15*16, 0)

	o = b.multi(s.label("practice.game_type", "GAME TYPE"), &rec.GameType, syncPractice,
		[]int{game.SimulateQRS, game.SimulateG1, game.SimulateG2, game.SimulateG3},
		[]string{"QRS", "G1", "G2", "G3"})
	setSelection(o, gameTypeIndex(rec.GameType))
	row(o, 16*16, 0)

	off, on := s.label("practice.off", "OFF"), s.label("practice.on", "ON")
	o = b.toggle(s.label("practice.invisible", "INVISIBLE"), &rec.Invisible, syncPractice, off, on)
	row(o, 17*16, 0)
	o = b.toggle(s.label("practice.brackets", "BRACKETS"), &rec.Brackets, syncPractice, off, on)
	row(o, 18*16, 0)
	o = b.toggle(s.label("practice.floorkicks", "INFINITE\nFLOORKICKS"), &rec.InfiniteFloorkicks, syncPractice, off, on)
	row(o, 19*16, 0)
	o.ValueY = o.Y + 16
	o.LabelColor = rgba(colorFloorkicks)

	o = b.multi(s.label("practice.lock_protect", "LOCK PROTECT"), &rec.LockProtect, syncPractice,
		[]int{game.LockProtectDefault, game.LockProtectOff, game.LockProtectOn},
		[]string{s.label("practice.default", "DEFAULT"), off, on})
	setSelection(o, rec.LockProtect+1)
	row(o, 21*16, 0)
	o.ValueY = o.Y + 16
	o.LabelColor = rgba(colorLockProtect)

	o = b.text(s.label("practice.sequence", "PIECE SEQUENCE"), syncPractice, 16)
	if t := o.Text(); t != nil {
		t.SetText(rec.PieceSequence)
	}
	o.X, o.Y = x, 23*16
	o.ValueX, o.ValueY = x+16, o.Y+16
	o.LabelFlags = TextFixedSys
	o.ValueFlags = TextFixedSys

	if b.err != nil {
		return OutcomeContinue, s.recoverMain(MenuPractice, b.err)
	}

	st.Selection = s.practice.Selection
	st.normalize()
	s.remember()
	s.retarget()
	syncPractice(s)
	return OutcomeContinue, nil
}

// setSelection clamps i into the selector's range without touching the
// bound cell.
func setSelection(o *Option, i int) {
	if d := o.Multi(); d != nil && len(d.Values) > 0 {
		d.Selection = clamp(i, 0, len(d.Values)-1)
	}
}

// syncPractice copies the piece sequence into the practice record, applies
// the record to the live session and keeps the remembered copy current.
func syncPractice(s *Session) {
	pt, ok := s.practiceSession.(PracticeTarget)
	if !ok {
		return
	}
	rec := pt.Practice()
	if rec == nil {
		return
	}
	if s.state.ID == MenuPractice {
		for _, o := range s.state.Options {
			if t := o.Text(); t != nil {
				rec.PieceSequence = t.String()
				break
			}
		}
	}
	pt.ApplyPractice()
	s.practice.Mirror = *rec
	s.practice.HasMirror = true
}

// playPractice hands the practice session to the caller. The menu stays
// on the editor so Resume can rebuild it when the run ends.
func playPractice(s *Session, _ int) (Outcome, error) {
	if s.practiceSession == nil {
		return OutcomeContinue, nil
	}
	syncPractice(s)
	s.handoff(s.practiceSession)
	return OutcomeContinue, nil
}
