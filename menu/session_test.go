package menu

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
)

// Main menu rows.
const (
	rowPentomino   = 0
	rowG2Master    = 3
	rowMultiEditor = 6
	rowReplay      = 7
	rowSettings    = 8
	rowMaster      = 9
	rowQuit        = 12
)

// Practice menu rows.
const (
	rowPlay     = 1
	rowGravity  = 2
	rowLock     = 3
	rowDAS      = 7
	rowWidth    = 8
	rowInvis    = 10
	rowSequence = 14
)

func TestNewRequiresContextAndFactory(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoContext) {
		t.Errorf("expected ErrNoContext, got %v", err)
	}
	if _, err := New(&Context{}); !errors.Is(err, ErrNoFactory) {
		t.Errorf("expected ErrNoFactory, got %v", err)
	}
}

func TestMainMenuLayout(t *testing.T) {
	fx := newFixture(t)
	st := fx.s.State()

	if st.ID != MenuMain || st.Title != "MAIN MENU" {
		t.Fatalf("unexpected menu %v %q", st.ID, st.Title)
	}
	if len(st.Options) != 13 {
		t.Fatalf("expected 13 rows, got %d", len(st.Options))
	}
	if st.X != 64 || st.Y != 48 {
		t.Errorf("origin = (%d,%d)", st.X, st.Y)
	}

	pento := st.Options[rowPentomino].GameMulti()
	if len(pento.Sections) != 13 {
		t.Fatalf("pentomino sections = %d", len(pento.Sections))
	}
	acid := pento.Sections[12]
	if acid.Label != "ACID RAIN" || acid.Args.StartLevel != AcidRainLevel || acid.Args.Mode != game.ModePentomino {
		t.Errorf("unexpected acid rain section %+v", acid)
	}
	if n := len(st.Options[5].GameMulti().Sections); n != 13 {
		t.Errorf("G3 TERROR sections = %d", n)
	}
	if st.Options[rowSettings].Kind != KindLabel {
		t.Error("SETTINGS should be a label")
	}
	vol := st.Options[rowMaster]
	if vol.Multi().Selection != 80 || vol.ValueFlags&TextValueBar == 0 {
		t.Errorf("master volume row: selection %d flags %b", vol.Multi().Selection, vol.ValueFlags)
	}
}

func TestMainMenuWrapsAround(t *testing.T) {
	fx := newFixture(t)
	st := fx.s.State()

	fx.focus(rowQuit)
	fx.input(press(ButtonDown))
	if st.Selection != 0 {
		t.Errorf("down from QUIT should wrap to 0, got %d", st.Selection)
	}
	fx.input(press(ButtonUp))
	if st.Selection != rowQuit {
		t.Errorf("up from 0 should wrap to QUIT, got %d", st.Selection)
	}

	fx.focus(rowReplay)
	fx.input(press(ButtonDown))
	if st.Selection != rowMaster {
		t.Errorf("down from REPLAY should skip SETTINGS, got %d", st.Selection)
	}
}

func TestRepeatAndCue(t *testing.T) {
	fx := newFixture(t)
	st := fx.s.State()

	fx.input(press(ButtonDown))
	if st.Selection != 1 || len(fx.cues.played) != 1 {
		t.Fatalf("press: selection %d cues %d", st.Selection, len(fx.cues.played))
	}

	for frames := 2; frames <= DefaultRepeatDelay; frames++ {
		fx.input(held(ButtonDown, frames))
	}
	if st.Selection != 1 {
		t.Fatalf("held input should not repeat before the delay, selection %d", st.Selection)
	}

	fx.input(held(ButtonDown, DefaultRepeatDelay+1))
	fx.input(held(ButtonDown, DefaultRepeatDelay+2))
	if st.Selection != 3 {
		t.Errorf("repeat should move every frame after the delay, selection %d", st.Selection)
	}
	if len(fx.cues.played) != 1 {
		t.Errorf("repeat ticks should not play the cue, played %d", len(fx.cues.played))
	}
}

func TestVolumeRowTracksCell(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowMaster)
	d := fx.s.State().Options[rowMaster].Multi()

	for i := 0; i < 30; i++ {
		fx.input(press(ButtonRight))
		if fx.volumes[0] != d.Values[d.Selection] {
			t.Fatalf("cell %d != value %d", fx.volumes[0], d.Values[d.Selection])
		}
	}
	if fx.volumes[0] != 100 {
		t.Errorf("volume should clamp at 100, got %d", fx.volumes[0])
	}
	if fx.changed != 20 {
		t.Errorf("settings hook ran %d times, want 20", fx.changed)
	}

	fx.input(press(ButtonLeft))
	if fx.volumes[0] != 99 || fx.volumes[0] != d.Values[d.Selection] {
		t.Errorf("left: cell %d", fx.volumes[0])
	}
}

func TestLaunchSelectedSection(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowG2Master)
	fx.input(press(ButtonRight))
	fx.input(press(ButtonRight))

	if fx.s.MainMemory().OptSelection != 2 {
		t.Errorf("opt selection not remembered: %+v", fx.s.MainMemory())
	}

	fx.input(press(ButtonConfirm))
	gs := fx.s.TakeLaunched()
	if gs == nil {
		t.Fatal("expected a launched session")
	}
	fs := gs.(*fakeSession)
	want := game.Args{StartLevel: 200, Mode: game.ModeG2Master, Replay: game.NoReplay}
	if fs.args != want {
		t.Errorf("launched with %+v, want %+v", fs.args, want)
	}
	if fs.inits != 1 {
		t.Errorf("session initialized %d times", fs.inits)
	}
	if fx.s.TakeLaunched() != nil {
		t.Error("launched session should only be taken once")
	}
}

func TestLaunchFailureLeavesMenu(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowG2Master)
	fx.factory.err = errBoom

	fx.input(press(ButtonStart))
	if fx.s.TakeLaunched() != nil {
		t.Fatal("failed launch should not hand off")
	}
	if fx.s.State().ID != MenuMain || fx.s.State().Selection != rowG2Master {
		t.Error("failed launch changed the menu")
	}

	fx.factory.err = nil
	fx.factory.initErr = errBoom
	fx.input(press(ButtonStart))
	if fx.s.TakeLaunched() != nil {
		t.Fatal("session failing init should not hand off")
	}
	if fx.factory.last().quits != 1 {
		t.Error("session failing init should be quit")
	}

	fx.factory.initErr = nil
	fx.input(press(ButtonStart))
	if fx.s.TakeLaunched() == nil {
		t.Error("launch should be retryable")
	}
}

func TestQuitTerminates(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowQuit)
	if out := fx.input(press(ButtonConfirm)); out != OutcomeTerminate {
		t.Errorf("expected terminate, got %v", out)
	}
}

func TestMainMemoryRestoresOnlyMatchingRow(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowG2Master)
	fx.input(press(ButtonRight))
	fx.input(press(ButtonRight))
	fx.input(press(ButtonRight))

	fx.focus(rowReplay)
	fx.input(press(ButtonConfirm))
	if fx.s.State().ID != MenuReplay {
		t.Fatalf("expected replay menu, got %v", fx.s.State().ID)
	}
	fx.input(press(ButtonEscape))

	st := fx.s.State()
	if st.ID != MenuMain || st.Selection != rowReplay {
		t.Fatalf("main menu not restored: %v selection %d", st.ID, st.Selection)
	}
	if got := st.Options[rowG2Master].GameMulti().Selection; got != 0 {
		t.Errorf("non-matching row restored opt selection %d", got)
	}

	fx.input(press(ButtonConfirm))
	fx.s.main = MainMemory{Selection: rowG2Master, OptSelection: 3}
	fx.input(press(ButtonEscape))
	st = fx.s.State()
	if st.Selection != rowG2Master {
		t.Fatalf("selection = %d, want %d", st.Selection, rowG2Master)
	}
	if got := st.Options[rowG2Master].GameMulti().Selection; got != 3 {
		t.Errorf("matching row opt selection = %d, want 3", got)
	}
}

func TestEscapeOnMainIsNoop(t *testing.T) {
	fx := newFixture(t)
	before := fx.s.State().Options[0]
	fx.input(press(ButtonEscape))
	if fx.s.State().Options[0] != before {
		t.Error("escape on the main menu rebuilt it")
	}
}

func enterPractice(t *testing.T, fx *fixture) *fakeSession {
	t.Helper()
	fx.focus(rowMultiEditor)
	if _, err := fx.s.Input(press(ButtonConfirm)); err != nil {
		t.Fatalf("enter practice: %v", err)
	}
	if fx.s.State().ID != MenuPractice {
		t.Fatalf("expected practice menu, got %v", fx.s.State().ID)
	}
	return fx.factory.last()
}

func TestPracticeFirstEntryDefaults(t *testing.T) {
	fx := newFixture(t)
	ps := enterPractice(t, fx)
	st := fx.s.State()

	if len(st.Options) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(st.Options))
	}
	if ps.args.Mode != PracticeMode || ps.inits != 1 {
		t.Errorf("practice session %+v inits %d", ps.args, ps.inits)
	}
	checks := map[int]int{rowGravity: 134, rowLock: 31, rowDAS: 7, rowWidth: 3}
	for row, want := range checks {
		if got := st.Options[row].Multi().Selection; got != want {
			t.Errorf("row %d (%s) selection %d, want %d", row, st.Options[row].Label, got, want)
		}
	}
	if got := st.Options[rowSequence].Text().Visible; got != 16 {
		t.Errorf("sequence visible width = %d", got)
	}
	if ps.applied == 0 {
		t.Error("practice record not applied to the session")
	}
	if !fx.s.PracticeMemory().HasMirror {
		t.Error("mirror not recorded")
	}
}

func TestPracticeReentryRestoresValues(t *testing.T) {
	fx := newFixture(t)
	first := enterPractice(t, fx)

	fx.focus(rowDAS)
	for i := 0; i < 3; i++ {
		fx.input(press(ButtonRight))
	}
	if first.practice.Timings.DAS != 11 {
		t.Fatalf("DAS cell = %d, want 11", first.practice.Timings.DAS)
	}

	fx.focus(rowSequence)
	fx.input(edits(TextCommand{Op: TextToggle}, TextCommand{Op: TextInsert, Text: "IJL"}, TextCommand{Op: TextToggle}))
	if first.practice.PieceSequence != "IJL" {
		t.Fatalf("sequence not synced: %q", first.practice.PieceSequence)
	}
	fx.focus(rowDAS)

	fx.input(press(ButtonEscape))
	if first.quits != 1 {
		t.Errorf("practice session quit %d times on leaving", first.quits)
	}

	second := enterPractice(t, fx)
	if second == first {
		t.Fatal("expected a new practice session")
	}
	st := fx.s.State()
	if got := st.Options[rowDAS].Multi().Selection; got != 11-1 {
		t.Errorf("DAS selection = %d, want %d", got, 11-1)
	}
	if second.practice.Timings.DAS != 11 {
		t.Errorf("new session DAS = %d", second.practice.Timings.DAS)
	}
	if st.Selection != rowDAS {
		t.Errorf("selection = %d, want %d", st.Selection, rowDAS)
	}
	if got := st.Options[rowSequence].Text().String(); got != "IJL" {
		t.Errorf("sequence restored as %q", got)
	}
}

func TestPracticeFactoryFailureKeepsMenu(t *testing.T) {
	fx := newFixture(t)
	fx.factory.err = errBoom
	fx.focus(rowMultiEditor)

	_, err := fx.s.Input(press(ButtonConfirm))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected factory error, got %v", err)
	}
	st := fx.s.State()
	if st.ID != MenuMain || len(st.Options) != 13 {
		t.Errorf("main menu torn down on failure: %v %d", st.ID, len(st.Options))
	}
}

func TestFactoryWithoutSessionIsFailedLaunch(t *testing.T) {
	fx := newFixture(t)
	fx.s.ctx.Factory = SessionFactoryFunc(func(game.Args) (GameSession, error) {
		return nil, nil
	})

	fx.focus(rowPentomino)
	fx.input(press(ButtonConfirm))
	if fx.s.TakeLaunched() != nil {
		t.Fatal("nil session should not hand off")
	}
	if st := fx.s.State(); st.ID != MenuMain || st.Selection != rowPentomino {
		t.Errorf("failed launch changed the menu: %v %d", st.ID, st.Selection)
	}

	fx.focus(rowMultiEditor)
	_, err := fx.s.Input(press(ButtonConfirm))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	st := fx.s.State()
	if st.ID != MenuMain || len(st.Options) != 13 || st.Selection != rowMultiEditor {
		t.Errorf("main menu torn down: %v %d rows, selection %d", st.ID, len(st.Options), st.Selection)
	}

	fx.s.ctx.Factory = fx.factory
	enterPractice(t, fx)
}

// failBuild makes the first option of kind built from now on fail, and
// returns the options the loader built before that.
func failBuild(t *testing.T, kind Kind) *[]*Option {
	t.Helper()
	orig := newOption
	t.Cleanup(func() { newOption = orig })

	var built []*Option
	armed := true
	newOption = func(k Kind, onUpdate UpdateFunc, label string) (*Option, error) {
		if !armed {
			return orig(k, onUpdate, label)
		}
		if k == kind {
			armed = false
			return nil, errBoom
		}
		o, err := orig(k, onUpdate, label)
		if err == nil {
			built = append(built, o)
		}
		return o, err
	}
	return &built
}

func assertDestroyed(t *testing.T, built []*Option) {
	t.Helper()
	if len(built) == 0 {
		t.Fatal("nothing was built before the failure")
	}
	for i, o := range built {
		if o.payload != nil || o.OnUpdate != nil {
			t.Errorf("option %d (%s) of the partial menu was not destroyed", i, o.Label)
		}
	}
}

func TestPracticeBuildFailureFallsBackToMain(t *testing.T) {
	fx := newFixture(t)
	built := failBuild(t, KindTextInput)
	fx.focus(rowMultiEditor)

	_, err := fx.s.Input(press(ButtonConfirm))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected build error, got %v", err)
	}
	assertDestroyed(t, *built)
	st := fx.s.State()
	if st.ID != MenuMain || len(st.Options) != 13 {
		t.Fatalf("expected main menu, got %v with %d rows", st.ID, len(st.Options))
	}
	if fx.s.TextEditing() {
		t.Error("text target survived the rollback")
	}
	if ps := fx.factory.last(); ps == nil || ps.quits != 1 {
		t.Error("practice session should be quit on rollback")
	}
}

func TestReplayBuildFailureFallsBackToMain(t *testing.T) {
	fx := newFixture(t)
	fx.replays.records = replayRecords(3)
	built := failBuild(t, KindGame)
	fx.focus(rowReplay)

	_, err := fx.s.Input(press(ButtonConfirm))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected build error, got %v", err)
	}
	assertDestroyed(t, *built)
	if st := fx.s.State(); st.ID != MenuMain || len(st.Options) != 13 {
		t.Fatalf("expected main menu, got %v with %d rows", st.ID, len(st.Options))
	}
}

func TestMainBuildFailureClearsMenu(t *testing.T) {
	fx := newFixture(t)
	orig := newGraduated
	t.Cleanup(func() { newGraduated = orig })
	newGraduated = func(game.Mode, int, string) (*Option, error) {
		return nil, errBoom
	}

	if _, err := LoadMain(fx.s, 0); !errors.Is(err, errBoom) {
		t.Fatalf("expected build error, got %v", err)
	}
	if n := len(fx.s.State().Options); n != 0 {
		t.Errorf("failed main build left %d rows", n)
	}

	newGraduated = orig
	if _, err := LoadMain(fx.s, 0); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if n := len(fx.s.State().Options); n != 13 {
		t.Errorf("rebuilt main menu has %d rows", n)
	}
}

func TestToggleStaysBinary(t *testing.T) {
	fx := newFixture(t)
	ps := enterPractice(t, fx)
	fx.focus(rowInvis)

	for i := 0; i < 7; i++ {
		buttons := []Button{ButtonLeft, ButtonRight, ButtonConfirm}
		fx.input(press(buttons[i%3]))
	}
	if !ps.practice.Invisible {
		t.Error("seven flips should leave the toggle on")
	}
	if got := fx.s.State().Options[rowInvis].ValueText(); got != "ON" {
		t.Errorf("value text = %q", got)
	}
}

func TestTextEditModeSuppressesNavigation(t *testing.T) {
	fx := newFixture(t)
	enterPractice(t, fx)
	fx.focus(rowSequence)
	st := fx.s.State()

	fx.input(edits(TextCommand{Op: TextToggle}))
	if !fx.s.TextEditing() || !st.Options[rowSequence].Text().Active() {
		t.Fatal("toggle should enter edit mode")
	}
	fx.input(press(ButtonUp))
	fx.input(press(ButtonEscape))
	if st.ID != MenuPractice || st.Selection != rowSequence {
		t.Fatalf("navigation ran during edit mode: %v %d", st.ID, st.Selection)
	}

	f := edits(TextCommand{Op: TextInsert, Text: "SZ"})
	f.EmergencyOverride = true
	fx.input(f)
	if got := st.Options[rowSequence].Text().String(); got != "" {
		t.Errorf("override should suppress edits, got %q", got)
	}

	fx.input(edits(TextCommand{Op: TextToggle}))
	fx.input(press(ButtonUp))
	if st.Selection == rowSequence {
		t.Error("navigation should resume after leaving edit mode")
	}
}

func TestEmergencyOverrideSuppressesToggle(t *testing.T) {
	fx := newFixture(t)
	enterPractice(t, fx)
	fx.focus(rowSequence)

	override := edits(TextCommand{Op: TextToggle})
	override.EmergencyOverride = true

	fx.input(override)
	if fx.s.TextEditing() {
		t.Fatal("override should keep the toggle from entering edit mode")
	}

	fx.input(edits(TextCommand{Op: TextToggle}))
	if !fx.s.TextEditing() {
		t.Fatal("toggle should enter edit mode")
	}
	fx.input(override)
	if !fx.s.TextEditing() {
		t.Error("override should keep the toggle from leaving edit mode")
	}
}

func TestEditsIgnoredWithoutTarget(t *testing.T) {
	fx := newFixture(t)
	fx.input(edits(TextCommand{Op: TextToggle}))
	if fx.s.TextEditing() {
		t.Error("edit mode entered without a text target")
	}
}

func TestPracticePlayAndResume(t *testing.T) {
	fx := newFixture(t)
	ps := enterPractice(t, fx)
	fx.focus(rowPlay)

	fx.input(press(ButtonConfirm))
	gs := fx.s.TakeLaunched()
	if gs != GameSession(ps) {
		t.Fatal("PLAY should hand off the practice session")
	}

	gs.Quit()
	if err := fx.s.Resume(gs); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if fx.s.State().ID != MenuPractice {
		t.Errorf("expected practice menu after resume, got %v", fx.s.State().ID)
	}
	if fx.factory.last() == ps {
		t.Error("resume should start a fresh practice session")
	}
	if fx.s.State().Selection != rowPlay {
		t.Errorf("selection = %d", fx.s.State().Selection)
	}
}

func TestResumeIgnoresOtherSessions(t *testing.T) {
	fx := newFixture(t)
	other := &fakeSession{}
	if err := fx.s.Resume(other); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if fx.s.State().ID != MenuMain {
		t.Error("resume of a non-practice session changed the menu")
	}
}

func TestGravityIndex(t *testing.T) {
	tests := map[int]int{
		0:    0,
		-4:   0,
		130:  65,
		254:  127,
		256:  128,
		384:  129,
		512:  130,
		1280: 133,
		5120: 134,
		999:  134,
	}
	values, labels := gravityChoices()
	for raw, want := range tests {
		if got := GravityIndex(raw); got != want {
			t.Errorf("GravityIndex(%d) = %d, want %d", raw, got, want)
		}
	}
	if labels[GravityIndex(256)] != "1G" || values[128] != 256 {
		t.Error("256 should map to the 1G entry")
	}
}

func TestReplayBrowserEmpty(t *testing.T) {
	fx := newFixture(t)
	fx.focus(rowReplay)
	fx.input(press(ButtonConfirm))

	st := fx.s.State()
	if st.ID != MenuReplay || len(st.Options) != 1 {
		t.Fatalf("expected RETURN only, got %v with %d rows", st.ID, len(st.Options))
	}
	if !st.Paging.Enabled || st.Paging.Length != 20 {
		t.Errorf("paging = %+v", st.Paging)
	}
	if fx.replays.player != "ARK" {
		t.Errorf("listed replays for %q", fx.replays.player)
	}

	fx.input(press(ButtonConfirm))
	if fx.s.State().ID != MenuMain {
		t.Error("RETURN should go back to the main menu")
	}
}

func TestReplayBrowserStoreError(t *testing.T) {
	fx := newFixture(t)
	fx.replays.err = errBoom
	fx.focus(rowReplay)
	if _, err := fx.s.Input(press(ButtonConfirm)); err != nil {
		t.Fatalf("store error should not surface: %v", err)
	}
	if n := len(fx.s.State().Options); n != 1 {
		t.Errorf("expected RETURN only, got %d rows", n)
	}
}

func replayRecords(n int) []replay.Record {
	out := make([]replay.Record, n)
	for i := range out {
		out[i] = replay.Record{
			Index:    int64(100 + i),
			Mode:     game.ModeG1Master,
			Level:    i,
			Recorded: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func TestReplayBrowserLaunchesReplay(t *testing.T) {
	fx := newFixture(t)
	fx.replays.records = replayRecords(45)
	fx.focus(rowReplay)
	fx.input(press(ButtonConfirm))
	st := fx.s.State()

	if len(st.Options) != 46 {
		t.Fatalf("expected 46 rows, got %d", len(st.Options))
	}
	fx.input(press(ButtonRight))
	if st.Paging.Page != 1 || st.Selection != 20 {
		t.Fatalf("page %d selection %d", st.Paging.Page, st.Selection)
	}

	fx.input(press(ButtonConfirm))
	gs := fx.s.TakeLaunched()
	if gs == nil {
		t.Fatal("expected a replay launch")
	}
	want := game.Args{StartLevel: 0, Mode: game.ModeG1Master, Replay: 119}
	if got := gs.(*fakeSession).args; got != want {
		t.Errorf("launched %+v, want %+v", got, want)
	}
}

func TestReachableStatesKeepInvariants(t *testing.T) {
	fx := newFixture(t)
	fx.replays.records = replayRecords(57)
	rng := rand.New(rand.NewSource(42))
	buttons := []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonConfirm, ButtonEscape}

	for i := 0; i < 3000; i++ {
		var f Frame
		b := buttons[rng.Intn(len(buttons))]
		f.Held[b] = 1 + rng.Intn(DefaultRepeatDelay+3)
		if rng.Intn(20) == 0 {
			f.Edits = []TextCommand{{Op: TextToggle}}
		}
		if out, _ := fx.s.Input(f); out == OutcomeTerminate {
			continue
		}
		if gs := fx.s.TakeLaunched(); gs != nil {
			gs.Quit()
			if err := fx.s.Resume(gs); err != nil {
				t.Fatalf("resume: %v", err)
			}
		}

		st := fx.s.State()
		sel := st.Selected()
		if sel == nil || !sel.Selectable() {
			t.Fatalf("step %d: selection %d on %v is not selectable", i, st.Selection, st.ID)
		}
		if st.Paging.Enabled {
			lo, hi := st.PageBounds()
			if st.Selection < lo || st.Selection >= hi {
				t.Fatalf("step %d: selection %d outside page [%d,%d)", i, st.Selection, lo, hi)
			}
		}
		for _, o := range st.Options {
			if d := o.Multi(); d != nil && d.Param != nil && *d.Param != d.Values[d.Selection] {
				t.Fatalf("step %d: %s cell %d != %d", i, o.Label, *d.Param, d.Values[d.Selection])
			}
		}
	}
}
