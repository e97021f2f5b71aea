package menu

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
	"github.com/charmbracelet/log"
)

type fakeSession struct {
	args     game.Args
	practice *game.PracticeData
	applied  int
	inits    int
	quits    int
	initErr  error
}

func (f *fakeSession) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeSession) Quit() { f.quits++ }

func (f *fakeSession) Practice() *game.PracticeData { return f.practice }

func (f *fakeSession) ApplyPractice() { f.applied++ }

type fakeFactory struct {
	created []*fakeSession
	err     error
	initErr error
}

func (f *fakeFactory) Create(args game.Args) (GameSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	gs := &fakeSession{args: args, initErr: f.initErr}
	if args.Mode.Has(game.FlagPractice) {
		p := game.DefaultPractice()
		gs.practice = &p
	}
	f.created = append(f.created, gs)
	return gs, nil
}

func (f *fakeFactory) last() *fakeSession {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

type fakeLister struct {
	records []replay.Record
	err     error
	player  string
}

func (f *fakeLister) ListReplays(_ context.Context, player string) ([]replay.Record, error) {
	f.player = player
	return f.records, f.err
}

type fakeClipboard struct {
	text     string
	writeErr error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, nil }

type fakeCues struct{ played []Cue }

func (c *fakeCues) PlayCue(cue Cue) { c.played = append(c.played, cue) }

var errBoom = errors.New("boom")

type fixture struct {
	s         *Session
	factory   *fakeFactory
	replays   *fakeLister
	clipboard *fakeClipboard
	cues      *fakeCues
	volumes   [3]int
	changed   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		factory:   &fakeFactory{},
		replays:   &fakeLister{},
		clipboard: &fakeClipboard{},
		cues:      &fakeCues{},
		volumes:   [3]int{80, 60, 40},
	}
	s, err := New(&Context{
		Factory:         fx.factory,
		Replays:         fx.replays,
		Clipboard:       fx.clipboard,
		Cues:            fx.cues,
		Volumes:         Volumes{Master: &fx.volumes[0], SFX: &fx.volumes[1], Music: &fx.volumes[2]},
		SettingsChanged: func() { fx.changed++ },
		Player:          "ARK",
		Logger:          log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	fx.s = s
	return fx
}

func press(buttons ...Button) Frame {
	var f Frame
	for _, b := range buttons {
		f.Held[b] = 1
	}
	return f
}

func held(b Button, frames int) Frame {
	var f Frame
	f.Held[b] = frames
	return f
}

func edits(cmds ...TextCommand) Frame {
	return Frame{Edits: cmds}
}

func (fx *fixture) input(f Frame) Outcome {
	out, _ := fx.s.Input(f)
	return out
}

// focus moves the selection directly, as navigation would.
func (fx *fixture) focus(i int) {
	fx.s.state.Selection = i
	fx.s.remember()
	fx.s.retarget()
}
