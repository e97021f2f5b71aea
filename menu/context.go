package menu

import (
	"context"
	"errors"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
	"github.com/charmbracelet/log"
)

var (
	ErrNoContext   = errors.New("menu: nil context")
	ErrNoFactory   = errors.New("menu: no session factory")
	ErrNotPractice = errors.New("menu: session has no practice record")
	ErrNoSession   = errors.New("menu: factory returned no session")
)

// GameSession is a started run of the puzzle simulation.
type GameSession interface {
	Init() error
	Quit()
}

// PracticeTarget is a session whose practice record the menu edits.
type PracticeTarget interface {
	Practice() *game.PracticeData
	ApplyPractice()
}

// SessionFactory creates game sessions. Create may return a nil session
// with a nil error when no session can be made for args; the menu treats
// that as a failed launch and reports ErrNoSession.
type SessionFactory interface {
	Create(args game.Args) (GameSession, error)
}

// SessionFactoryFunc adapts a function to SessionFactory.
type SessionFactoryFunc func(args game.Args) (GameSession, error)

func (f SessionFactoryFunc) Create(args game.Args) (GameSession, error) {
	return f(args)
}

type ReplayLister interface {
	ListReplays(ctx context.Context, player string) ([]replay.Record, error)
}

type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// Cue is a one-shot sound effect requested by the menu.
type Cue int

const (
	CueMenuChoose Cue = iota
)

type CuePlayer interface {
	PlayCue(c Cue)
}

// Localizer returns the display text for a label id, or fallback.
type Localizer interface {
	Localize(id, fallback string) string
}

// Volumes are the settings cells bound to the main menu's volume rows.
// Nil cells are replaced by cells owned by the session.
type Volumes struct {
	Master *int
	SFX    *int
	Music  *int
}

// Context carries the collaborators a Session works with.
type Context struct {
	Factory   SessionFactory
	Replays   ReplayLister
	Clipboard Clipboard
	Cues      CuePlayer
	Labels    Localizer

	Volumes Volumes
	// SettingsChanged runs after a volume row changed its cell.
	SettingsChanged func()

	Player      string
	RepeatDelay int
	Logger      *log.Logger
}
