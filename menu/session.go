package menu

import (
	"github.com/charmbracelet/log"
)

// DefaultRepeatDelay is the number of frames a direction must be held
// before it starts repeating.
const DefaultRepeatDelay = 18

// Session owns the live menu state and the memory carried between menus.
type Session struct {
	ctx    Context
	logger *log.Logger

	state    State
	main     MainMemory
	practice PracticeMemory

	// practiceSession is the live session edited by the practice menu.
	practiceSession GameSession
	// target is the focused text input, nil when focus is elsewhere.
	target  *Option
	editing bool

	launched GameSession

	volumes [3]int
}

// New returns a session bound to ctx. Call Init before the first Input.
func New(ctx *Context) (*Session, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	if ctx.Factory == nil {
		return nil, ErrNoFactory
	}
	s := &Session{ctx: *ctx}
	s.logger = s.ctx.Logger
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.logger = s.logger.WithPrefix("menu")
	if s.ctx.RepeatDelay <= 0 {
		s.ctx.RepeatDelay = DefaultRepeatDelay
	}

	v := &s.ctx.Volumes
	if v.Master == nil {
		v.Master = &s.volumes[0]
	}
	if v.SFX == nil {
		v.SFX = &s.volumes[1]
	}
	if v.Music == nil {
		v.Music = &s.volumes[2]
	}
	return s, nil
}

// Init builds the main menu.
func (s *Session) Init() error {
	_, err := LoadMain(s, 0)
	return err
}

// Quit tears down the menu and stops the practice session if it was never
// handed off.
func (s *Session) Quit() {
	s.quitPractice()
	s.clear()
	s.launched = nil
}

// State returns the live menu state. Callers must not keep the options
// across an Input call.
func (s *Session) State() *State {
	return &s.state
}

// TextEditing reports whether a text field is capturing input.
func (s *Session) TextEditing() bool {
	return s.editing
}

// MainMemory returns the record the main menu is rebuilt from.
func (s *Session) MainMemory() MainMemory {
	return s.main
}

// PracticeMemory returns the record the practice menu is rebuilt from.
func (s *Session) PracticeMemory() PracticeMemory {
	return s.practice
}

// TakeLaunched returns the session handed off since the last call, if any.
func (s *Session) TakeLaunched() GameSession {
	gs := s.launched
	s.launched = nil
	return gs
}

// Resume is called when a handed-off session has finished. A finished
// practice session brings back the practice menu with its last values.
func (s *Session) Resume(finished GameSession) error {
	if finished == nil || finished != s.practiceSession {
		return nil
	}
	s.practiceSession = nil
	_, err := LoadPractice(s, 0)
	return err
}

func (s *Session) label(id, fallback string) string {
	if s.ctx.Labels == nil {
		return fallback
	}
	return s.ctx.Labels.Localize(id, fallback)
}

func (s *Session) cue(c Cue) {
	if s.ctx.Cues != nil {
		s.ctx.Cues.PlayCue(c)
	}
}

// clear destroys the live menu and detaches the text target.
func (s *Session) clear() {
	s.target = nil
	s.editing = false
	s.state.Clear()
}

func (s *Session) quitPractice() {
	if s.practiceSession == nil {
		return
	}
	s.practiceSession.Quit()
	s.practiceSession = nil
}

// retarget attaches the text target when focus is on a text input.
func (s *Session) retarget() {
	if o := s.state.Selected(); o != nil && o.Kind == KindTextInput {
		s.target = o
		return
	}
	s.target = nil
}

// remember records the focus of the menus that are restored on rebuild.
func (s *Session) remember() {
	switch s.state.ID {
	case MenuMain:
		s.main.Selection = s.state.Selection
	case MenuPractice:
		s.practice.Selection = s.state.Selection
	}
}

// recoverMain replaces a partially built menu with the main menu.
func (s *Session) recoverMain(from MenuID, err error) error {
	s.logger.Error("menu build failed", "menu", from, "err", err)
	s.clear()
	if from == MenuMain {
		return err
	}
	s.quitPractice()
	if _, mainErr := LoadMain(s, 0); mainErr != nil {
		return mainErr
	}
	return err
}
