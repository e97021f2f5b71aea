package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidMode  = errors.New("invalid game mode")
	ErrInvalidLevel = errors.New("invalid start level")
	ErrNotStarted   = errors.New("session not initialized")
)

type sessionState int

const (
	stateCreated sessionState = iota
	stateRunning
	stateQuit
)

// Session is one run of the puzzle simulation. The simulation itself is
// outside this module; Session tracks launch parameters, the practice
// record and the frame clock the rest of the game reads.
type Session struct {
	args     Args
	practice *PracticeData
	applied  PracticeData
	frames   int
	state    sessionState
	logger   *log.Logger
}

// Init starts the session clock.
func (s *Session) Init() error {
	if s.state == stateQuit {
		return fmt.Errorf("init %s: %w", s.args.Mode, ErrNotStarted)
	}
	s.state = stateRunning
	s.frames = 0
	if s.practice != nil {
		s.ApplyPractice()
	}
	s.logger.Debug("session started", "mode", s.args.Mode, "level", s.args.StartLevel, "replay", s.args.Replay)
	return nil
}

// Quit stops the session. Calling it more than once is harmless.
func (s *Session) Quit() {
	if s.state == stateQuit {
		return
	}
	s.state = stateQuit
	s.logger.Debug("session quit", "mode", s.args.Mode, "frames", s.frames)
}

// Update advances the session by one frame.
func (s *Session) Update() error {
	if s.state != stateRunning {
		return ErrNotStarted
	}
	s.frames++
	return nil
}

// Frames returns the number of frames played.
func (s *Session) Frames() int {
	return s.frames
}

// Args returns the launch parameters.
func (s *Session) Args() Args {
	return s.args
}

// Level returns the level the session currently sits on.
func (s *Session) Level() int {
	return s.args.StartLevel + s.frames/600
}

// Practice returns the editable practice record, or nil outside practice.
func (s *Session) Practice() *PracticeData {
	return s.practice
}

// Applied returns the practice values the session is running with.
func (s *Session) Applied() PracticeData {
	return s.applied
}

// ApplyPractice copies the edited record into the running configuration,
// clamping values the simulation cannot represent.
func (s *Session) ApplyPractice() {
	if s.practice == nil {
		return
	}
	p := *s.practice
	if p.FieldWidth < 4 {
		p.FieldWidth = 4
	}
	if p.FieldWidth > 12 {
		p.FieldWidth = 12
	}
	if p.Timings.DAS < 1 {
		p.Timings.DAS = 1
	}
	s.applied = p
}

// Factory creates sessions after validating launch parameters.
type Factory struct {
	Logger *log.Logger
}

// NewFactory returns a factory logging through logger, or the default
// logger when nil.
func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.Default()
	}
	return &Factory{Logger: logger}
}

// Create builds a session for args. Practice launches get a fresh record
// seeded with DefaultPractice.
func (f *Factory) Create(args Args) (*Session, error) {
	if !args.Mode.Valid() {
		return nil, fmt.Errorf("create session: %w: %d", ErrInvalidMode, args.Mode)
	}
	if args.StartLevel < 0 {
		return nil, fmt.Errorf("create session: %w: %d", ErrInvalidLevel, args.StartLevel)
	}

	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{args: args, logger: logger}
	if args.Mode.Has(FlagPractice) {
		p := DefaultPractice()
		s.practice = &p
	}
	return s, nil
}
