package menu

import (
	"fmt"

	"github.com/automoto/quintesse/game"
)

// launch creates and starts a session for args, nil meaning defaults. On
// failure the menu is left as it was.
func (s *Session) launch(args *game.Args) error {
	a := game.DefaultArgs()
	if args != nil {
		a = *args
	}

	gs, err := s.ctx.Factory.Create(a)
	if err != nil {
		return fmt.Errorf("launch %s: %w", a.Mode, err)
	}
	if gs == nil {
		return fmt.Errorf("launch %s: %w", a.Mode, ErrNoSession)
	}
	if err := gs.Init(); err != nil {
		gs.Quit()
		return fmt.Errorf("launch %s: init: %w", a.Mode, err)
	}
	s.handoff(gs)
	return nil
}

// tryLaunch launches and logs a failure; the launch can be retried.
func (s *Session) tryLaunch(args *game.Args) {
	if err := s.launch(args); err != nil {
		s.logger.Error("launch failed", "err", err)
	}
}

// handoff queues gs to be picked up by TakeLaunched.
func (s *Session) handoff(gs GameSession) {
	s.launched = gs
	s.logger.Debug("session handed off", "menu", s.state.ID)
}
