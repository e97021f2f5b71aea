package menu

import (
	"context"
	"time"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
)

const (
	// ReplayPageLength is the number of rows on one page of the replay browser.
	ReplayPageLength = 20

	replayQueryTimeout = 2 * time.Second
	colorReplayAlt     = 0xA0A0FFFF
)

// LoadReplay replaces the live menu with the replay browser for the
// current player. A store error is logged and shows an empty list.
func LoadReplay(s *Session, _ int) (Outcome, error) {
	var records []replay.Record
	if s.ctx.Replays != nil {
		ctx, cancel := context.WithTimeout(context.Background(), replayQueryTimeout)
		var err error
		records, err = s.ctx.Replays.ListReplays(ctx, s.ctx.Player)
		cancel()
		if err != nil {
			s.logger.Error("list replays", "player", s.ctx.Player, "err", err)
			records = nil
		}
	}

	s.quitPractice()
	s.clear()

	st := &s.state
	b := newBuilder(st, MenuReplay)
	st.Title = s.label("replay.title", "REPLAY")
	st.X, st.Y = 20, 16
	st.Paging = Paging{
		Enabled: true,
		Length:  ReplayPageLength,
		TextX:   640 - 16,
		TextY:   16,
	}

	o := b.action(s.label("replay.return", "RETURN"), LoadMain, 0)
	o.X, o.Y = 20, 60
	o.LabelFlags = TextThin

	for n, r := range records {
		i := n + 1
		o = b.game(replay.Descriptor(r), &game.Args{StartLevel: 0, Mode: r.Mode, Replay: r.Index})
		o.X, o.Y = 20-13, 60+(i%ReplayPageLength)*20
		o.LabelFlags = TextThin
		if i%2 == 1 {
			o.LabelColor = rgba(colorReplayAlt)
		}
	}

	if b.err != nil {
		return OutcomeContinue, s.recoverMain(MenuReplay, b.err)
	}

	st.normalize()
	s.retarget()
	return OutcomeContinue, nil
}
