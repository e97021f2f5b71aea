package systems

import (
	"context"
	"time"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
)

const replaySaveTimeout = 2 * time.Second

// ReplaySaver stores finished runs.
type ReplaySaver interface {
	Save(ctx context.Context, r replay.Record, data []byte) (int64, error)
}

// RecordSession stores a finished run under player. Practice runs and
// playbacks are not recorded. It reports whether a record was written.
func RecordSession(store ReplaySaver, player string, s *game.Session) bool {
	if store == nil || s == nil {
		return false
	}
	args := s.Args()
	if args.Replay != game.NoReplay || args.Mode.Has(game.FlagPractice) || s.Frames() == 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), replaySaveTimeout)
	defer cancel()
	idx, err := store.Save(ctx, replay.Record{
		Player:   player,
		Mode:     args.Mode,
		Level:    s.Level(),
		Frames:   s.Frames(),
		Recorded: time.Now(),
	}, nil)
	if err != nil {
		menuLog.Error("save replay", "mode", args.Mode, "err", err)
		return false
	}
	menuLog.Debug("replay saved", "index", idx, "mode", args.Mode)
	return true
}
