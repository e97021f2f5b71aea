package systems

import (
	"context"
	"testing"

	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/replay"
)

type recordingSaver struct {
	saved []replay.Record
}

func (r *recordingSaver) Save(_ context.Context, rec replay.Record, _ []byte) (int64, error) {
	r.saved = append(r.saved, rec)
	return int64(len(r.saved)), nil
}

func playedSession(t *testing.T, args game.Args, frames int) *game.Session {
	t.Helper()
	s, err := game.NewFactory(nil).Create(args)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	for i := 0; i < frames; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	s.Quit()
	return s
}

func TestRecordSession(t *testing.T) {
	store := &recordingSaver{}
	s := playedSession(t, game.Args{Mode: game.ModeG2Master, Replay: game.NoReplay}, 90)

	if !RecordSession(store, "ARK", s) {
		t.Fatal("run was not recorded")
	}
	got := store.saved[0]
	if got.Player != "ARK" || got.Mode != game.ModeG2Master || got.Frames != 90 {
		t.Errorf("record = %+v", got)
	}
}

func TestRecordSessionSkips(t *testing.T) {
	tests := []struct {
		name   string
		args   game.Args
		frames int
	}{
		{"playback", game.Args{Mode: game.ModeG1Master, Replay: 4}, 10},
		{"practice", game.Args{Mode: game.FlagPractice, Replay: game.NoReplay}, 10},
		{"unplayed", game.Args{Mode: game.ModeG1Master, Replay: game.NoReplay}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingSaver{}
			if RecordSession(store, "ARK", playedSession(t, tt.args, tt.frames)) {
				t.Error("should not record")
			}
			if len(store.saved) != 0 {
				t.Errorf("saved %d records", len(store.saved))
			}
		})
	}
	if RecordSession(nil, "ARK", nil) {
		t.Error("nil store should not record")
	}
}
