package menu

import "github.com/automoto/quintesse/game"

// MainMemory is what the main menu restores when it is rebuilt.
type MainMemory struct {
	Selection    int
	OptSelection int
}

// PracticeMemory is what the practice menu restores on re-entry. Mirror is
// a copy of the last practice record, valid when HasMirror is set.
type PracticeMemory struct {
	Selection int
	Mirror    game.PracticeData
	HasMirror bool
}
