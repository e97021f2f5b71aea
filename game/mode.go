package game

import "strings"

// Mode identifies a game mode. The low 16 bits hold the base mode, the
// upper bits carry modifier flags.
type Mode uint32

const (
	ModeNone Mode = iota
	ModePentomino
	ModeG1Master
	ModeG120G
	ModeG2Master
	ModeG2Death
	ModeG3Terror
	modeCount
)

const (
	FlagPractice      Mode = 1 << 16
	FlagTetrominoOnly Mode = 1 << 17

	baseMask Mode = 0xFFFF
)

// NoReplay marks a launch that does not play back a stored replay.
const NoReplay int64 = -1

// Base strips modifier flags.
func (m Mode) Base() Mode {
	return m & baseMask
}

// Has reports whether every bit of flag is set.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

// Valid reports whether the base mode is known. A bare practice launch is
// valid without a base mode.
func (m Mode) Valid() bool {
	if m.Base() >= modeCount {
		return false
	}
	return m.Base() != ModeNone || m.Has(FlagPractice) || m == ModeNone
}

func (m Mode) String() string {
	var name string
	switch m.Base() {
	case ModeNone:
		name = "QUINTESSE"
	case ModePentomino:
		name = "PENTOMINO"
	case ModeG1Master:
		name = "G1 MASTER"
	case ModeG120G:
		name = "G1 20G"
	case ModeG2Master:
		name = "G2 MASTER"
	case ModeG2Death:
		name = "G2 DEATH"
	case ModeG3Terror:
		name = "G3 TERROR"
	default:
		name = "UNKNOWN"
	}

	var flags []string
	if m.Has(FlagPractice) {
		flags = append(flags, "PRACTICE")
	}
	if m.Has(FlagTetrominoOnly) {
		flags = append(flags, "TETROMINO")
	}
	if len(flags) == 0 {
		return name
	}
	return name + " [" + strings.Join(flags, ",") + "]"
}

// Rule simulation types selectable in practice.
const (
	SimulateQRS = 0
	SimulateG1  = 1
	SimulateG2  = 2
	SimulateG3  = 3
)

// Args is the full parameter set of one session launch.
type Args struct {
	StartLevel int
	Mode       Mode
	Replay     int64
}

// DefaultArgs is used when a launcher carries no argument set.
func DefaultArgs() Args {
	return Args{StartLevel: 0, Mode: ModeNone, Replay: NoReplay}
}
