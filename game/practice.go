package game

// Gravity is expressed in 1/256ths of a row per frame.
const GravityUnit = 256

// LockOff disables lock delay.
const LockOff = -1

// Lock protect tri-state.
const (
	LockProtectDefault = -1
	LockProtectOff     = 0
	LockProtectOn      = 1
)

// Timings holds the user-editable timing values of a practice session.
type Timings struct {
	Grav      int
	Lock      int
	ARE       int
	LineARE   int
	LineClear int
	DAS       int
}

// PracticeData is the record edited by the session-setup menu.
type PracticeData struct {
	Timings            Timings
	FieldWidth         int
	GameType           int
	Invisible          bool
	Brackets           bool
	InfiniteFloorkicks bool
	LockProtect        int
	PieceSequence      string
}

// DefaultPractice returns the values a fresh practice session starts with.
func DefaultPractice() PracticeData {
	return PracticeData{
		Timings: Timings{
			Grav:      20 * GravityUnit,
			Lock:      30,
			ARE:       12,
			LineARE:   6,
			LineClear: 6,
			DAS:       8,
		},
		FieldWidth:  10,
		GameType:    SimulateG2,
		LockProtect: LockProtectDefault,
	}
}

// PieceCount returns the number of pieces in the configured sequence,
// ignoring whitespace.
func (p *PracticeData) PieceCount() int {
	n := 0
	for _, r := range p.PieceSequence {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			n++
		}
	}
	return n
}
