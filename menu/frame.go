package menu

// Button is a menu input.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonConfirm
	ButtonStart
	ButtonEscape
	ButtonCount
)

// EditOp is a text editing command.
type EditOp int

const (
	TextToggle EditOp = iota
	TextInsert
	TextBackspace
	TextDelete
	TextSeekLeft
	TextSeekRight
	TextSeekHome
	TextSeekEnd
	TextSelectAll
	TextCopy
	TextCut
	TextPaste
)

// TextCommand is one edit. Text is only used by TextInsert.
type TextCommand struct {
	Op   EditOp
	Text string
}

// Frame is the input sampled for one tick.
type Frame struct {
	// Held counts consecutive frames each button has been down, 0 when up.
	Held [ButtonCount]int
	// EmergencyOverride suppresses every edit command.
	EmergencyOverride bool
	Edits             []TextCommand
}

// Pressed reports a press that started this frame.
func (f Frame) Pressed(b Button) bool {
	return f.Held[b] == 1
}

// Repeat reports an auto-repeat tick: the button has been held longer
// than delay frames.
func (f Frame) Repeat(b Button, delay int) bool {
	return f.Held[b] > delay
}

func (f Frame) fires(b Button, delay int) bool {
	return f.Pressed(b) || f.Repeat(b, delay)
}
