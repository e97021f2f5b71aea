package components

import (
	cfg "github.com/automoto/quintesse/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Held counts consecutive frames an action has been down, 1 on the first frame.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Held            [cfg.ActionCount]int
	Chars           []rune // Characters typed this frame
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
