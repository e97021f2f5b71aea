package systems

import (
	"strings"

	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateMenu in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	ctrl := ctrlHeld()
	for actionID, binding := range cfg.Input.Bindings {
		if binding.Ctrl == ctrl {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					keyboardUsed = true
				}
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	for _, a := range []struct {
		on bool
		id cfg.ActionID
	}{
		{analogLeft, cfg.ActionMenuLeft},
		{analogRight, cfg.ActionMenuRight},
		{analogUp, cfg.ActionMenuUp},
		{analogDown, cfg.ActionMenuDown},
	} {
		if a.on {
			input.Current[a.id] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	for id := range input.Current {
		if input.Current[id] {
			input.Held[id]++
		} else {
			input.Held[id] = 0
		}
	}

	input.Chars = input.Chars[:0]
	if !ctrl {
		input.Chars = ebiten.AppendInputChars(input.Chars)
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed || len(input.Chars) > 0 {
		input.LastInputMethod = components.InputKeyboard
	}
}

func ctrlHeld() bool {
	for _, k := range cfg.Input.CtrlKeys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var frameButtons = [menu.ButtonCount]cfg.ActionID{
	menu.ButtonUp:      cfg.ActionMenuUp,
	menu.ButtonDown:    cfg.ActionMenuDown,
	menu.ButtonLeft:    cfg.ActionMenuLeft,
	menu.ButtonRight:   cfg.ActionMenuRight,
	menu.ButtonConfirm: cfg.ActionMenuConfirm,
	menu.ButtonStart:   cfg.ActionMenuStart,
	menu.ButtonEscape:  cfg.ActionMenuBack,
}

// Edits issued once per press.
var pressEdits = []struct {
	action cfg.ActionID
	op     menu.EditOp
}{
	{cfg.ActionTextToggle, menu.TextToggle},
	{cfg.ActionTextHome, menu.TextSeekHome},
	{cfg.ActionTextEnd, menu.TextSeekEnd},
	{cfg.ActionTextSelectAll, menu.TextSelectAll},
	{cfg.ActionTextCopy, menu.TextCopy},
	{cfg.ActionTextCut, menu.TextCut},
	{cfg.ActionTextPaste, menu.TextPaste},
}

// Edits that auto-repeat while held.
var repeatEdits = []struct {
	action cfg.ActionID
	op     menu.EditOp
}{
	{cfg.ActionTextBackspace, menu.TextBackspace},
	{cfg.ActionTextDelete, menu.TextDelete},
	{cfg.ActionMenuLeft, menu.TextSeekLeft},
	{cfg.ActionMenuRight, menu.TextSeekRight},
}

// MenuFrame converts this frame's input into the menu's input record.
// Edit commands are always produced; the menu ignores them unless a text
// field is focused.
func MenuFrame(input *components.InputData, repeatDelay int) menu.Frame {
	var f menu.Frame
	for b, id := range frameButtons {
		f.Held[b] = input.Held[id]
	}
	f.EmergencyOverride = input.Current[cfg.ActionEmergencyOverride]

	for _, pe := range pressEdits {
		if input.Held[pe.action] == 1 {
			f.Edits = append(f.Edits, menu.TextCommand{Op: pe.op})
		}
	}
	if len(input.Chars) > 0 {
		f.Edits = append(f.Edits, menu.TextCommand{Op: menu.TextInsert, Text: string(input.Chars)})
	}
	for _, re := range repeatEdits {
		if h := input.Held[re.action]; h == 1 || h > repeatDelay {
			f.Edits = append(f.Edits, menu.TextCommand{Op: re.op})
		}
	}
	return f
}
