package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuConfirm
	ActionMenuStart
	ActionMenuBack
	ActionEmergencyOverride
	// Text field actions
	ActionTextToggle
	ActionTextBackspace
	ActionTextDelete
	ActionTextHome
	ActionTextEnd
	ActionTextSelectAll
	ActionTextCopy
	ActionTextCut
	ActionTextPaste
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action.
// Ctrl bindings only fire while a control key is held; plain bindings only
// fire while it is not.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Ctrl                   bool
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Control keys that modify Ctrl bindings
	CtrlKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		CtrlKeys:       []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeyMetaLeft, ebiten.KeyMetaRight},
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				// D-pad Down (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyZ},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuStart: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionEmergencyOverride: {
				Keys: []ebiten.Key{ebiten.KeyF12},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionTextToggle: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyF2},
			},
			ActionTextBackspace: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
			},
			ActionTextDelete: {
				Keys: []ebiten.Key{ebiten.KeyDelete},
			},
			ActionTextHome: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionTextEnd: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionTextSelectAll: {
				Keys: []ebiten.Key{ebiten.KeyA},
				Ctrl: true,
			},
			ActionTextCopy: {
				Keys: []ebiten.Key{ebiten.KeyC},
				Ctrl: true,
			},
			ActionTextCut: {
				Keys: []ebiten.Key{ebiten.KeyX},
				Ctrl: true,
			},
			ActionTextPaste: {
				Keys: []ebiten.Key{ebiten.KeyV},
				Ctrl: true,
			},
		},
	}
}
