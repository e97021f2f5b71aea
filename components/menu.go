package components

import (
	"github.com/automoto/quintesse/i18n"
	"github.com/automoto/quintesse/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData holds the live menu session and the presentation state the
// draw system keeps between frames.
type MenuData struct {
	Session *menu.Session
	Labels  *i18n.Catalog

	// Cursor pulses the selection highlight; restarted when focus moves.
	Cursor      *gween.Sequence
	CursorAlpha float32
	LastFocus   int
	LastMenu    menu.MenuID

	// SettingsDirty is set by volume rows and cleared once saved.
	SettingsDirty bool
	// Terminated is set when an action asked the program to exit.
	Terminated bool
	// WaitRelease ignores input until every action is released, so the
	// key that ended a game does not act on the menu.
	WaitRelease bool
}

// Menu is the component type for the menu session singleton
var Menu = donburi.NewComponentType[MenuData]()
