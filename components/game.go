package components

import (
	"github.com/automoto/quintesse/game"
	"github.com/automoto/quintesse/i18n"
	"github.com/yohamta/donburi"
)

// GameData holds the session a game scene is running.
type GameData struct {
	Session *game.Session
	Labels  *i18n.Catalog
	// Finished is set once the session has been quit and handed back.
	Finished bool
}

var Game = donburi.NewComponentType[GameData]()
