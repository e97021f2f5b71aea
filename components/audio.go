package components

import (
	cfg "github.com/automoto/quintesse/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // master * sfx, 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
