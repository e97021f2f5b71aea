package systems

import (
	"sync"

	"github.com/automoto/quintesse/assets"
	"github.com/automoto/quintesse/components"
	cfg "github.com/automoto/quintesse/config"
	"github.com/automoto/quintesse/menu"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every cue at startup so the first press plays
// without a hitch.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio plays the cues queued this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := getOrCreateAudio(e)
	audioData.SFXVolume = effectiveSFXVolume(cfg.Settings)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	player, ok := globalAudioLoader.LoadSFX(soundID)
	if !ok {
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// effectiveSFXVolume scales the SFX percentage by the master percentage.
func effectiveSFXVolume(s cfg.SettingsData) float64 {
	top := float64(cfg.Audio.VolumeMax)
	return float64(s.MasterVolume) / top * float64(s.SFXVolume) / top
}

// PlaySFX queues a sound effect for the next UpdateAudio.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	a := getOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{Context: globalAudioContext})
	}
	return components.Audio.Get(entry)
}

// CuePlayer routes menu cues into a world's audio queue.
type CuePlayer struct {
	ECS *ecs.ECS
}

var cueSounds = map[menu.Cue]cfg.SoundID{
	menu.CueMenuChoose: cfg.SoundMenuNavigate,
}

func (c *CuePlayer) PlayCue(cue menu.Cue) {
	if c == nil || c.ECS == nil {
		return
	}
	if id, ok := cueSounds[cue]; ok {
		PlaySFX(c.ECS, id)
	}
}
