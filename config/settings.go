package config

// SettingsData holds the user-adjustable values the menu edits in place.
// Volumes are percentages in 0..Audio.VolumeMax.
type SettingsData struct {
	MasterVolume int    `json:"master_volume"`
	SFXVolume    int    `json:"sfx_volume"`
	MusicVolume  int    `json:"music_volume"`
	Language     string `json:"language"`
}

// Settings is the live settings record. Menu options bind directly to its
// fields.
var Settings SettingsData

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() SettingsData {
	return SettingsData{
		MasterVolume: 80,
		SFXVolume:    100,
		MusicVolume:  75,
		Language:     Storage.Language,
	}
}

// Clamp pulls out-of-range values from a damaged save back into range.
func (s *SettingsData) Clamp() {
	s.MasterVolume = clampVolume(s.MasterVolume)
	s.SFXVolume = clampVolume(s.SFXVolume)
	s.MusicVolume = clampVolume(s.MusicVolume)
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > Audio.VolumeMax {
		return Audio.VolumeMax
	}
	return v
}

func init() {
	Settings = DefaultSettings()
}
