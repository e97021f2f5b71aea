package systems

import (
	"encoding/json"

	cfg "github.com/automoto/quintesse/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

var persistLog = log.WithPrefix("persistence")

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Storage.AppName,
	})
	if err != nil {
		persistLog.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings reads the saved settings into cfg.Settings. Missing or
// unreadable data leaves the defaults in place.
func LoadSettings() {
	if gdataManager == nil {
		return
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		persistLog.Warn("could not load settings", "err", err)
		return
	}
	if len(data) == 0 {
		return
	}

	saved := cfg.DefaultSettings()
	if err := json.Unmarshal(data, &saved); err != nil {
		persistLog.Warn("could not parse saved settings", "err", err)
		return
	}
	saved.Clamp()
	cfg.Settings = saved
	persistLog.Debug("settings loaded", "master", saved.MasterVolume, "sfx", saved.SFXVolume, "music", saved.MusicVolume)
}

// SaveSettings writes cfg.Settings to disk
func SaveSettings() error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(cfg.Settings)
	if err != nil {
		persistLog.Warn("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		persistLog.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}
