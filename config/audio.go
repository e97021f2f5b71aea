package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
)

// Tone describes a short synthesized cue.
type Tone struct {
	Frequency float64 // Hz at the start of the cue
	Slide     float64 // Hz added by the end of the cue
	Duration  int     // milliseconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	// Volume levels are stored as 0..VolumeMax percentages
	VolumeMax  int
	VolumeStep int
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		VolumeMax:  100,
		VolumeStep: 5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundMenuNavigate: {Frequency: 880, Duration: 35},
			SoundMenuSelect:   {Frequency: 660, Slide: 440, Duration: 90},
			SoundMenuBack:     {Frequency: 520, Slide: -200, Duration: 80},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuNavigate: 0.6,
		},
	}
}
