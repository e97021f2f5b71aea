package replay

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/automoto/quintesse/game"
)

// DescriptorSize bounds the length of a replay descriptor, terminator included.
const DescriptorSize = 64

// Record is one stored replay as listed by the store.
type Record struct {
	Index    int64
	Player   string
	Mode     game.Mode
	Level    int
	Grade    string
	Frames   int
	Recorded time.Time
}

// Descriptor formats the one-line label shown in the replay browser.
func Descriptor(r Record) string {
	grade := r.Grade
	if grade == "" {
		grade = "-"
	}
	s := fmt.Sprintf("%-10s %4d %-3s %s %s",
		r.Mode.Base(),
		r.Level,
		grade,
		FormatFrames(r.Frames),
		r.Recorded.Local().Format("2006-01-02"),
	)
	if len(s) > DescriptorSize-1 {
		cut := DescriptorSize - 1
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// FormatFrames renders a 60fps frame count as mm:ss:cc.
func FormatFrames(frames int) string {
	if frames < 0 {
		frames = 0
	}
	minutes := frames / 3600
	seconds := (frames / 60) % 60
	centis := (frames % 60) * 100 / 60
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, centis)
}
