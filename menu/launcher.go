package menu

import (
	"fmt"
	"strconv"

	"github.com/automoto/quintesse/game"
)

// NewGraduatedLauncher builds a game row offering one start level per
// section: section 0 starts at level 0 with an empty label, section i at
// level 100*i labelled "100*i".
func NewGraduatedLauncher(mode game.Mode, sections int, label string) (*Option, error) {
	if sections < 1 {
		return nil, fmt.Errorf("graduated launcher %q: need at least one section, got %d", label, sections)
	}
	o, err := NewOption(KindGameMulti, nil, label)
	if err != nil {
		return nil, err
	}
	d := o.GameMulti()
	d.Engine = EngineQuintesse
	d.Sections = make([]Section, 0, sections)
	for i := 0; i < sections; i++ {
		name := ""
		if i > 0 {
			name = strconv.Itoa(100 * i)
		}
		d.AddSection(name, &game.Args{StartLevel: 100 * i, Mode: mode, Replay: game.NoReplay})
	}
	return o, nil
}

// AddSection appends a section owning args.
func (d *GameMultiData) AddSection(label string, args *game.Args) {
	d.Sections = append(d.Sections, Section{Label: label, Args: args})
}

// Selected returns the args of the selected section, nil for defaults.
func (d *GameMultiData) Selected() *game.Args {
	if d.Selection < 0 || d.Selection >= len(d.Sections) {
		return nil
	}
	return d.Sections[d.Selection].Args
}

func (d *GameMultiData) step(delta int) bool {
	next := d.Selection + delta
	if next < 0 || next >= len(d.Sections) {
		return false
	}
	d.Selection = next
	return true
}
