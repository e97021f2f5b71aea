package menu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/quintesse/game"
)

var ErrUnknownKind = errors.New("unknown option kind")

// Kind tags the payload an Option carries.
type Kind int

const (
	KindLabel Kind = iota
	KindAction
	KindMultiOpt
	KindToggle
	KindTextInput
	KindGame
	KindGameMulti
	KindMetaGame
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindAction:
		return "action"
	case KindMultiOpt:
		return "multiopt"
	case KindToggle:
		return "toggle"
	case KindTextInput:
		return "text"
	case KindGame:
		return "game"
	case KindGameMulti:
		return "game-multi"
	case KindMetaGame:
		return "metagame"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// TextFlags select how a label or value is drawn.
type TextFlags uint8

const (
	TextFixedSys TextFlags = 1 << iota
	TextThin
	TextAlignRight
	TextValueBar
)

// Outcome is returned by input handling and actions.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeTerminate
)

// ActionFunc runs when an Action option is confirmed.
type ActionFunc func(s *Session, val int) (Outcome, error)

// UpdateFunc runs after an option changed the value it is bound to.
type UpdateFunc func(s *Session)

// DefaultColor is used for labels and values without an explicit colour.
var DefaultColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Option is one row of a menu.
type Option struct {
	Kind  Kind
	Label string

	X, Y           int
	ValueX, ValueY int

	LabelFlags TextFlags
	ValueFlags TextFlags
	LabelColor color.RGBA
	ValueColor color.RGBA

	OnUpdate UpdateFunc

	payload payload
}

// payload is implemented only by the kind-specific data types below.
type payload interface {
	release()
}

type ActionData struct {
	Func ActionFunc
	Val  int
}

// MultiOptData selects one of several values and writes it to Param.
// Param is not owned by the option.
type MultiOptData struct {
	Param     *int
	Values    []int
	Labels    []string
	Selection int
}

// ToggleData flips the boolean at Param. Param is not owned by the option.
type ToggleData struct {
	Param  *bool
	Labels [2]string
}

// Engine names the simulation a launcher starts.
type Engine int

const (
	EngineQuintesse Engine = iota
	EngineNone
)

// GameData launches a single session. A nil Args launches with defaults.
type GameData struct {
	Engine Engine
	Args   *game.Args
}

// Section is one selectable entry of a GameMultiData.
type Section struct {
	Label string
	Args  *game.Args
}

// GameMultiData launches the selected section's session.
type GameMultiData struct {
	Engine    Engine
	Sections  []Section
	Selection int
}

// MetaGameData describes a launcher for tool modes. It is inert: confirming
// it does nothing.
type MetaGameData struct {
	Mode    game.Mode
	Submode game.Mode
	Args    []int
	SubArgs []int
}

func (d *ActionData) release() {
	d.Func = nil
}

func (d *MultiOptData) release() {
	d.Param = nil
	d.Values = nil
	d.Labels = nil
	d.Selection = 0
}

func (d *ToggleData) release() {
	d.Param = nil
	d.Labels = [2]string{}
}

func (d *TextData) release() {
	d.buf = nil
	d.pos = 0
	d.leftmost = 0
	d.selectAll = false
	d.active = false
}

func (d *GameData) release() {
	d.Args = nil
}

func (d *GameMultiData) release() {
	for i := range d.Sections {
		d.Sections[i] = Section{}
	}
	d.Sections = nil
	d.Selection = 0
}

// The MetaGame payload owns only its two argument arrays.
func (d *MetaGameData) release() {
	d.Args = nil
	d.SubArgs = nil
}

// NewOption returns an option of kind with a zeroed payload.
func NewOption(kind Kind, onUpdate UpdateFunc, label string) (*Option, error) {
	o := &Option{
		Kind:       kind,
		Label:      label,
		OnUpdate:   onUpdate,
		LabelColor: DefaultColor,
		ValueColor: DefaultColor,
	}
	switch kind {
	case KindLabel:
	case KindAction:
		o.payload = &ActionData{}
	case KindMultiOpt:
		o.payload = &MultiOptData{}
	case KindToggle:
		o.payload = &ToggleData{}
	case KindTextInput:
		o.payload = &TextData{Visible: DefaultVisible}
	case KindGame:
		o.payload = &GameData{Engine: EngineNone}
	case KindGameMulti:
		o.payload = &GameMultiData{Engine: EngineNone}
	case KindMetaGame:
		o.payload = &MetaGameData{}
	default:
		return nil, fmt.Errorf("new option %q: %w: %d", label, ErrUnknownKind, int(kind))
	}
	return o, nil
}

// Destroy releases everything the option owns. It is safe to call on a nil
// option and more than once.
func (o *Option) Destroy() {
	if o == nil || o.payload == nil {
		return
	}
	o.payload.release()
	o.payload = nil
	o.OnUpdate = nil
}

// Selectable reports whether focus may rest on the option.
func (o *Option) Selectable() bool {
	return o != nil && o.Kind != KindLabel
}

func (o *Option) Action() *ActionData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*ActionData)
	return d
}

func (o *Option) Multi() *MultiOptData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*MultiOptData)
	return d
}

func (o *Option) Toggle() *ToggleData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*ToggleData)
	return d
}

func (o *Option) Text() *TextData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*TextData)
	return d
}

func (o *Option) Game() *GameData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*GameData)
	return d
}

func (o *Option) GameMulti() *GameMultiData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*GameMultiData)
	return d
}

func (o *Option) Meta() *MetaGameData {
	if o == nil {
		return nil
	}
	d, _ := o.payload.(*MetaGameData)
	return d
}

// ValueText returns the text drawn in the option's value column.
func (o *Option) ValueText() string {
	switch o.Kind {
	case KindMultiOpt:
		if d := o.Multi(); d != nil && d.Selection >= 0 && d.Selection < len(d.Labels) {
			return d.Labels[d.Selection]
		}
	case KindToggle:
		if d := o.Toggle(); d != nil && d.Param != nil {
			if *d.Param {
				return d.Labels[1]
			}
			return d.Labels[0]
		}
	case KindGameMulti:
		if d := o.GameMulti(); d != nil && d.Selection >= 0 && d.Selection < len(d.Sections) {
			return d.Sections[d.Selection].Label
		}
	case KindTextInput:
		if d := o.Text(); d != nil {
			return d.View()
		}
	}
	return ""
}

// Add appends a value and its display label.
func (d *MultiOptData) Add(value int, label string) {
	d.Values = append(d.Values, value)
	d.Labels = append(d.Labels, label)
}

// Select moves to index i, clamped, and writes the value to Param.
func (d *MultiOptData) Select(i int) {
	if len(d.Values) == 0 {
		return
	}
	d.Selection = clamp(i, 0, len(d.Values)-1)
	if d.Param != nil {
		*d.Param = d.Values[d.Selection]
	}
}

// step moves the selection by delta without wrapping. It reports whether the
// selection changed.
func (d *MultiOptData) step(delta int) bool {
	next := d.Selection + delta
	if next < 0 || next >= len(d.Values) {
		return false
	}
	d.Select(next)
	return true
}

func (d *ToggleData) flip() {
	if d.Param == nil {
		return
	}
	*d.Param = !*d.Param
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
