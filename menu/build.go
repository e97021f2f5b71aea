package menu

import (
	"image/color"
	"strconv"

	"github.com/automoto/quintesse/game"
)

// Constructors used by the loaders; tests replace them to make a build fail.
var (
	newOption    = NewOption
	newGraduated = NewGraduatedLauncher
)

// builder appends options to a cleared state and remembers the first
// failure. After a failure it keeps handing out detached options so the
// loader can finish its layout code without nil checks.
type builder struct {
	st  *State
	err error
}

func newBuilder(st *State, id MenuID) *builder {
	st.ID = id
	return &builder{st: st}
}

func (b *builder) add(o *Option, err error) *Option {
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return &Option{}
	}
	if b.err != nil {
		o.Destroy()
		return &Option{}
	}
	b.st.Options = append(b.st.Options, o)
	return o
}

func (b *builder) label(text string) *Option {
	return b.add(newOption(KindLabel, nil, text))
}

func (b *builder) action(text string, fn ActionFunc, val int) *Option {
	o := b.add(newOption(KindAction, nil, text))
	if d := o.Action(); d != nil {
		d.Func = fn
		d.Val = val
	}
	return o
}

// multi binds a selector to param. The selection is left at 0; loaders set
// it once the values are in place.
func (b *builder) multi(text string, param *int, onUpdate UpdateFunc, values []int, labels []string) *Option {
	o := b.add(newOption(KindMultiOpt, onUpdate, text))
	if d := o.Multi(); d != nil {
		d.Param = param
		d.Values = values
		d.Labels = labels
	}
	return o
}

func (b *builder) toggle(text string, param *bool, onUpdate UpdateFunc, off, on string) *Option {
	o := b.add(newOption(KindToggle, onUpdate, text))
	if d := o.Toggle(); d != nil {
		d.Param = param
		d.Labels = [2]string{off, on}
	}
	return o
}

func (b *builder) text(label string, onUpdate UpdateFunc, visible int) *Option {
	o := b.add(newOption(KindTextInput, onUpdate, label))
	if d := o.Text(); d != nil {
		d.Visible = visible
	}
	return o
}

func (b *builder) game(label string, args *game.Args) *Option {
	o := b.add(newOption(KindGame, nil, label))
	if d := o.Game(); d != nil {
		d.Engine = EngineQuintesse
		d.Args = args
	}
	return o
}

func (b *builder) graduated(mode game.Mode, sections int, label string) *Option {
	return b.add(newGraduated(mode, sections, label))
}

// numbered returns values lo..hi and their decimal labels.
func numbered(lo, hi int) ([]int, []string) {
	values := make([]int, 0, hi-lo+1)
	labels := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
		labels = append(labels, strconv.Itoa(v))
	}
	return values, labels
}

func rgba(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
