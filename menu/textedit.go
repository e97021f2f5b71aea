package menu

import (
	"errors"
)

const (
	// MaxTextLength caps a text field, in runes.
	MaxTextLength = 2000
	// DefaultVisible is the width of a new text field's viewport.
	DefaultVisible = 15
)

var ErrNoClipboard = errors.New("no clipboard")

// TextData is the editable buffer behind a text input row.
type TextData struct {
	buf       []rune
	pos       int
	selectAll bool
	leftmost  int
	Visible   int
	active    bool
}

func (t *TextData) String() string { return string(t.buf) }
func (t *TextData) Len() int       { return len(t.buf) }
func (t *TextData) Cursor() int    { return t.pos }
func (t *TextData) Leftmost() int  { return t.leftmost }
func (t *TextData) Selected() bool { return t.selectAll }
func (t *TextData) Active() bool   { return t.active }

// View returns the visible part of the buffer.
func (t *TextData) View() string {
	end := min(t.leftmost+t.visible(), len(t.buf))
	if t.leftmost >= end {
		return ""
	}
	return string(t.buf[t.leftmost:end])
}

// SetText replaces the buffer without firing callbacks, leaving the cursor
// at the start.
func (t *TextData) SetText(s string) {
	r := []rune(s)
	if len(r) > MaxTextLength {
		r = r[:MaxTextLength]
	}
	t.buf = r
	t.pos = 0
	t.leftmost = 0
	t.selectAll = false
}

func (t *TextData) visible() int {
	if t.Visible <= 0 {
		return DefaultVisible
	}
	return t.Visible
}

// fit scrolls the viewport so the cursor stays visible and no more than
// one viewport of blank space follows the text.
func (t *TextData) fit() {
	vis := t.visible()
	t.pos = clamp(t.pos, 0, len(t.buf))
	if t.pos < t.leftmost {
		t.leftmost = t.pos
	}
	if t.pos > t.leftmost+vis {
		t.leftmost = t.pos - vis
	}
	if maxLeft := max(0, len(t.buf)-vis); t.leftmost > maxLeft {
		t.leftmost = maxLeft
	}
	if t.leftmost < 0 {
		t.leftmost = 0
	}
}

func (t *TextData) reset() {
	t.buf = t.buf[:0]
	t.pos = 0
	t.leftmost = 0
	t.selectAll = false
}

// Insert adds text at the cursor, or replaces the whole buffer while
// everything is selected. The buffer is truncated at MaxTextLength.
func (t *TextData) Insert(text string) {
	r := []rune(text)
	if t.selectAll {
		if len(r) > MaxTextLength {
			r = r[:MaxTextLength]
		}
		t.buf = append(t.buf[:0], r...)
		t.selectAll = false
		t.pos = len(t.buf)
		t.leftmost = 0
		t.fit()
		return
	}

	buf := make([]rune, 0, len(t.buf)+len(r))
	buf = append(buf, t.buf[:t.pos]...)
	buf = append(buf, r...)
	buf = append(buf, t.buf[t.pos:]...)
	if len(buf) > MaxTextLength {
		buf = buf[:MaxTextLength]
	}
	t.buf = buf
	t.pos = min(t.pos+len(r), MaxTextLength)
	t.fit()
}

// Backspace removes the rune left of the cursor, or everything while
// selected.
func (t *TextData) Backspace() {
	if t.selectAll {
		t.reset()
		return
	}
	if t.pos == 0 {
		return
	}
	t.buf = append(t.buf[:t.pos-1], t.buf[t.pos:]...)
	t.pos--
	t.fit()
}

// Delete removes the rune under the cursor, or everything while selected.
func (t *TextData) Delete() {
	if t.selectAll {
		t.reset()
		return
	}
	if t.pos >= len(t.buf) {
		return
	}
	t.buf = append(t.buf[:t.pos], t.buf[t.pos+1:]...)
	t.fit()
}

func (t *TextData) SeekLeft() {
	if t.pos > 0 {
		t.pos--
		t.fit()
	}
}

func (t *TextData) SeekRight() {
	if t.pos < len(t.buf) {
		t.pos++
		t.fit()
	}
}

func (t *TextData) SeekHome() {
	t.pos = 0
	t.leftmost = 0
}

func (t *TextData) SeekEnd() {
	t.pos = len(t.buf)
	t.leftmost = max(0, len(t.buf)-t.visible())
}

func (t *TextData) ToggleSelectAll() {
	t.selectAll = !t.selectAll
}

// Copy exports the buffer while selected and drops the selection. The
// field is left untouched when the clipboard fails.
func (t *TextData) Copy(cb Clipboard) error {
	if !t.selectAll {
		return nil
	}
	if cb == nil {
		return ErrNoClipboard
	}
	if err := cb.WriteText(t.String()); err != nil {
		return err
	}
	t.selectAll = false
	return nil
}

// Cut exports the buffer while selected, then clears it.
func (t *TextData) Cut(cb Clipboard) error {
	if !t.selectAll {
		return nil
	}
	if cb == nil {
		return ErrNoClipboard
	}
	if err := cb.WriteText(t.String()); err != nil {
		return err
	}
	t.reset()
	return nil
}

// Paste inserts the clipboard contents.
func (t *TextData) Paste(cb Clipboard) error {
	if cb == nil {
		return ErrNoClipboard
	}
	text, err := cb.ReadText()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	t.Insert(text)
	return nil
}
