package menu

import (
	"math/rand"
	"strings"
	"testing"
)

func newText(s string) *TextData {
	t := &TextData{Visible: DefaultVisible}
	t.SetText(s)
	return t
}

func checkViewport(t *testing.T, d *TextData) {
	t.Helper()
	if d.pos < 0 || d.pos > len(d.buf) {
		t.Fatalf("cursor %d outside [0,%d]", d.pos, len(d.buf))
	}
	if d.leftmost < 0 || d.leftmost > max(0, len(d.buf)-d.visible()) {
		t.Fatalf("leftmost %d out of range for length %d", d.leftmost, len(d.buf))
	}
	if d.pos < d.leftmost || d.pos > d.leftmost+d.visible() {
		t.Fatalf("cursor %d not visible from %d", d.pos, d.leftmost)
	}
}

func TestInsertTruncatesAtMaxLength(t *testing.T) {
	d := newText(strings.Repeat("a", 1990))
	d.SeekEnd()
	d.Insert(strings.Repeat("b", 25))

	if d.Len() != MaxTextLength {
		t.Fatalf("length = %d, want %d", d.Len(), MaxTextLength)
	}
	if d.Cursor() != MaxTextLength {
		t.Errorf("cursor = %d, want %d", d.Cursor(), MaxTextLength)
	}
	checkViewport(t, d)
}

func TestInsertInMiddleClampsCursor(t *testing.T) {
	d := newText(strings.Repeat("a", 1995))
	d.Insert(strings.Repeat("b", 10))

	if d.Len() != MaxTextLength {
		t.Fatalf("length = %d", d.Len())
	}
	if d.Cursor() != 10 {
		t.Errorf("cursor = %d, want 10", d.Cursor())
	}
	if !strings.HasPrefix(d.String(), strings.Repeat("b", 10)) {
		t.Error("inserted text should lead the buffer")
	}
}

func TestSelectionThenInsertReplaces(t *testing.T) {
	d := newText("IJLOSTZ")
	d.ToggleSelectAll()
	d.Insert("TT")

	if d.String() != "TT" {
		t.Errorf("buffer = %q", d.String())
	}
	if d.Selected() {
		t.Error("selection should clear after insert")
	}
	if d.Cursor() != 2 {
		t.Errorf("cursor = %d", d.Cursor())
	}
}

func TestBackspaceAndDeleteAtEdges(t *testing.T) {
	d := newText("ABC")
	d.Backspace()
	if d.String() != "ABC" || d.Cursor() != 0 {
		t.Errorf("backspace at 0 changed the field: %q %d", d.String(), d.Cursor())
	}
	d.SeekEnd()
	d.Delete()
	if d.String() != "ABC" || d.Cursor() != 3 {
		t.Errorf("delete at end changed the field: %q %d", d.String(), d.Cursor())
	}
	d.Backspace()
	if d.String() != "AB" || d.Cursor() != 2 {
		t.Errorf("backspace: %q %d", d.String(), d.Cursor())
	}
	d.SeekHome()
	d.Delete()
	if d.String() != "B" || d.Cursor() != 0 {
		t.Errorf("delete: %q %d", d.String(), d.Cursor())
	}
}

func TestSelectionClearsOnBackspace(t *testing.T) {
	d := newText(strings.Repeat("x", 40))
	d.SeekEnd()
	d.ToggleSelectAll()
	d.Backspace()
	if d.Len() != 0 || d.Cursor() != 0 || d.Leftmost() != 0 || d.Selected() {
		t.Errorf("unexpected field after clearing: len %d cursor %d leftmost %d", d.Len(), d.Cursor(), d.Leftmost())
	}
}

func TestSeekEndScrollsViewport(t *testing.T) {
	d := newText(strings.Repeat("x", 40))
	d.SeekEnd()
	if d.Leftmost() != 40-DefaultVisible {
		t.Errorf("leftmost = %d", d.Leftmost())
	}
	d.SeekHome()
	if d.Leftmost() != 0 || d.Cursor() != 0 {
		t.Errorf("home: leftmost %d cursor %d", d.Leftmost(), d.Cursor())
	}

	short := newText("abc")
	short.SeekEnd()
	if short.Leftmost() != 0 {
		t.Errorf("short text should not scroll, leftmost %d", short.Leftmost())
	}
}

func TestViewportInvariantUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := newText("")
	for i := 0; i < 5000; i++ {
		switch rng.Intn(9) {
		case 0, 1:
			d.Insert(strings.Repeat("q", rng.Intn(30)))
		case 2:
			d.Backspace()
		case 3:
			d.Delete()
		case 4:
			d.SeekLeft()
		case 5:
			d.SeekRight()
		case 6:
			d.SeekHome()
		case 7:
			d.SeekEnd()
		case 8:
			if rng.Intn(10) == 0 {
				d.ToggleSelectAll()
			}
		}
		checkViewport(t, d)
		if d.Len() > MaxTextLength {
			t.Fatalf("length %d over the limit", d.Len())
		}
	}
}

func TestCopyCutPaste(t *testing.T) {
	cb := &fakeClipboard{}
	d := newText("LJ")

	if err := d.Copy(cb); err != nil || cb.text != "" {
		t.Fatalf("copy without selection should do nothing: %v %q", err, cb.text)
	}

	d.ToggleSelectAll()
	if err := d.Copy(cb); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if cb.text != "LJ" || d.Selected() || d.String() != "LJ" {
		t.Errorf("copy: clipboard %q selected %v buffer %q", cb.text, d.Selected(), d.String())
	}

	d.ToggleSelectAll()
	if err := d.Cut(cb); err != nil {
		t.Fatalf("cut: %v", err)
	}
	if d.Len() != 0 || d.Cursor() != 0 {
		t.Errorf("cut left %q", d.String())
	}

	if err := d.Paste(cb); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if d.String() != "LJ" || d.Cursor() != 2 {
		t.Errorf("paste: %q %d", d.String(), d.Cursor())
	}
}

func TestCutFailureKeepsText(t *testing.T) {
	cb := &fakeClipboard{writeErr: errBoom}
	d := newText("SZ")
	d.ToggleSelectAll()
	if err := d.Cut(cb); err == nil {
		t.Fatal("expected clipboard error")
	}
	if d.String() != "SZ" {
		t.Errorf("cut failure cleared the field: %q", d.String())
	}
	if err := d.Cut(nil); err != ErrNoClipboard {
		t.Errorf("expected ErrNoClipboard, got %v", err)
	}
}
