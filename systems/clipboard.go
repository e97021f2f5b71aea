package systems

import (
	"github.com/atotto/clipboard"
	"github.com/automoto/quintesse/menu"
)

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

// NewClipboard returns the OS clipboard, or nil when the platform has no
// clipboard utility. The menu treats nil as "no clipboard".
func NewClipboard() menu.Clipboard {
	if clipboard.Unsupported {
		menuLog.Warn("clipboard unsupported on this system")
		return nil
	}
	return SystemClipboard{}
}
