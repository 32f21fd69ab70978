// Package clipboard copies text to the system clipboard, with a pbcopy
// fallback on macOS where the library write can fail in headless shells.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Writer implements ports.ClipboardWriter
type Writer struct{}

// NewWriter creates a new clipboard writer
func NewWriter() *Writer {
	return &Writer{}
}

// Copy places text on the system clipboard.
func (w *Writer) Copy(text string) error {
	err := atotto.WriteAll(text)
	if err == nil {
		return nil
	}
	return copyFallback(text, err)
}
