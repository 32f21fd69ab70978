package ports

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter interface {
	Copy(text string) error
}
