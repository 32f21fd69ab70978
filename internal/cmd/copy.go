package cmd

import (
	"fmt"
	"io"
	"os"
)

// CopyCmd copies text to the system clipboard
type CopyCmd struct {
	Text string `arg:"" optional:"" help:"Text to copy; reads stdin when omitted"`
}

// Run executes the clipboard copy
func (c *CopyCmd) Run(cli *CLI) error {
	text := c.Text
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	return cli.Container.Clipboard.Copy(text)
}
