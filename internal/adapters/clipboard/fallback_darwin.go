//go:build darwin

package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// copyFallback pipes the text into pbcopy. The original library error is
// dropped once the fallback succeeds.
func copyFallback(text string, _ error) error {
	cmd := exec.Command("/usr/bin/pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
