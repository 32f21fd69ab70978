//go:build !darwin

package clipboard

import "fmt"

func copyFallback(_ string, err error) error {
	return fmt.Errorf("failed to write clipboard: %w", err)
}
