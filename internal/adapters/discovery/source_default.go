//go:build !darwin && !windows

package discovery

import "github.com/tingyuxuan123/devhaven/internal/domain"

func discoverPlatform() []domain.Preset {
	return discoverCommands()
}
