//go:build windows

package discovery

import (
	"os"

	"github.com/tingyuxuan123/devhaven/internal/domain"
)

func discoverPlatform() []domain.Preset {
	return discoverInstallRoots(os.Getenv)
}
