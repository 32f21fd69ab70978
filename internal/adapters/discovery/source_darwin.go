//go:build darwin

package discovery

import "github.com/tingyuxuan123/devhaven/internal/domain"

func discoverPlatform() []domain.Preset {
	return discoverBundles("/Applications")
}
