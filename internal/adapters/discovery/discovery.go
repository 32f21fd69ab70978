package discovery

import (
	"github.com/tingyuxuan123/devhaven/internal/domain"
	"github.com/tingyuxuan123/devhaven/internal/logging"
)

// Source implements ports.PresetSource
type Source struct{}

// NewSource creates the preset source for the current OS
func NewSource() *Source {
	return &Source{}
}

// Discover probes the platform's installation conventions and returns the
// presets for every catalog tool that is present, in catalog order.
func (s *Source) Discover() []domain.Preset {
	presets := discoverPlatform()
	logging.Logger.Debug("Preset discovery finished", "count", len(presets))
	return presets
}
