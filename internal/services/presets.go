package services

import (
	"fmt"

	"github.com/tingyuxuan123/devhaven/internal/domain"
	"github.com/tingyuxuan123/devhaven/internal/ports"
)

// PresetService lists detected developer tools
type PresetService struct {
	source ports.PresetSource
}

// NewPresetService creates a new PresetService
func NewPresetService(source ports.PresetSource) *PresetService {
	return &PresetService{source: source}
}

// List returns the installed presets in catalog order.
func (s *PresetService) List() []domain.Preset {
	return s.source.Discover()
}

// Find returns the installed preset with the given id.
func (s *PresetService) Find(id string) (domain.Preset, error) {
	for _, preset := range s.source.Discover() {
		if preset.ID == id {
			return preset, nil
		}
	}
	return domain.Preset{}, fmt.Errorf("%w: %s", domain.ErrNoPresetMatch, id)
}
