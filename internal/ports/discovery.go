package ports

import "github.com/tingyuxuan123/devhaven/internal/domain"

// PresetSource detects installed developer tools.
type PresetSource interface {
	// Discover probes the platform's installation conventions and returns
	// the presets for every tool that is present, in catalog order. It is
	// best-effort and never fails; absent tools are simply omitted.
	Discover() []domain.Preset
}
