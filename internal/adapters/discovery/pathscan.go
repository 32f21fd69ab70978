package discovery

import (
	"github.com/tingyuxuan123/devhaven/internal/adapters/locate"
	"github.com/tingyuxuan123/devhaven/internal/domain"
)

// discoverCommands resolves the catalog via PATH lookups of the canonical
// command names. Used on Linux and other Unixes, where editors install
// launcher scripts on the PATH.
func discoverCommands() []domain.Preset {
	var presets []domain.Preset

	for _, tool := range catalog {
		path, ok := locate.FindInPath(tool.command)
		if !ok {
			continue
		}
		presets = append(presets, domain.Preset{
			ID:          tool.id,
			Name:        tool.name,
			CommandPath: path,
			Arguments:   []string{domain.PathPlaceholder},
		})
	}

	return presets
}
