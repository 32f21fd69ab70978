package discovery

import (
	"os"
	"path/filepath"

	"github.com/tingyuxuan123/devhaven/internal/domain"
)

// discoverBundles walks the catalog against a macOS applications root. Each
// tool probes its candidate bundles in order and the first existing bundle
// wins, so a community edition is only reported when the full edition is
// absent. Presets launch through the generic `open -a` mechanism.
func discoverBundles(appsRoot string) []domain.Preset {
	var presets []domain.Preset

	for _, tool := range catalog {
		for _, bundle := range tool.bundles {
			if !bundleExists(filepath.Join(appsRoot, bundle.app+".app")) {
				continue
			}
			presets = append(presets, domain.Preset{
				ID:          tool.id,
				Name:        bundle.display,
				CommandPath: "/usr/bin/open",
				Arguments:   []string{"-a", bundle.app, domain.PathPlaceholder},
			})
			break
		}
	}

	return presets
}

func bundleExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
