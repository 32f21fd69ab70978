package discovery

import (
	"path/filepath"
	"strings"

	"github.com/tingyuxuan123/devhaven/internal/adapters/locate"
	"github.com/tingyuxuan123/devhaven/internal/domain"
)

// discoverInstallRoots resolves the catalog against the Windows installation
// conventions. VS Code builds are probed under the standard install roots
// with a PATH fallback; JetBrains products go through the Toolbox version
// tree first (paid edition before community) and then the vendor install
// roots. getenv is injected so the resolution logic stays testable.
func discoverInstallRoots(getenv func(string) string) []domain.Preset {
	var toolboxRoot string
	if local := getenv("LOCALAPPDATA"); local != "" {
		toolboxRoot = filepath.Join(local, "JetBrains", "Toolbox", "apps")
	}
	vendorRoots := jetbrainsVendorRoots(getenv)
	installRoots := []string{
		getenv("ProgramFiles"),
		getenv("ProgramFiles(x86)"),
		getenv("LOCALAPPDATA"),
	}

	var presets []domain.Preset
	for _, tool := range catalog {
		path, ok := resolveInstalledTool(tool, toolboxRoot, vendorRoots, installRoots)
		if !ok {
			continue
		}

		name := tool.name
		if tool.altMatch != "" && strings.Contains(strings.ToLower(path), tool.altMatch) {
			name = tool.altName
		}

		presets = append(presets, domain.Preset{
			ID:          tool.id,
			Name:        name,
			CommandPath: path,
			Arguments:   []string{domain.PathPlaceholder},
		})
	}

	return presets
}

func resolveInstalledTool(tool toolProbe, toolboxRoot string, vendorRoots, installRoots []string) (string, bool) {
	if len(tool.winSuffixes) > 0 {
		if path, ok := locate.FindUnderRoots(installRoots, tool.winSuffixes); ok {
			return path, true
		}
		if tool.command != "" {
			if path, ok := locate.FindInPath(tool.command); ok {
				return path, true
			}
		}
		return "", false
	}

	if toolboxRoot != "" {
		for _, code := range tool.toolbox {
			if path, ok := locate.LatestToolboxExecutable(toolboxRoot, code, tool.winExe); ok {
				return path, true
			}
		}
	}

	for _, root := range vendorRoots {
		if path, ok := locate.VendorExecutable(root, tool.winExe); ok {
			return path, true
		}
	}

	return "", false
}

func jetbrainsVendorRoots(getenv func(string) string) []string {
	var roots []string
	if p := getenv("ProgramFiles"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
	}
	if p := getenv("ProgramFiles(x86)"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
	}
	if p := getenv("LOCALAPPDATA"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
		roots = append(roots, filepath.Join(p, "Programs", "JetBrains"))
	}
	return roots
}
