// Package discovery detects installed developer tools and turns them into
// launchable presets. One probing strategy exists per platform: application
// bundles on macOS, install roots plus JetBrains Toolbox trees on Windows,
// and PATH lookups elsewhere. Discovery is read-only and best-effort; it
// never fails, it just omits what it cannot find.
package discovery

import "path/filepath"

// bundleCandidate is one macOS application bundle to probe for a tool.
type bundleCandidate struct {
	display string // preset display name when this bundle matched
	app     string // bundle name under /Applications, without ".app"
}

// toolProbe holds the per-platform probe parameters for one catalog entry.
// Emission order in discovery results follows the catalog declaration order.
type toolProbe struct {
	id   string
	name string

	// macOS: candidate bundles, primary first. The secondary (community
	// edition) bundle is only probed when the primary is absent.
	bundles []bundleCandidate

	// Windows: fixed install-root suffixes probed under the standard
	// installation env roots, with a PATH fallback via command.
	winSuffixes []string

	// Windows, JetBrains products: Toolbox product codes (paid edition
	// first) and the executable name under each build's bin directory.
	toolbox []string
	winExe  string

	// Community edition labeling: when the resolved Windows path contains
	// altMatch (lowercase), the preset is named altName instead of name.
	altName  string
	altMatch string

	// Canonical command name for PATH lookup (Linux, and the Windows
	// fallback for VS Code).
	command string
}

var catalog = []toolProbe{
	{
		id:   "vscode",
		name: "Visual Studio Code",
		bundles: []bundleCandidate{
			{display: "Visual Studio Code", app: "Visual Studio Code"},
		},
		winSuffixes: []string{
			filepath.Join("Microsoft VS Code", "Code.exe"),
			filepath.Join("Programs", "Microsoft VS Code", "Code.exe"),
		},
		command: "code",
	},
	{
		id:   "vscode-insiders",
		name: "Visual Studio Code - Insiders",
		bundles: []bundleCandidate{
			{display: "Visual Studio Code - Insiders", app: "Visual Studio Code - Insiders"},
		},
		winSuffixes: []string{
			filepath.Join("Microsoft VS Code Insiders", "Code - Insiders.exe"),
			filepath.Join("Programs", "Microsoft VS Code Insiders", "Code - Insiders.exe"),
		},
		command: "code-insiders",
	},
	{
		id:   "intellij-idea",
		name: "IntelliJ IDEA",
		bundles: []bundleCandidate{
			{display: "IntelliJ IDEA", app: "IntelliJ IDEA"},
			{display: "IntelliJ IDEA Community", app: "IntelliJ IDEA CE"},
		},
		toolbox:  []string{"IDEA-U", "IDEA-C"},
		winExe:   "idea64.exe",
		altName:  "IntelliJ IDEA Community",
		altMatch: "idea-c",
		command:  "idea",
	},
	{
		id:   "pycharm",
		name: "PyCharm",
		bundles: []bundleCandidate{
			{display: "PyCharm", app: "PyCharm"},
			{display: "PyCharm Community", app: "PyCharm CE"},
		},
		toolbox:  []string{"PyCharm-P", "PyCharm-C"},
		winExe:   "pycharm64.exe",
		altName:  "PyCharm Community",
		altMatch: "pycharm-c",
		command:  "pycharm",
	},
	{
		id:      "webstorm",
		name:    "WebStorm",
		bundles: []bundleCandidate{{display: "WebStorm", app: "WebStorm"}},
		toolbox: []string{"WebStorm"},
		winExe:  "webstorm64.exe",
		command: "webstorm",
	},
	{
		id:      "goland",
		name:    "GoLand",
		bundles: []bundleCandidate{{display: "GoLand", app: "GoLand"}},
		toolbox: []string{"GoLand"},
		winExe:  "goland64.exe",
		command: "goland",
	},
	{
		id:      "rider",
		name:    "Rider",
		bundles: []bundleCandidate{{display: "Rider", app: "Rider"}},
		toolbox: []string{"Rider"},
		winExe:  "rider64.exe",
		command: "rider",
	},
	{
		id:      "clion",
		name:    "CLion",
		bundles: []bundleCandidate{{display: "CLion", app: "CLion"}},
		toolbox: []string{"CLion"},
		winExe:  "clion64.exe",
		command: "clion",
	},
	{
		id:      "phpstorm",
		name:    "PhpStorm",
		bundles: []bundleCandidate{{display: "PhpStorm", app: "PhpStorm"}},
		toolbox: []string{"PhpStorm"},
		winExe:  "phpstorm64.exe",
		command: "phpstorm",
	},
	{
		id:      "datagrip",
		name:    "DataGrip",
		bundles: []bundleCandidate{{display: "DataGrip", app: "DataGrip"}},
		toolbox: []string{"DataGrip"},
		winExe:  "datagrip64.exe",
		command: "datagrip",
	},
}
