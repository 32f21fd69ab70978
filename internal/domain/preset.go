package domain

import "strings"

// PathPlaceholder is the literal token inside an argument template that gets
// replaced with the target path when a command is resolved.
const PathPlaceholder = "{path}"

// Preset describes a detected developer tool that is ready to launch.
// Presets are built fresh on every discovery pass and never cached.
type Preset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CommandPath string   `json:"command_path"`
	Arguments   []string `json:"arguments"`
}

// Override carries the optional launch parameters a caller can supply instead
// of relying on platform defaults. AppName and BundleID are only meaningful on
// macOS, where they select an application for `open`; Command plus Arguments
// work everywhere.
type Override struct {
	AppName   string
	BundleID  string
	Command   string
	Arguments []string
}

// ResolvedCommand is an executable plus its final argument vector, with the
// path placeholder already substituted.
type ResolvedCommand struct {
	Executable string
	Arguments  []string
}

// BuildArguments substitutes the target path into an argument template.
// Every occurrence of PathPlaceholder within each entry is replaced; when no
// entry contained the placeholder (or the template is empty), the path is
// appended as the final argument so it is never dropped.
func BuildArguments(template []string, path string) []string {
	resolved := make([]string, 0, len(template)+1)
	inserted := false

	for _, arg := range template {
		if strings.Contains(arg, PathPlaceholder) {
			resolved = append(resolved, strings.ReplaceAll(arg, PathPlaceholder, path))
			inserted = true
		} else {
			resolved = append(resolved, arg)
		}
	}

	if !inserted {
		resolved = append(resolved, path)
	}

	return resolved
}

// Resolve builds the ResolvedCommand for a preset against a target path.
func (p Preset) Resolve(path string) ResolvedCommand {
	return ResolvedCommand{
		Executable: p.CommandPath,
		Arguments:  BuildArguments(p.Arguments, path),
	}
}
