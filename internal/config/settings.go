package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the structure of ~/.devhaven/settings.json
type Settings struct {
	Debug       *bool        `json:"debug,omitempty"`
	MaxLogFiles *int         `json:"max_log_files,omitempty"`
	Editor      ToolOverride `json:"editor,omitempty"`
	Terminal    ToolOverride `json:"terminal,omitempty"`
}

// ToolOverride is a user-configured launch override for one action. Command
// and Arguments work on every platform; AppName and BundleID only apply on
// macOS, where they select an application for `open`.
type ToolOverride struct {
	AppName   string      `json:"app_name,omitempty"`
	BundleID  string      `json:"bundle_id,omitempty"`
	Command   string      `json:"command,omitempty"`
	Arguments StringArray `json:"arguments,omitempty"`
}

// IsZero reports whether no override field was configured.
func (o ToolOverride) IsZero() bool {
	return o.AppName == "" && o.BundleID == "" && o.Command == "" && len(o.Arguments) == 0
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from ~/.devhaven/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadSettingsFromFile(filepath.Join(homeDir, ".devhaven", "settings.json"))
}

// LoadSettingsFromFile loads settings from an explicit path.
func LoadSettingsFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.Editor.Command = expandPath(settings.Editor.Command)
	settings.Terminal.Command = expandPath(settings.Terminal.Command)

	return &settings, nil
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
