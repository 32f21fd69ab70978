package cmd

import (
	"github.com/charmbracelet/huh"

	"github.com/tingyuxuan123/devhaven/internal/config"
	"github.com/tingyuxuan123/devhaven/internal/domain"
)

// OpenCmd groups the three open actions
type OpenCmd struct {
	Filemanager OpenFileManagerCmd `cmd:"" help:"Reveal the path in the system file manager"`
	Terminal    OpenTerminalCmd    `cmd:"" help:"Open a terminal at the directory"`
	Editor      OpenEditorCmd      `cmd:"" help:"Open the path in an editor"`
}

// OpenFileManagerCmd reveals a path in the platform file manager
type OpenFileManagerCmd struct {
	Path string `arg:"" help:"Target path"`
}

// Run executes the filemanager action
func (c *OpenFileManagerCmd) Run(cli *CLI) error {
	return cli.Container.OpenService.FileManager(c.Path)
}

// OpenTerminalCmd opens a terminal at a directory
type OpenTerminalCmd struct {
	Path    string   `arg:"" help:"Target directory"`
	Command string   `help:"Terminal command to run instead of the platform default"`
	Arg     []string `help:"Argument template entries; {path} is replaced with the target" placeholder:"TEMPLATE"`
}

// Run executes the terminal action
func (c *OpenTerminalCmd) Run(cli *CLI) error {
	override := domain.Override{Command: c.Command, Arguments: c.Arg}
	if override.Command == "" {
		override = settingsOverride(cli.Settings().Terminal)
	}
	return cli.Container.OpenService.Terminal(c.Path, override)
}

// OpenEditorCmd opens a path in an editor
type OpenEditorCmd struct {
	Path     string   `arg:"" help:"Target path"`
	App      string   `help:"Application name to open with (macOS)"`
	BundleID string   `help:"Application bundle identifier (macOS)"`
	Command  string   `help:"Editor command to run"`
	Arg      []string `help:"Argument template entries; {path} is replaced with the target" placeholder:"TEMPLATE"`
	Preset   string   `help:"Launch a detected preset by id (see 'devhaven presets')" xor:"selection"`
	Pick     bool     `help:"Pick a detected preset interactively" xor:"selection"`
}

// Run executes the editor action
func (c *OpenEditorCmd) Run(cli *CLI) error {
	override := domain.Override{
		AppName:   c.App,
		BundleID:  c.BundleID,
		Command:   c.Command,
		Arguments: c.Arg,
	}

	switch {
	case c.Preset != "":
		preset, err := cli.Container.PresetService.Find(c.Preset)
		if err != nil {
			return err
		}
		override = presetOverride(preset)
	case c.Pick:
		preset, err := pickPreset(cli.Container.PresetService.List())
		if err != nil {
			return err
		}
		override = presetOverride(preset)
	case override.AppName == "" && override.BundleID == "" && override.Command == "":
		override = settingsOverride(cli.Settings().Editor)
	}

	return cli.Container.OpenService.Editor(c.Path, override)
}

func presetOverride(preset domain.Preset) domain.Override {
	return domain.Override{Command: preset.CommandPath, Arguments: preset.Arguments}
}

func settingsOverride(tool config.ToolOverride) domain.Override {
	return domain.Override{
		AppName:   tool.AppName,
		BundleID:  tool.BundleID,
		Command:   tool.Command,
		Arguments: tool.Arguments,
	}
}

// pickPreset asks the user to choose among the detected tools.
func pickPreset(presets []domain.Preset) (domain.Preset, error) {
	if len(presets) == 0 {
		return domain.Preset{}, domain.ErrNoEditor
	}

	options := make([]huh.Option[string], 0, len(presets))
	for _, preset := range presets {
		options = append(options, huh.NewOption(preset.Name, preset.ID))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Open with").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return domain.Preset{}, err
	}

	for _, preset := range presets {
		if preset.ID == selected {
			return preset, nil
		}
	}
	return domain.Preset{}, domain.ErrNoPresetMatch
}
