package services

import (
	"errors"
	"fmt"

	"github.com/tingyuxuan123/devhaven/internal/domain"
	"github.com/tingyuxuan123/devhaven/internal/logging"
	"github.com/tingyuxuan123/devhaven/internal/ports"
)

// OpenService is the façade for the three open actions. Each action either
// runs a caller-supplied override through the command launcher or falls back
// to the platform's native open mechanism.
type OpenService struct {
	launcher ports.CommandLauncher
	system   ports.SystemOpener
}

// NewOpenService creates a new OpenService
func NewOpenService(launcher ports.CommandLauncher, system ports.SystemOpener) *OpenService {
	return &OpenService{
		launcher: launcher,
		system:   system,
	}
}

// FileManager shows the path in the platform file manager.
func (s *OpenService) FileManager(path string) error {
	logging.Logger.Info("Opening file manager", "path", path)
	return s.system.Reveal(path)
}

// Terminal opens a terminal at the directory. With a command override the
// override is launched instead of the platform default terminal.
func (s *OpenService) Terminal(path string, override domain.Override) error {
	logging.Logger.Info("Opening terminal", "path", path, "command", override.Command)

	if override.Command != "" {
		args := domain.BuildArguments(override.Arguments, path)
		return s.runCommand(override.Command, args, "could not open terminal", "terminal open failed")
	}

	return s.system.OpenTerminal(path)
}

// Editor opens the path in an editor. An application designation (macOS app
// name or bundle id) is tried first, then the command override. There is no
// silent default editor; when nothing resolves the call fails.
func (s *OpenService) Editor(path string, override domain.Override) error {
	logging.Logger.Info("Opening editor", "path", path,
		"app", override.AppName, "bundle", override.BundleID, "command", override.Command)

	if override.AppName != "" || override.BundleID != "" {
		launched, err := s.system.LaunchApp(override.AppName, override.BundleID, path)
		if err != nil {
			return fmt.Errorf("could not open editor: %w", err)
		}
		if launched {
			return nil
		}
	}

	if override.Command != "" {
		args := domain.BuildArguments(override.Arguments, path)
		return s.runCommand(override.Command, args, "could not open editor", "editor open failed")
	}

	return domain.ErrNoEditor
}

// runCommand launches an override command and maps the outcome to an action
// error: spawn failures keep the OS error text, non-zero exits collapse to
// the fixed failure message.
func (s *OpenService) runCommand(command string, args []string, spawnMsg, failMsg string) error {
	err := s.launcher.Run(command, args)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrExitFailure) {
		return errors.New(failMsg)
	}
	return fmt.Errorf("%s: %w", spawnMsg, err)
}
