// Package launch spawns external commands and normalizes their outcome. On
// Windows it understands script extensions (cmd, bat, ps1) and retries
// extension-less commands against sibling files when the direct spawn fails
// with a not-found class error.
package launch

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/tingyuxuan123/devhaven/internal/domain"
	"github.com/tingyuxuan123/devhaven/internal/logging"
)

// Runner implements ports.CommandLauncher
type Runner struct{}

// NewRunner creates a new command runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes command with args and blocks until the process exits. A nil
// return means exit status 0; non-zero exits wrap domain.ErrExitFailure and
// spawn errors surface as-is.
func (r *Runner) Run(command string, args []string) error {
	logging.Logger.Debug("Running command", "command", command, "args", args)

	err := spawnWithShellSupport(command, args)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Logger.Warn("Command exited with failure", "command", command, "err", err)
		return fmt.Errorf("%w: %s", domain.ErrExitFailure, exitErr)
	}

	logging.Logger.Warn("Command could not be started", "command", command, "err", err)
	return err
}
