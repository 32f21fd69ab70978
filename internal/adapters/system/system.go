// Package system implements the platform-native open mechanisms: default
// handler open, file manager reveal and terminal windows. Each OS has its own
// implementation file selected by build tags.
package system

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/tingyuxuan123/devhaven/internal/logging"
)

// Opener implements ports.SystemOpener
type Opener struct{}

// NewOpener creates the platform opener for the current OS
func NewOpener() *Opener {
	return &Opener{}
}

// run executes the platform tool and maps its outcome to an action error:
// spawn failures keep the OS error text behind spawnMsg, clean non-zero exits
// collapse to failMsg.
func run(name string, args []string, spawnMsg, failMsg string) error {
	logging.Logger.Debug("Running system opener", "command", name, "args", args)

	err := exec.Command(name, args...).Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.New(failMsg)
	}
	return fmt.Errorf("%s: %w", spawnMsg, err)
}
