//go:build darwin

package system

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const openTool = "/usr/bin/open"

// OpenPath opens the path with the default handler.
func (o *Opener) OpenPath(path string) error {
	return run(openTool, []string{path}, "could not open path", "failed to open path")
}

// Reveal shows the path in Finder with the item selected.
func (o *Opener) Reveal(path string) error {
	return run(openTool, []string{"-R", path}, "could not open Finder", "Finder failed to reveal the path")
}

// OpenTerminal opens Terminal.app, changes its working directory to path and
// brings the window to the foreground.
func (o *Opener) OpenTerminal(path string) error {
	escaped := strings.ReplaceAll(path, `"`, `\"`)
	script := fmt.Sprintf("tell application \"Terminal\"\n    do script \"cd \\\"%s\\\"\"\n    activate\nend tell", escaped)
	return run("/usr/bin/osascript", []string{"-e", script}, "could not open terminal", "terminal open failed")
}

// LaunchApp opens the path with a named application, then with a bundle
// identifier when the name did not work. Non-zero exits fall through so the
// caller can try its next strategy; spawn errors abort.
func (o *Opener) LaunchApp(appName, bundleID, path string) (bool, error) {
	if appName != "" {
		launched, err := openWith("-a", appName, path)
		if err != nil || launched {
			return launched, err
		}
	}
	if bundleID != "" {
		return openWith("-b", bundleID, path)
	}
	return false, nil
}

func openWith(flag, target, path string) (bool, error) {
	err := exec.Command(openTool, flag, target, path).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}
