//go:build windows

package system

import (
	"fmt"
	"os/exec"
	"strings"
)

// OpenPath opens the path with Explorer.
func (o *Opener) OpenPath(path string) error {
	return run("explorer", []string{path}, "could not open path", "failed to open path")
}

// Reveal opens the path in Explorer. Windows has no select-on-open variant
// wired here; showing the folder is the platform behavior.
func (o *Opener) Reveal(path string) error {
	return o.OpenPath(path)
}

// OpenTerminal prefers Windows Terminal and falls back to a PowerShell
// window located at the directory when wt is unavailable or fails.
func (o *Opener) OpenTerminal(path string) error {
	if err := exec.Command("wt.exe", "-d", path).Run(); err == nil {
		return nil
	}

	escaped := strings.ReplaceAll(path, `"`, `""`)
	command := fmt.Sprintf(`Set-Location -LiteralPath "%s"`, escaped)
	return run("powershell.exe", []string{"-NoExit", "-Command", command}, "could not open terminal", "terminal open failed")
}

// LaunchApp is a no-op on Windows; applications are addressed by executable
// path instead of name.
func (o *Opener) LaunchApp(appName, bundleID, path string) (bool, error) {
	return false, nil
}
