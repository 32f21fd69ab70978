//go:build !windows

package launch

import "os/exec"

// Unix has no extension-bound execution semantics, so every command is
// spawned directly.
func spawnWithShellSupport(command string, args []string) error {
	return exec.Command(command, args...).Run()
}
