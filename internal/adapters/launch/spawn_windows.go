//go:build windows

package launch

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

type commandKind int

const (
	kindDirect commandKind = iota
	kindCmd
	kindPowerShell
)

// Probed in this order when an extension-less direct spawn fails.
var fallbackExtensions = []struct {
	ext  string
	kind commandKind
}{
	{"cmd", kindCmd},
	{"bat", kindCmd},
	{"ps1", kindPowerShell},
	{"exe", kindDirect},
	{"com", kindDirect},
}

func spawnWithShellSupport(command string, args []string) error {
	if kind, ok := classifyExtension(command); ok {
		return runKind(kind, command, args)
	}

	err := runKind(kindDirect, command, args)
	if err == nil {
		return nil
	}

	// A clean non-zero exit means the command ran; no fallback applies.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	if kind, sibling, ok := resolveFallback(command, err); ok {
		return runKind(kind, sibling, args)
	}
	return err
}

// classifyExtension maps script extensions to their interpreter. The second
// return is false for everything that should be spawned directly.
func classifyExtension(command string) (commandKind, bool) {
	switch strings.ToLower(filepath.Ext(command)) {
	case ".cmd", ".bat":
		return kindCmd, true
	case ".ps1":
		return kindPowerShell, true
	default:
		return kindDirect, false
	}
}

// resolveFallback probes sibling files of an extension-less command after a
// not-found class spawn error. Users often configure tools by bare path when
// the installed file is really code.cmd or a PowerShell shim.
func resolveFallback(command string, err error) (commandKind, string, bool) {
	if filepath.Ext(command) != "" || !isNotFoundClass(err) {
		return kindDirect, "", false
	}

	for _, fb := range fallbackExtensions {
		candidate := command + "." + fb.ext
		if isRegularFile(candidate) {
			return fb.kind, candidate, true
		}
	}
	return kindDirect, "", false
}

func isNotFoundClass(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND,
		windows.ERROR_PATH_NOT_FOUND,
		windows.ERROR_BAD_EXE_FORMAT,
		windows.ERROR_EXE_MACHINE_TYPE_MISMATCH:
		return true
	}
	return false
}

func runKind(kind commandKind, executable string, args []string) error {
	switch kind {
	case kindCmd:
		cmdArgs := append([]string{"/C", executable}, args...)
		return exec.Command("cmd.exe", cmdArgs...).Run()
	case kindPowerShell:
		psArgs := append([]string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", executable}, args...)
		return exec.Command("powershell.exe", psArgs...).Run()
	default:
		return exec.Command(executable, args...).Run()
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
