package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tingyuxuan123/devhaven/internal/domain"
)

type fakeLauncher struct {
	commands [][]string
	err      error
}

func (f *fakeLauncher) Run(command string, args []string) error {
	f.commands = append(f.commands, append([]string{command}, args...))
	return f.err
}

type fakeSystem struct {
	revealed    []string
	terminals   []string
	opened      []string
	launched    []string
	revealErr   error
	terminalErr error
	appLaunched bool
	appErr      error
}

func (f *fakeSystem) OpenPath(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

func (f *fakeSystem) Reveal(path string) error {
	f.revealed = append(f.revealed, path)
	return f.revealErr
}

func (f *fakeSystem) OpenTerminal(path string) error {
	f.terminals = append(f.terminals, path)
	return f.terminalErr
}

func (f *fakeSystem) LaunchApp(appName, bundleID, path string) (bool, error) {
	f.launched = append(f.launched, fmt.Sprintf("%s|%s|%s", appName, bundleID, path))
	return f.appLaunched, f.appErr
}

func TestFileManager_DelegatesToReveal(t *testing.T) {
	system := &fakeSystem{}
	service := NewOpenService(&fakeLauncher{}, system)

	err := service.FileManager("/tmp/project")

	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/project"}, system.revealed)
}

func TestFileManager_SurfacesRevealError(t *testing.T) {
	system := &fakeSystem{revealErr: errors.New("Finder failed to reveal the path")}
	service := NewOpenService(&fakeLauncher{}, system)

	err := service.FileManager("/tmp/project")

	assert.EqualError(t, err, "Finder failed to reveal the path")
}

func TestTerminal_OverrideRunsCommand(t *testing.T) {
	launcher := &fakeLauncher{}
	system := &fakeSystem{}
	service := NewOpenService(launcher, system)

	err := service.Terminal("/tmp/project", domain.Override{
		Command:   "/usr/local/bin/kitty",
		Arguments: []string{"--directory", "{path}"},
	})

	require.NoError(t, err)
	require.Len(t, launcher.commands, 1)
	assert.Equal(t, []string{"/usr/local/bin/kitty", "--directory", "/tmp/project"}, launcher.commands[0])
	assert.Empty(t, system.terminals)
}

func TestTerminal_OverrideNonZeroExit(t *testing.T) {
	launcher := &fakeLauncher{err: fmt.Errorf("%w: exit status 2", domain.ErrExitFailure)}
	service := NewOpenService(launcher, &fakeSystem{})

	err := service.Terminal("/tmp/project", domain.Override{Command: "kitty"})

	assert.EqualError(t, err, "terminal open failed")
}

func TestTerminal_OverrideSpawnErrorKeepsOSText(t *testing.T) {
	spawnErr := errors.New("fork/exec kitty: no such file or directory")
	launcher := &fakeLauncher{err: spawnErr}
	service := NewOpenService(launcher, &fakeSystem{})

	err := service.Terminal("/tmp/project", domain.Override{Command: "kitty"})

	require.Error(t, err)
	assert.ErrorIs(t, err, spawnErr)
	assert.Contains(t, err.Error(), "could not open terminal")
}

func TestTerminal_NoOverrideUsesPlatformDefault(t *testing.T) {
	launcher := &fakeLauncher{}
	system := &fakeSystem{}
	service := NewOpenService(launcher, system)

	err := service.Terminal("/tmp/project", domain.Override{})

	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/project"}, system.terminals)
	assert.Empty(t, launcher.commands)
}

func TestEditor_NoStrategyFails(t *testing.T) {
	service := NewOpenService(&fakeLauncher{}, &fakeSystem{})

	err := service.Editor("/tmp/f.txt", domain.Override{})

	assert.ErrorIs(t, err, domain.ErrNoEditor)
}

func TestEditor_AppLaunchShortCircuits(t *testing.T) {
	launcher := &fakeLauncher{}
	system := &fakeSystem{appLaunched: true}
	service := NewOpenService(launcher, system)

	err := service.Editor("/tmp/f.txt", domain.Override{AppName: "GoLand", Command: "goland"})

	require.NoError(t, err)
	assert.Equal(t, []string{"GoLand||/tmp/f.txt"}, system.launched)
	assert.Empty(t, launcher.commands)
}

func TestEditor_AppMissFallsBackToCommand(t *testing.T) {
	launcher := &fakeLauncher{}
	system := &fakeSystem{appLaunched: false}
	service := NewOpenService(launcher, system)

	err := service.Editor("/tmp/f.txt", domain.Override{
		AppName:   "Sublime Text",
		Command:   "subl",
		Arguments: []string{"--wait", "{path}"},
	})

	require.NoError(t, err)
	require.Len(t, launcher.commands, 1)
	assert.Equal(t, []string{"subl", "--wait", "/tmp/f.txt"}, launcher.commands[0])
}

func TestEditor_AppSpawnErrorAborts(t *testing.T) {
	launcher := &fakeLauncher{}
	system := &fakeSystem{appErr: errors.New("fork/exec /usr/bin/open: permission denied")}
	service := NewOpenService(launcher, system)

	err := service.Editor("/tmp/f.txt", domain.Override{AppName: "GoLand", Command: "goland"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open editor")
	assert.Empty(t, launcher.commands)
}

func TestEditor_OverrideSpawnErrorKeepsOSText(t *testing.T) {
	spawnErr := errors.New("exec: \"subl\": executable file not found in $PATH")
	launcher := &fakeLauncher{err: spawnErr}
	service := NewOpenService(launcher, &fakeSystem{})

	err := service.Editor("/tmp/f.txt", domain.Override{Command: "subl", Arguments: []string{"--wait", "{path}"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, spawnErr)
	assert.Contains(t, err.Error(), "could not open editor")
}
