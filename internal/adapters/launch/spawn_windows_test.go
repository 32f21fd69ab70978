//go:build windows

package launch

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestClassifyExtension(t *testing.T) {
	tests := []struct {
		command string
		kind    commandKind
		scripty bool
	}{
		{`C:\tools\build.cmd`, kindCmd, true},
		{`C:\tools\build.BAT`, kindCmd, true},
		{`C:\tools\setup.ps1`, kindPowerShell, true},
		{`C:\tools\app.exe`, kindDirect, false},
		{`C:\tools\app`, kindDirect, false},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			kind, scripty := classifyExtension(tt.command)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.scripty, scripty)
		})
	}
}

func TestResolveFallback_FindsCmdSibling(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(base+".cmd", []byte("@echo off\r\n"), 0755))

	notFound := &fs.PathError{Op: "exec", Path: base, Err: windows.ERROR_FILE_NOT_FOUND}
	kind, sibling, ok := resolveFallback(base, notFound)

	require.True(t, ok)
	assert.Equal(t, kindCmd, kind)
	assert.Equal(t, base+".cmd", sibling)
}

func TestResolveFallback_SkipsCommandsWithExtension(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "mytool.exe")

	notFound := &fs.PathError{Op: "exec", Path: base, Err: windows.ERROR_FILE_NOT_FOUND}
	_, _, ok := resolveFallback(base, notFound)

	assert.False(t, ok)
}

func TestResolveFallback_IgnoresUnrelatedErrors(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(base+".cmd", []byte("@echo off\r\n"), 0755))

	denied := &fs.PathError{Op: "exec", Path: base, Err: windows.ERROR_ACCESS_DENIED}
	_, _, ok := resolveFallback(base, denied)

	assert.False(t, ok)
}
