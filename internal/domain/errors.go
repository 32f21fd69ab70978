package domain

import "errors"

var (
	// ErrExitFailure marks a process that started fine but exited non-zero.
	// Callers use it to tell "could not start" apart from "ran and failed".
	ErrExitFailure = errors.New("command exited with a failure status")

	ErrNoEditor      = errors.New("no editor could be opened")
	ErrNoPresetMatch = errors.New("no preset with that id is installed")
)
