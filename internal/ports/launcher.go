package ports

// CommandLauncher runs an external command and waits for it to exit.
type CommandLauncher interface {
	// Run executes command with args and blocks until the process exits.
	// A nil return means the process exited with status 0. Non-zero exits
	// are reported via domain.ErrExitFailure; anything else is a spawn error.
	Run(command string, args []string) error
}
