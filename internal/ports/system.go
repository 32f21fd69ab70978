package ports

// SystemOpener exposes the platform's native open mechanisms. Each build
// target provides one implementation.
type SystemOpener interface {
	// OpenPath opens the path with the OS default handler.
	OpenPath(path string) error

	// Reveal shows the path in the platform file manager, selecting it when
	// the platform supports that (Finder's reveal mode on macOS).
	Reveal(path string) error

	// OpenTerminal opens the platform default terminal at the directory.
	OpenTerminal(path string) error

	// LaunchApp opens the path with a named application or bundle identifier.
	// It returns true when an application launch succeeded, false when the
	// platform has no such mechanism or the application exited non-zero.
	// A non-nil error means the launch could not even be attempted.
	LaunchApp(appName, bundleID, path string) (bool, error)
}
