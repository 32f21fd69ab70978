//go:build !darwin && !windows

package system

// OpenPath opens the path with the desktop's default handler.
func (o *Opener) OpenPath(path string) error {
	return run("xdg-open", []string{path}, "could not open path", "failed to open path")
}

// Reveal opens the containing view via the default handler; Linux file
// managers have no portable reveal-and-select call.
func (o *Opener) Reveal(path string) error {
	return o.OpenPath(path)
}

// OpenTerminal delegates to the default handler, which resolves a directory
// to the preferred file manager or terminal per desktop configuration.
func (o *Opener) OpenTerminal(path string) error {
	return o.OpenPath(path)
}

// LaunchApp is a no-op outside macOS.
func (o *Opener) LaunchApp(appName, bundleID, path string) (bool, error) {
	return false, nil
}
