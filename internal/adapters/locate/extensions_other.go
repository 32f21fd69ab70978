//go:build !windows

package locate

// Unix executables carry no conventional extension.
var pathExtensions []string
