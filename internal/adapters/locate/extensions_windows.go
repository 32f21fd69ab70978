//go:build windows

package locate

// Probed for extension-less commands, in this order.
var pathExtensions = []string{"exe", "cmd", "bat"}
