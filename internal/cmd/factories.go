package cmd

import (
	adapterclipboard "github.com/tingyuxuan123/devhaven/internal/adapters/clipboard"
	adapterdiscovery "github.com/tingyuxuan123/devhaven/internal/adapters/discovery"
	adapterlaunch "github.com/tingyuxuan123/devhaven/internal/adapters/launch"
	adaptersystem "github.com/tingyuxuan123/devhaven/internal/adapters/system"
	"github.com/tingyuxuan123/devhaven/internal/ports"
	"github.com/tingyuxuan123/devhaven/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	OpenService   *services.OpenService
	PresetService *services.PresetService
	Clipboard     ports.ClipboardWriter
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() *Container {
	launcher := adapterlaunch.NewRunner()
	opener := adaptersystem.NewOpener()
	source := adapterdiscovery.NewSource()

	return &Container{
		OpenService:   services.NewOpenService(launcher, opener),
		PresetService: services.NewPresetService(source),
		Clipboard:     adapterclipboard.NewWriter(),
	}
}
