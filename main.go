package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tingyuxuan123/devhaven/internal/cmd"
	"github.com/tingyuxuan123/devhaven/internal/config"
	"github.com/tingyuxuan123/devhaven/internal/version"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	// Parse CLI arguments with Kong
	ctx := kong.Parse(&cli,
		kong.Name("devhaven"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
