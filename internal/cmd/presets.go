package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// PresetsCmd lists the detected developer tools
type PresetsCmd struct {
	JSON bool `help:"Print presets as JSON"`
}

// Run executes the presets listing
func (c *PresetsCmd) Run(cli *CLI) error {
	presets := cli.Container.PresetService.List()

	if c.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(presets)
	}

	if len(presets) == 0 {
		fmt.Println("No developer tools detected.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Command", "Arguments"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	for _, preset := range presets {
		table.Append([]string{
			preset.ID,
			preset.Name,
			preset.CommandPath,
			strings.Join(preset.Arguments, " "),
		})
	}

	table.Render()
	return nil
}
