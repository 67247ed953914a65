package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/pkg/scene"
)

// ListScenes prints the built-in scene catalog.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Builtins() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	fmt.Print(buf.String())
	return nil
}
