// Command loco-construct inspects piece geometry and replays track construction scenarios.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/loco-construct/internal/vars"
)

type rootCmd struct {
	Version   versionCmd   `command:"version" description:"Show version information"`
	Resolve   resolveCmd   `command:"resolve" description:"Resolve a piece selection to its geometry id"`
	Tables    tablesCmd    `command:"tables" description:"Show geometry table statistics"`
	Highlight highlightCmd `command:"highlight" description:"Print the tiles a piece covers"`
	Terrain   terrainCmd   `command:"terrain" description:"Generate and print a terrain height map"`
	Simulate  simulateCmd  `command:"simulate" description:"Replay a construction scenario"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	vars.Print()
	return nil
}
