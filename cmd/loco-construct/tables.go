package main

import (
	"fmt"

	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/vars"
)

type tablesCmd struct {
	Files   []string `long:"file" description:"Geometry table file to check instead of the built-in tables (repeatable)"`
	Verbose bool     `short:"v" long:"verbose" description:"List every geometry id"`
}

// Execute prints the geometry table statistics.
func (c *tablesCmd) Execute(_ []string) error {
	tables := []*geometry.Table{geometry.Rail(), geometry.Road()}
	if len(c.Files) > 0 {
		tables = tables[:0]
		for _, path := range c.Files {
			t, err := geometry.Load(path)
			if err != nil {
				return err
			}
			tables = append(tables, t)
		}
	}

	fmt.Printf("loco-construct %s\n", vars.String())
	for _, t := range tables {
		tiles := 0
		for _, p := range t.Pieces {
			tiles += len(p.Tiles)
		}

		fmt.Printf("%s: %d pieces, %d tiles, version %08x%s\n", t.Name, t.Len(), tiles, t.Version, builtin(t))
		if !c.Verbose {
			continue
		}
		for _, p := range t.Pieces {
			fmt.Printf("  %2d: %2d tiles, min z %3d\n", p.ID, len(p.Tiles), p.MinZ())
		}
	}

	return nil
}

// builtin names the embedded table a loaded table is identical to.
func builtin(t *geometry.Table) string {
	for _, b := range []*geometry.Table{geometry.Rail(), geometry.Road()} {
		if b != t && b.Version == t.Version {
			return " (same as built-in " + b.Name + ")"
		}
	}

	return ""
}
