package main

import (
	"fmt"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/construction"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
)

type highlightCmd struct {
	Args struct {
		Piece string `positional-arg-name:"PIECE" required:"true" description:"Piece name"`
	} `positional-args:"true"`

	TypeOptions
	SelectionOptions

	X int `short:"x" long:"x" default:"4096" description:"Anchor x in world units"`
	Y int `short:"y" long:"y" default:"4096" description:"Anchor y in world units"`
}

// Execute prints the highlighted tiles with the object's colours.
func (c *highlightCmd) Execute(_ []string) error {
	cat, obj, err := c.lookup()
	if err != nil {
		return err
	}

	p, g, r, err := parseSelection(c.Args.Piece, c.SelectionOptions)
	if err != nil {
		return err
	}

	mode, _ := cat.Mode(obj.Type())
	res, ok := mode.Resolve(p, g, r)
	if !ok {
		return fmt.Errorf("invalid combination: %s %s at rotation %d", p, g, r)
	}

	piece := geometry.For(mode.IsRoad()).MustPiece(res.ID)
	set := construction.ComputeHighlight(piece, coord.Pos2{X: c.X, Y: c.Y}, res.Rotation)

	normal, key := catalog.Palette(obj.Name)
	fmt.Printf("%s %s: id %d, %d tiles\n", obj.Name, p, res.ID, set.Len())
	fmt.Printf("colour %s, outline %s, ghost %s\n", normal.Hex(), key.Hex(), catalog.GhostColor(normal).Hex())
	for _, t := range set.Tiles() {
		fmt.Printf("  %5d %5d\n", t.X, t.Y)
	}

	return nil
}
