package main

import (
	"fmt"

	"github.com/woozymasta/loco-construct/internal/geometry"
)

type resolveCmd struct {
	Args struct {
		Piece string `positional-arg-name:"PIECE" required:"true" description:"Piece name, e.g. straight or lhc_small"`
	} `positional-args:"true"`

	TypeOptions
	SelectionOptions

	Format string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
}

type resolveReport struct {
	Type     string       `json:"type"`
	Piece    string       `json:"piece"`
	Gradient string       `json:"gradient"`
	ID       int          `json:"id"`
	Rotation uint8        `json:"rotation"`
	Traits   []string     `json:"traits,omitempty"`
	MinZ     int          `json:"min_z"`
	Tiles    int          `json:"tiles"`
	End      geometry.End `json:"end"`
}

// Execute resolves the selection against the object's mode.
func (c *resolveCmd) Execute(_ []string) error {
	cat, obj, err := c.lookup()
	if err != nil {
		return err
	}

	p, g, r, err := parseSelection(c.Args.Piece, c.SelectionOptions)
	if err != nil {
		return err
	}

	mode, _ := cat.Mode(obj.Type())
	if !mode.Offers(p) {
		return fmt.Errorf("%s has no %s", obj.Name, p)
	}
	res, ok := mode.Resolve(p, g, r)
	if !ok {
		return fmt.Errorf("invalid combination: %s %s at rotation %d", p, g, r)
	}

	table := geometry.For(mode.IsRoad())
	piece := table.MustPiece(res.ID)
	out, err := encodeOutput(resolveReport{
		Type:     obj.Name,
		Piece:    p.String(),
		Gradient: g.String(),
		ID:       int(res.ID),
		Rotation: uint8(res.Rotation),
		Traits:   res.Traits.Names(),
		MinZ:     piece.MinZ(),
		Tiles:    len(piece.Tiles),
		End:      table.End(res.ID, res.Rotation.Direction()),
	}, c.Format)
	if err != nil {
		return err
	}

	return writeOutput("", out)
}
