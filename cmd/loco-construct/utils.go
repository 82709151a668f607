package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/yaml"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/track"
)

// TypeOptions selects the object being built.
type TypeOptions struct {
	Type    string `short:"t" long:"type" default:"Standard Gauge Railway" description:"Object name or rail:<id> / road:<id>"`
	Catalog string `short:"c" long:"catalog" description:"Catalog file (default: built-in)"`
}

// lookup loads the catalog and finds the selected object.
func (o TypeOptions) lookup() (*catalog.Catalog, *catalog.TrackObject, error) {
	cat := catalog.Default()
	if o.Catalog != "" {
		var err error
		if cat, err = catalog.Load(o.Catalog); err != nil {
			return nil, nil, err
		}
	}

	obj, ok := cat.Lookup(o.Type)
	if !ok {
		return nil, nil, fmt.Errorf("unknown type: %s", o.Type)
	}

	return cat, obj, nil
}

// SelectionOptions is a piece selection given on the command line.
type SelectionOptions struct {
	Gradient string `short:"g" long:"gradient" default:"level" description:"Gradient name"`
	Rotation uint8  `short:"r" long:"rotation" description:"Rotation 0-15"`
}

// parseSelection parses the piece and gradient names.
func parseSelection(piece string, o SelectionOptions) (track.Piece, track.Gradient, track.Rotation, error) {
	p, ok := track.ParsePiece(piece)
	if !ok || p == track.PieceNone {
		return 0, 0, 0, fmt.Errorf("unknown piece: %s", piece)
	}

	g, ok := track.ParseGradient(o.Gradient)
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown gradient: %s", o.Gradient)
	}
	if o.Rotation > 15 {
		return 0, 0, 0, fmt.Errorf("rotation out of range: %d", o.Rotation)
	}

	return p, g, track.Rotation(o.Rotation), nil
}

// encodeOutput encodes a value in the requested format.
func encodeOutput(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml":
		return yaml.Marshal(v)
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
