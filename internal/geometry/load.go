package geometry

import (
	"embed"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/invopop/yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	railOnce, roadOnce   sync.Once
	railTable, roadTable *Table
)

// Rail returns the embedded rail table.
func Rail() *Table {
	railOnce.Do(func() { railTable = MustLoad("rail") })
	return railTable
}

// Road returns the embedded road table.
func Road() *Table {
	roadOnce.Do(func() { roadTable = MustLoad("road") })
	return roadTable
}

// For returns the embedded table of a transport mode.
func For(isRoad bool) *Table {
	if isRoad {
		return Road()
	}

	return Rail()
}

// MustLoad parses an embedded table by name and panics on corrupt data.
func MustLoad(name string) *Table {
	raw, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("geometry: %v", err))
	}

	t, err := Parse(name, raw)
	if err != nil {
		panic(fmt.Sprintf("geometry: %v", err))
	}

	return t
}

// Load reads a geometry table from a YAML or JSON file.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(path, raw)
}

// Parse decodes and validates a geometry table.
func Parse(name string, raw []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	t.Name = name
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.Version = Hash32(raw)

	return &t, nil
}

// Hash32 builds a deterministic 32-bit hash by folding xxhash64.
func Hash32(b []byte) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], xxhash.Sum64(b))

	return binary.LittleEndian.Uint32(buf[:4]) ^ binary.LittleEndian.Uint32(buf[4:])
}
