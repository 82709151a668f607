package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/invopop/yaml"

	"github.com/woozymasta/loco-construct/internal/construction"
	"github.com/woozymasta/loco-construct/internal/track"
)

var _ construction.Defaults = (*Defaults)(nil)

// Defaults keeps the last used bridge, signal, station and mods per track type.
type Defaults struct {
	mu    sync.Mutex
	Types map[string]construction.Choices `json:"types"` // keyed by "rail:<id>" or "road:<id>"
}

// NewDefaults returns an empty store.
func NewDefaults() *Defaults {
	return &Defaults{Types: map[string]construction.Choices{}}
}

// LoadDefaults reads a defaults file; a missing file yields an empty store.
func LoadDefaults(path string) (*Defaults, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDefaults(), nil
	}
	if err != nil {
		return nil, err
	}

	d := NewDefaults()
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("defaults %s: %w", path, err)
	}
	if d.Types == nil {
		d.Types = map[string]construction.Choices{}
	}

	return d, nil
}

// Save writes the store as YAML.
func (d *Defaults) Save(path string) error {
	d.mu.Lock()
	out, err := yaml.Marshal(map[string]any{"types": d.Types})
	d.mu.Unlock()
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o600)
}

// LastUsed implements construction.Defaults.
func (d *Defaults) LastUsed(t track.Type) (construction.Choices, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.Types[t.String()]
	return c, ok
}

// Remember implements construction.Defaults.
func (d *Defaults) Remember(t track.Type, c construction.Choices) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Types == nil {
		d.Types = map[string]construction.Choices{}
	}
	d.Types[t.String()] = c
}
