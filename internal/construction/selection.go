package construction

import (
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// State is the construction tool state.
type State int

const (
	// Idle means the tool is not following the pointer.
	Idle State = iota

	// Previewing means the tool is armed and ghosts follow the pointer.
	Previewing

	// Constructing means a placement is in progress.
	Constructing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	case Constructing:
		return "constructing"
	default:
		return "unknown"
	}
}

// Selection is the current construction choice of a session.
type Selection struct {
	Type     track.Type     `json:"type"`
	Piece    track.Piece    `json:"piece"`
	Gradient track.Gradient `json:"gradient"`
	Rotation track.Rotation `json:"rotation"`
	Bridge   uint8          `json:"bridge"`
	Signal   uint8          `json:"signal"`
	Station  uint8          `json:"station"`
	Mods     uint8          `json:"mods"`
	Hover    bool           `json:"hover"`
}

// Modifiers are the keyboard modifiers held during a pointer event.
type Modifiers uint8

const (
	// ModShift keeps descending while retrying placements.
	ModShift Modifiers = 1 << iota
)

// Has reports whether m holds every modifier in f.
func (m Modifiers) Has(f Modifiers) bool {
	return m&f == f
}

// Choices are the per type object choices remembered between sessions.
type Choices struct {
	Bridge  uint8 `json:"bridge"`
	Signal  uint8 `json:"signal"`
	Station uint8 `json:"station"`
	Mods    uint8 `json:"mods"`
}

// NoChoice marks an empty bridge, signal or station choice.
const NoChoice = world.NoBridge

// Defaults stores last-used choices per type.
type Defaults interface {
	LastUsed(t track.Type) (Choices, bool)
	Remember(t track.Type, c Choices)
}
