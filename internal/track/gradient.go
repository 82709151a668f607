package track

import "strings"

// Gradient is the vertical category of a piece, stored in geometry strides.
type Gradient uint8

const (
	// Level is flat.
	Level Gradient = 0

	// SlopeUp climbs one height step.
	SlopeUp Gradient = 2

	// SteepSlopeUp climbs one height step over a single tile.
	SteepSlopeUp Gradient = 4

	// SlopeDown descends one height step.
	SlopeDown Gradient = 6

	// SteepSlopeDown descends one height step over a single tile.
	SteepSlopeDown Gradient = 8
)

// Gradients lists every gradient in button order.
var Gradients = []Gradient{SteepSlopeDown, SlopeDown, Level, SlopeUp, SteepSlopeUp}

// String returns the canonical gradient name.
func (g Gradient) String() string {
	switch g {
	case Level:
		return "level"
	case SlopeUp:
		return "slope_up"
	case SteepSlopeUp:
		return "steep_slope_up"
	case SlopeDown:
		return "slope_down"
	case SteepSlopeDown:
		return "steep_slope_down"
	default:
		return "unknown"
	}
}

// IsSloped reports whether g is any non-level gradient.
func (g Gradient) IsSloped() bool {
	switch g {
	case SlopeUp, SlopeDown, SteepSlopeUp, SteepSlopeDown:
		return true
	default:
		return false
	}
}

// IsSteep reports whether g is a steep gradient.
func (g Gradient) IsSteep() bool {
	return g == SteepSlopeUp || g == SteepSlopeDown
}

// ParseGradient parses a gradient name; "up", "down", "steep_up" and "steep_down" are accepted too.
func ParseGradient(name string) (Gradient, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "level", "flat", "":
		return Level, true
	case "slope_up", "up":
		return SlopeUp, true
	case "steep_slope_up", "steep_up":
		return SteepSlopeUp, true
	case "slope_down", "down":
		return SlopeDown, true
	case "steep_slope_down", "steep_down":
		return SteepSlopeDown, true
	default:
		return Level, false
	}
}
