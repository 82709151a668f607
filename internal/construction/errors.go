package construction

import (
	"errors"
	"fmt"

	"github.com/woozymasta/loco-construct/internal/world"
)

// Session errors.
var (
	ErrClosed             = errors.New("session closed")
	ErrUnknownType        = errors.New("unknown track or road type")
	ErrNotPreviewing      = errors.New("construction tool is not armed")
	ErrNotIdle            = errors.New("construction tool is armed")
	ErrBusy               = errors.New("construction in progress")
	ErrInvalidCombination = errors.New("piece, gradient and rotation do not combine")
	ErrControlDisabled    = errors.New("control disabled")
	ErrNotAvailable       = errors.New("object not available for this type")
	ErrNothingPlaced      = errors.New("nothing placed by this session")
	ErrNoSignals          = errors.New("signals need a rail session")
)

// Failure classifies construction errors.
type Failure int

const (
	// FailureNone is a nil error.
	FailureNone Failure = iota

	// FailureInvalidCombination means the selection resolves to no geometry; the UI
	// disables controls instead of reporting it.
	FailureInvalidCombination

	// FailureBelowGround is the one placement failure the retry loop never retries.
	FailureBelowGround

	// FailureOther covers every retryable placement failure.
	FailureOther
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureInvalidCombination:
		return "invalid_combination"
	case FailureBelowGround:
		return "below_ground"
	default:
		return "other"
	}
}

// Classify maps an error onto the failure taxonomy.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrInvalidCombination):
		return FailureInvalidCombination
	case errors.Is(err, world.ErrBelowGround):
		return FailureBelowGround
	default:
		return FailureOther
	}
}

// PlacementError is returned when the placement loop gives up.
type PlacementError struct {
	Attempts int   // placement commands issued
	Height   int   // height of the last attempt
	Err      error // last command error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement failed after %d attempt(s) at height %d: %v", e.Attempts, e.Height, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
