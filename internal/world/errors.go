package world

import (
	"errors"
	"fmt"

	"github.com/woozymasta/loco-construct/internal/track"
)

// Command failure reasons.
var (
	ErrOffMap               = errors.New("off edge of map")
	ErrTooLow               = errors.New("too low")
	ErrTooHigh              = errors.New("too high")
	ErrUnderwater           = errors.New("too close to water")
	ErrLandInTheWay         = errors.New("land in the way")
	ErrBelowGround          = errors.New("can only build above ground")
	ErrInTheWay             = errors.New("other construction in the way")
	ErrBridgeNeeded         = errors.New("bridge needed")
	ErrTooHighForBridge     = errors.New("too high for bridge type")
	ErrBridgeUnsuitable     = errors.New("bridge type unsuitable for this configuration")
	ErrAlreadyBuilt         = errors.New("already built here")
	ErrJunctionsNotPossible = errors.New("junctions not possible")
	ErrIncompatibleJunction = errors.New("incompatible junction")
	ErrInsufficientFunds    = errors.New("not enough cash available")
	ErrNothingToRemove      = errors.New("nothing to remove")
	ErrNoTrackHere          = errors.New("no track or road here")
	ErrSignalOnRoad         = errors.New("signals can only be placed on rail")
	ErrStationNeedsStraight = errors.New("station needs straight level piece")
	ErrUnknownObject        = errors.New("unknown object")
	ErrUnknownPiece         = errors.New("unknown geometry id")
)

// CommandError is a failed world command.
type CommandError struct {
	Reason error  // one of the Err* reasons
	Object string // object or position the command was about

	Conflict    track.Type // existing object blocking a junction
	HasConflict bool
}

func (e *CommandError) Error() string {
	if e.Object == "" {
		return e.Reason.Error()
	}

	return fmt.Sprintf("%s: %v", e.Object, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Reason
}

// fail builds a CommandError.
func fail(reason error, format string, args ...any) error {
	return &CommandError{Reason: reason, Object: fmt.Sprintf(format, args...)}
}

// Reason returns the failure reason of a command error, or err itself.
func Reason(err error) error {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Reason
	}

	return err
}

// Conflict returns the existing object that blocked a junction.
func Conflict(err error) (track.Type, bool) {
	var ce *CommandError
	if errors.As(err, &ce) && ce.HasConflict {
		return ce.Conflict, true
	}

	return 0, false
}
