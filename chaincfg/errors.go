package chaincfg

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduleIntegrity marks a malformed parameter set: a decoded payout
	// address of the wrong class, an out of order upgrade schedule, a founders
	// list longer than its reward period.
	ErrScheduleIntegrity = errors.New("chain parameters: schedule integrity violated")

	// ErrPrecondition marks a call outside the domain of an operation, such as
	// asking for a pre-fork founders address past the last reward height.
	ErrPrecondition = errors.New("chain parameters: precondition failed")

	// ErrNotInitialized is raised when the active parameters are read before a
	// network was selected.
	ErrNotInitialized = errors.New("chain parameters: no network selected")

	ErrUnknownNetwork = errors.New("unknown network")
)

// fatal panics with err wrapping kind. Recovered values satisfy errors.Is(v, kind).
func fatal(kind error, format string, args ...interface{}) {
	panic(errorf(kind, format, args...))
}

func errorf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
