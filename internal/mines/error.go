package mines

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyMines = errors.New("too many mines for the board")
	ErrNoBoard      = errors.New("no board")
)

// InvariantError reports corrupted bookkeeping. It is raised with panic and is
// not meant to be recovered from.
type InvariantError struct {
	message string
}

// [InvariantError] implements [error]
func (e InvariantError) Error() string {
	return "invariant violated: " + e.message
}

func invariant(format string, args ...any) InvariantError {
	return InvariantError{fmt.Sprintf(format, args...)}
}

type ParamsError struct {
	Params Params
	reason string
	err    error
}

// [ParamsError] implements [error]
func (e ParamsError) Error() string {
	return fmt.Sprintf("invalid game params %s: %s", e.Params.Seed(), e.reason)
}

func (e ParamsError) Unwrap() error {
	return e.err
}
