package mealy

import (
	"errors"
	"fmt"
)

var (
	ErrStateDoesNotExist      = errors.New("mealy: state does not exist")
	ErrTransitionDoesNotExist = errors.New("mealy: transition does not exist")
	ErrNoValidTransition      = errors.New("mealy: no valid transition")
	ErrTooManyEffects         = errors.New("mealy: more effects than matching transitions")
	ErrFrozen                 = errors.New("mealy: machine is frozen")
	ErrShadowedTransition     = errors.New("mealy: transition shadowed by unconditional fallback")
)

// StateError reports a state that is referenced but has no entry in the
// transition table.
type StateError[S comparable] struct {
	State S
}

func (e *StateError[S]) Error() string {
	return fmt.Sprintf("state %v does not exist in transition table", e.State)
}

func (e *StateError[S]) Is(target error) bool {
	return target == ErrStateDoesNotExist
}

// ConnectionError reports a failed effect assignment for a (from, to) pair.
// Err is ErrTransitionDoesNotExist or ErrTooManyEffects.
type ConnectionError[S comparable] struct {
	Connection StatesConnection[S]
	Err        error
}

func (e *ConnectionError[S]) Error() string {
	return fmt.Sprintf("connection %v -> %v: %v", e.Connection.From, e.Connection.To, e.Err)
}

func (e *ConnectionError[S]) Unwrap() error {
	return e.Err
}

// RejectError reports that no outgoing transition of From accepts the
// character at Input.Index. Rejection is the normal outcome for invalid input.
type RejectError[S comparable] struct {
	From  S
	Input StreamData
}

func (e *RejectError[S]) Error() string {
	return fmt.Sprintf("no valid transition from state %v for character %q at index %d",
		e.From, e.Input.Char, e.Input.Index)
}

func (e *RejectError[S]) Is(target error) bool {
	return target == ErrNoValidTransition
}

// IsRejected reports whether err is an input rejection
func IsRejected(err error) bool {
	return errors.Is(err, ErrNoValidTransition)
}

// IsStateDoesNotExist reports whether err is caused by a missing state
func IsStateDoesNotExist(err error) bool {
	return errors.Is(err, ErrStateDoesNotExist)
}
