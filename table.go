package mealy

import (
	"errors"
	"fmt"
)

// Table maps every state to its ordered list of outgoing transitions.
// Order is significant: the first matching transition wins.
type Table[S comparable, E any] map[S][]Transition[S, E]

// Has reports whether state is a key of the table
func (t Table[S, E]) Has(state S) bool {
	_, ok := t[state]
	return ok
}

// Clone returns a copy of the table whose transition lists can be mutated
// without affecting t. Predicates and effects are shared by value.
func (t Table[S, E]) Clone() Table[S, E] {
	out := make(Table[S, E], len(t))
	for state, transitions := range t {
		cp := make([]Transition[S, E], len(transitions))
		copy(cp, transitions)
		out[state] = cp
	}
	return out
}

// Validate checks the calling conventions the engine only enforces lazily:
// every target must be a key, and an unconditional transition must be the
// last of its list. All problems are returned joined.
func (t Table[S, E]) Validate() error {
	var errs []error

	for from, transitions := range t {
		for i, tr := range transitions {
			if !t.Has(tr.To) {
				errs = append(errs, fmt.Errorf("transition %d of state %v: %w",
					i, from, &StateError[S]{State: tr.To}))
			}
			if tr.Unconditional() && i < len(transitions)-1 {
				errs = append(errs, fmt.Errorf("state %v: transition %d to %v shadows %d later transition(s): %w",
					from, i, tr.To, len(transitions)-1-i, ErrShadowedTransition))
			}
		}
	}

	return errors.Join(errs...)
}
