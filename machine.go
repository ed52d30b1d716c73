package mealy

import (
	"fmt"
	"log/slog"
)

// Machine is a deterministic Mealy automaton over characters.
//
// A Machine is read-only during Run, so any number of Run calls may share it.
// MergeEffects mutates the transition table in place: calling it while a Run
// is in progress is a data race the caller must prevent, typically by merging
// during setup and calling Freeze before sharing the machine.
type Machine[S comparable, E any] struct {
	initial S
	table   Table[S, E]

	post    E
	hasPost bool

	logger *slog.Logger
	frozen bool
}

// Option is a functional option for configuring a Machine
type Option[E any] func(*options[E])

type options[E any] struct {
	post    E
	hasPost bool
	logger  *slog.Logger
}

// WithPostEffect sets the effect dispatched once after a whole input
// has been accepted
func WithPostEffect[E any](effect E) Option[E] {
	return func(o *options[E]) {
		o.post = effect
		o.hasPost = true
	}
}

// WithLogger sets the logger for the machine
func WithLogger[E any](logger *slog.Logger) Option[E] {
	return func(o *options[E]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a Machine starting in initial. The table is used as is, not
// copied; change it afterwards only through MergeEffects.
// Targets are not checked here: a missing target is reported by Run when
// traversal reaches it.
func New[S comparable, E any](initial S, table Table[S, E], opts ...Option[E]) (*Machine[S, E], error) {
	if !table.Has(initial) {
		return nil, &StateError[S]{State: initial}
	}

	o := options[E]{logger: Logger}
	for _, opt := range opts {
		opt(&o)
	}

	return &Machine[S, E]{
		initial: initial,
		table:   table,
		post:    o.post,
		hasPost: o.hasPost,
		logger:  o.logger,
	}, nil
}

// MustNew is like New but panics if the initial state is not in the table.
// Meant for package-level automata whose tables are fixed at compile time.
func MustNew[S comparable, E any](initial S, table Table[S, E], opts ...Option[E]) *Machine[S, E] {
	m, err := New(initial, table, opts...)
	if err != nil {
		panic(fmt.Sprintf("mealy: failed to create machine: %v", err))
	}
	return m
}

// Initial returns the initial state
func (m *Machine[S, E]) Initial() S {
	return m.initial
}

// Table returns a copy of the transition table
func (m *Machine[S, E]) Table() Table[S, E] {
	return m.table.Clone()
}

// PostEffect returns the post effect, if any
func (m *Machine[S, E]) PostEffect() (E, bool) {
	return m.post, m.hasPost
}

// Freeze ends the setup phase: MergeEffects returns ErrFrozen afterwards.
// Freeze must be called before the machine is shared between goroutines.
func (m *Machine[S, E]) Freeze() {
	m.frozen = true
}

// Frozen reports whether Freeze has been called
func (m *Machine[S, E]) Frozen() bool {
	return m.frozen
}

// Run drives input through the machine one character at a time.
//
// For every character the transitions of the current state are tried in
// declared order and the first match is taken. If that transition carries an
// effect and effector is not nil, the effect is dispatched before the next
// character is read. Once the whole input is consumed, the post effect (if
// any) is dispatched once with Index equal to the character count and Char
// equal to EndOfStream.
//
// Run returns a *RejectError when no transition accepts a character and a
// *StateError when the current state is missing from the table. Effects
// dispatched before a failure are not rolled back.
func (m *Machine[S, E]) Run(input string, effector Effector[E]) error {
	current := m.initial
	index := 0

	for offset, ch := range input {
		transitions, ok := m.table[current]
		if !ok {
			return &StateError[S]{State: current}
		}

		data := StreamData{Input: input, Index: index, Offset: offset, Char: ch}

		matched := false
		for _, t := range transitions {
			next, ok := t.Evaluate(ch)
			if !ok {
				continue
			}

			current = next
			matched = true

			if effect, ok := t.EffectValue(); ok && effector != nil {
				effector.Dispatch(effect, data)
			}
			break
		}

		if !matched {
			m.logger.Debug("input rejected", "from", current, "index", index, "char", string(ch))
			return &RejectError[S]{From: current, Input: data}
		}

		index++
	}

	if m.hasPost && effector != nil {
		m.logger.Debug("dispatching post effect", "chars", index)
		effector.Dispatch(m.post, StreamData{
			Input:  input,
			Index:  index,
			Offset: len(input),
			Char:   EndOfStream,
		})
	}

	return nil
}

// Accepts reports whether the whole input is accepted. No effects are dispatched.
func (m *Machine[S, E]) Accepts(input string) bool {
	return m.Run(input, nil) == nil
}
