package mealy

import (
	"errors"
	"fmt"
)

// Definition holds the machine structure before building a Machine.
// It is the mutable half of the build-then-freeze lifecycle: Build copies the
// table, so the definition can keep being edited and built again.
type Definition[S comparable, E any] struct {
	table      Table[S, E]
	initial    S
	hasInitial bool
	post       E
	hasPost    bool
	merges     []map[StatesConnection[S]][]E
}

// NewDefinition creates a new machine definition builder
func NewDefinition[S comparable, E any]() *Definition[S, E] {
	return &Definition[S, E]{
		table: make(Table[S, E]),
	}
}

// State declares states. States with outgoing transitions are declared
// implicitly; State is needed for states that only appear as targets.
func (d *Definition[S, E]) State(ids ...S) *Definition[S, E] {
	for _, id := range ids {
		if _, ok := d.table[id]; !ok {
			d.table[id] = nil
		}
	}
	return d
}

// Transition appends a conditional transition to from's list
func (d *Definition[S, E]) Transition(from, to S, cond Predicate) *Definition[S, E] {
	return d.add(from, To[S, E](to, cond))
}

// TransitionWith appends a conditional transition carrying effect
func (d *Definition[S, E]) TransitionWith(from, to S, cond Predicate, effect E) *Definition[S, E] {
	return d.add(from, To[S, E](to, cond).With(effect))
}

// Fallback appends an unconditional transition. Declare it last for from.
func (d *Definition[S, E]) Fallback(from, to S) *Definition[S, E] {
	return d.add(from, Fallback[S, E](to))
}

// FallbackWith appends an unconditional transition carrying effect
func (d *Definition[S, E]) FallbackWith(from, to S, effect E) *Definition[S, E] {
	return d.add(from, Fallback[S, E](to).With(effect))
}

func (d *Definition[S, E]) add(from S, t Transition[S, E]) *Definition[S, E] {
	d.table[from] = append(d.table[from], t)
	return d
}

// Initial sets the initial state
func (d *Definition[S, E]) Initial(id S) *Definition[S, E] {
	d.initial = id
	d.hasInitial = true
	return d
}

// PostEffect sets the effect dispatched after a whole input is accepted
func (d *Definition[S, E]) PostEffect(effect E) *Definition[S, E] {
	d.post = effect
	d.hasPost = true
	return d
}

// MergeEffects records effects to merge into the table at Build time, in
// the order the calls were made.
func (d *Definition[S, E]) MergeEffects(effects map[StatesConnection[S]][]E) *Definition[S, E] {
	d.merges = append(d.merges, effects)
	return d
}

// Validate checks the definition for errors. Build does not require a valid
// table: dangling targets are only reported when a run reaches them.
func (d *Definition[S, E]) Validate() error {
	var errs []error

	if !d.hasInitial {
		errs = append(errs, fmt.Errorf("no initial state defined"))
	} else if !d.table.Has(d.initial) {
		errs = append(errs, fmt.Errorf("initial state: %w", &StateError[S]{State: d.initial}))
	}

	if err := d.table.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Build creates a frozen Machine from the definition. Post effect options
// passed here override PostEffect.
func (d *Definition[S, E]) Build(opts ...Option[E]) (*Machine[S, E], error) {
	if !d.hasInitial {
		return nil, fmt.Errorf("invalid definition: no initial state defined")
	}

	table := d.table.Clone()
	for _, effects := range d.merges {
		staged, err := stageEffects(table, effects)
		if err != nil {
			return nil, fmt.Errorf("invalid definition: %w", err)
		}
		for state, transitions := range staged {
			table[state] = transitions
		}
	}

	if d.hasPost {
		opts = append([]Option[E]{WithPostEffect(d.post)}, opts...)
	}

	m, err := New(d.initial, table, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	m.Freeze()
	return m, nil
}

// MustBuild is like Build but panics on error
func (d *Definition[S, E]) MustBuild(opts ...Option[E]) *Machine[S, E] {
	m, err := d.Build(opts...)
	if err != nil {
		panic(fmt.Sprintf("mealy: failed to build machine: %v", err))
	}
	return m
}
