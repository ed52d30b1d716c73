package mealy

// Transition is an edge to a target state, guarded by an optional condition
// and carrying an optional effect. The source state is implicit: it is the
// table key owning the transition.
type Transition[S comparable, E any] struct {
	To        S         // Target state
	Condition Predicate // Optional: nil matches every character
	Effect    E         // Effect dispatched when the edge is taken
	HasEffect bool      // Whether Effect is set
}

// To creates a conditional transition without an effect
func To[S comparable, E any](to S, cond Predicate) Transition[S, E] {
	return Transition[S, E]{To: to, Condition: cond}
}

// Fallback creates an unconditional transition. It consumes the character
// like any other edge and must be the last entry of its state's list,
// otherwise it shadows the siblings declared after it.
func Fallback[S comparable, E any](to S) Transition[S, E] {
	return Transition[S, E]{To: to}
}

// With returns a copy of the transition carrying effect
func (t Transition[S, E]) With(effect E) Transition[S, E] {
	t.Effect = effect
	t.HasEffect = true
	return t
}

// Unconditional reports whether the transition has no condition
func (t Transition[S, E]) Unconditional() bool {
	return t.Condition == nil
}

// Evaluate matches ch against the transition. It returns the target state
// and true when the edge accepts ch.
func (t Transition[S, E]) Evaluate(ch rune) (S, bool) {
	if t.Condition != nil && !t.Condition(ch) {
		var zero S
		return zero, false
	}
	return t.To, true
}

// EffectValue returns the effect carried by the transition, if any
func (t Transition[S, E]) EffectValue() (E, bool) {
	return t.Effect, t.HasEffect
}
