package mealy_test

import (
	"github.com/librescoot/mealy"
)

// Test states
const (
	stA     = "a"
	stB     = "b"
	stC     = "c"
	stGhost = "ghost"
)

type dispatch struct {
	effect string
	data   mealy.StreamData
}

// recorder is an Effector remembering every dispatch
type recorder struct {
	calls []dispatch
}

func (r *recorder) Dispatch(effect string, data mealy.StreamData) {
	r.calls = append(r.calls, dispatch{effect: effect, data: data})
}

func (r *recorder) effects() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.effect)
	}
	return out
}

func (r *recorder) last() dispatch {
	return r.calls[len(r.calls)-1]
}

func to(target string, cond mealy.Predicate) mealy.Transition[string, string] {
	return mealy.To[string, string](target, cond)
}

func fallback(target string) mealy.Transition[string, string] {
	return mealy.Fallback[string, string](target)
}
