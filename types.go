package mealy

import "log/slog"

// Predicate validates a single input character. Predicates must be pure:
// any accumulation belongs in an Effector.
type Predicate func(ch rune) bool

// EndOfStream is the character reported to the post effect
const EndOfStream rune = 0

// StreamData is the positional context handed to an Effector on every dispatch
type StreamData struct {
	Input  string // Full input string being run
	Index  int    // Zero-based character (rune) index
	Offset int    // Byte offset of the character within Input
	Char   rune   // Current character, EndOfStream for the post effect
}

// Effector receives effects dispatched by a running Machine and mutates
// caller-owned data accordingly.
type Effector[E any] interface {
	Dispatch(effect E, data StreamData)
}

// EffectorFunc adapts a plain function to the Effector interface
type EffectorFunc[E any] func(effect E, data StreamData)

// Dispatch calls f(effect, data)
func (f EffectorFunc[E]) Dispatch(effect E, data StreamData) {
	f(effect, data)
}

// StatesConnection names a (from, to) pair of states. It is only a lookup
// key for bulk effect assignment, not an edge of the graph.
type StatesConnection[S comparable] struct {
	From S
	To   S
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
