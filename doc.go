// Package mealy implements a deterministic Mealy machine over characters.
//
// A Machine reads its input one rune at a time. Each state owns an ordered
// list of transitions; the first one whose predicate accepts the character
// is taken, and its effect, if any, is handed to a caller supplied Effector
// together with the position in the input. A whole input is accepted when
// every character finds a transition, after which an optional post effect
// is dispatched once.
//
// Topology and effects are separate concerns. A Table can be authored
// without effects and reused: MergeEffects attaches effects to existing
// edges by (from, to) pair, and WithEffects does the same on a copy.
//
// Basic usage:
//
//	m := mealy.NewDefinition[State, Effect]().
//		TransitionWith(Init, Word, predicate.IsLetter, StartWord).
//		Fallback(Init, Init).
//		Transition(Word, Word, predicate.IsLetter).
//		FallbackWith(Word, Init, EndWord).
//		Initial(Init).
//		MustBuild()
//
//	err := m.Run("hello world", effector)
//
// A built machine is frozen and may be shared by concurrent Run calls, each
// with its own Effector. Machines created with New stay mutable until Freeze.
package mealy
