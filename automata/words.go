// Package automata contains ready-made machines built on mealy: a float
// validator and a words-and-numbers tokenizer with two effectors.
package automata

import (
	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/predicate"
)

// WordState is a state of the words-and-numbers tokenizer
type WordState int

const (
	WordInit WordState = iota
	Word
	NumberInteger
	NumberFraction
)

func (s WordState) String() string {
	switch s {
	case WordInit:
		return "init"
	case Word:
		return "word"
	case NumberInteger:
		return "number_integer"
	case NumberFraction:
		return "number_fraction"
	default:
		return "unknown"
	}
}

// Conn is shorthand for a StatesConnection of the tokenizer
func Conn(from, to WordState) mealy.StatesConnection[WordState] {
	return mealy.StatesConnection[WordState]{From: from, To: to}
}

// WordsAndNumbersTable returns the effect-free topology of the tokenizer.
// Letters form words, digits form numbers with an optional fraction part,
// everything else falls back to init. Each call returns a fresh table.
func WordsAndNumbersTable[E any]() mealy.Table[WordState, E] {
	dot := predicate.Is('.')

	return mealy.Table[WordState, E]{
		WordInit: {
			mealy.To[WordState, E](Word, predicate.IsLetter),
			mealy.To[WordState, E](NumberInteger, predicate.IsDigit),
			mealy.Fallback[WordState, E](WordInit),
		},
		Word: {
			mealy.To[WordState, E](Word, predicate.IsLetter),
			mealy.To[WordState, E](NumberInteger, predicate.IsDigit),
			mealy.Fallback[WordState, E](WordInit),
		},
		NumberInteger: {
			mealy.To[WordState, E](Word, predicate.IsLetter),
			mealy.To[WordState, E](NumberInteger, predicate.IsDigit),
			mealy.To[WordState, E](NumberFraction, dot),
			mealy.Fallback[WordState, E](WordInit),
		},
		NumberFraction: {
			mealy.To[WordState, E](Word, predicate.IsLetter),
			mealy.To[WordState, E](NumberFraction, predicate.IsDigit),
			mealy.Fallback[WordState, E](WordInit),
		},
	}
}

// WordsAndNumbers builds a frozen tokenizer with effects merged onto the
// shared topology. A nil effects map yields a pure validator.
func WordsAndNumbers[E any](effects map[mealy.StatesConnection[WordState]][]E, opts ...mealy.Option[E]) (*mealy.Machine[WordState, E], error) {
	m, err := mealy.New(WordInit, WordsAndNumbersTable[E](), opts...)
	if err != nil {
		return nil, err
	}

	if effects != nil {
		if err := m.MergeEffects(effects); err != nil {
			return nil, err
		}
	}

	m.Freeze()
	return m, nil
}
