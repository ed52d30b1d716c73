package automata

import (
	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/predicate"
)

// FloatState is a state of the float validator
type FloatState int

const (
	FloatInit FloatState = iota
	FloatSign
	FloatZero
	FloatInteger
	FloatFraction
)

func (s FloatState) String() string {
	switch s {
	case FloatInit:
		return "init"
	case FloatSign:
		return "sign"
	case FloatZero:
		return "zero"
	case FloatInteger:
		return "integer_part"
	case FloatFraction:
		return "fraction_part"
	default:
		return "unknown"
	}
}

// NoEffect is the effect type of automata that only validate
type NoEffect struct{}

// Float returns a frozen machine accepting optionally signed decimal numbers
// with an optional fraction part: "0", "-12", "+0.5", "12345.9876".
// A leading zero must be followed directly by the fraction point.
//
//	init --[+-]--> sign
//	init, sign --[1-9]--> integer_part --[0-9]--> integer_part
//	init, sign --[0]--> zero
//	integer_part, zero --[.]--> fraction_part --[0-9]--> fraction_part
//
// There are no accepting states: every input consumed without rejection is
// accepted, including prefixes such as "-" and "12.".
func Float() *mealy.Machine[FloatState, NoEffect] {
	return mealy.NewDefinition[FloatState, NoEffect]().
		Transition(FloatInit, FloatSign, predicate.IsSign).
		Transition(FloatInit, FloatInteger, predicate.IsNonZeroDigit).
		Transition(FloatInit, FloatZero, predicate.Is('0')).
		Transition(FloatSign, FloatInteger, predicate.IsNonZeroDigit).
		Transition(FloatSign, FloatZero, predicate.Is('0')).
		Transition(FloatInteger, FloatInteger, predicate.IsDigit).
		Transition(FloatInteger, FloatFraction, predicate.Is('.')).
		Transition(FloatFraction, FloatFraction, predicate.IsDigit).
		Transition(FloatZero, FloatFraction, predicate.Is('.')).
		Initial(FloatInit).
		MustBuild()
}
