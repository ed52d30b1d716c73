// Package predicate provides reusable character predicates for building
// transition tables. Every predicate is a pure func(rune) bool.
package predicate

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/librescoot/mealy"
)

// IsLetter matches ASCII letters a-z and A-Z
func IsLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// IsDigit matches ASCII digits 0-9
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsNonZeroDigit matches ASCII digits 1-9
func IsNonZeroDigit(ch rune) bool {
	return '1' <= ch && ch <= '9'
}

// IsSign matches '+' and '-'
func IsSign(ch rune) bool {
	return ch == '+' || ch == '-'
}

// Any matches every character. Prefer an unconditional transition
// (mealy.Fallback) where the edge is meant as a fallback.
func Any(rune) bool {
	return true
}

// Is matches exactly r
func Is(r rune) mealy.Predicate {
	return func(ch rune) bool {
		return ch == r
	}
}

// Range matches characters in the inclusive range [lo, hi]
func Range(lo, hi rune) mealy.Predicate {
	return func(ch rune) bool {
		return lo <= ch && ch <= hi
	}
}

// OneOf matches any of the given characters
func OneOf(chars ...rune) mealy.Predicate {
	table := rangetable.New(chars...)
	return func(ch rune) bool {
		return unicode.Is(table, ch)
	}
}

// InTables matches characters belonging to any of the Unicode range tables,
// e.g. InTables(unicode.Letter, unicode.Mark). The tables are merged once.
func InTables(tables ...*unicode.RangeTable) mealy.Predicate {
	table := rangetable.Merge(tables...)
	return func(ch rune) bool {
		return unicode.Is(table, ch)
	}
}

// Not inverts p
func Not(p mealy.Predicate) mealy.Predicate {
	return func(ch rune) bool {
		return !p(ch)
	}
}

// And matches when all predicates match
func And(ps ...mealy.Predicate) mealy.Predicate {
	return func(ch rune) bool {
		for _, p := range ps {
			if !p(ch) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one predicate matches
func Or(ps ...mealy.Predicate) mealy.Predicate {
	return func(ch rune) bool {
		for _, p := range ps {
			if p(ch) {
				return true
			}
		}
		return false
	}
}
