package automata

import (
	"fmt"
	"strings"

	"github.com/librescoot/mealy"
)

// SplitOp is a single operation on a Splitter
type SplitOp int

const (
	OpNone SplitOp = iota
	OpPushWord
	OpAcceptWord
	OpPushIntegerDigit
	OpPushFractionDigit
	OpAcceptNumber
	OpCleanup
)

// SplitEffect runs Op, then Then unless it is OpNone
type SplitEffect struct {
	Op   SplitOp
	Then SplitOp
}

// Do returns an effect running a single op
func Do(op SplitOp) SplitEffect {
	return SplitEffect{Op: op}
}

// DoThen returns an effect running op and then next
func DoThen(op, next SplitOp) SplitEffect {
	return SplitEffect{Op: op, Then: next}
}

// Splitter collects words and sums numbers while a tokenizer runs over text.
// State accumulates across runs until Reset.
type Splitter struct {
	words []string
	sum   float64

	word      strings.Builder
	number    float64
	precision float64

	err error
}

// NewSplitter returns an empty Splitter
func NewSplitter() *Splitter {
	return &Splitter{precision: 0.1}
}

// Words returns the words collected so far
func (s *Splitter) Words() []string {
	return s.words
}

// Sum returns the sum of the numbers collected so far
func (s *Splitter) Sum() float64 {
	return s.sum
}

// Err returns the first invalid digit push, if any
func (s *Splitter) Err() error {
	return s.err
}

// Reset clears collected words, the sum, buffers and the error
func (s *Splitter) Reset() {
	*s = Splitter{precision: 0.1}
}

// Dispatch applies the effect's operations in order
func (s *Splitter) Dispatch(effect SplitEffect, data mealy.StreamData) {
	s.apply(effect.Op, data)
	if effect.Then != OpNone {
		s.apply(effect.Then, data)
	}
}

func (s *Splitter) apply(op SplitOp, data mealy.StreamData) {
	switch op {
	case OpPushWord:
		s.word.WriteRune(data.Char)
	case OpAcceptWord:
		s.acceptWord()
	case OpPushIntegerDigit:
		if d, ok := s.digit(data); ok {
			s.number = s.number*10 + d
		}
	case OpPushFractionDigit:
		if d, ok := s.digit(data); ok {
			s.number += d * s.precision
			s.precision /= 10
		}
	case OpAcceptNumber:
		s.acceptNumber()
	case OpCleanup:
		if s.word.Len() > 0 {
			s.acceptWord()
		}
		s.acceptNumber()
	}
}

func (s *Splitter) digit(data mealy.StreamData) (float64, bool) {
	if data.Char < '0' || data.Char > '9' {
		if s.err == nil {
			s.err = fmt.Errorf("character %q at index %d is not a digit", data.Char, data.Index)
		}
		return 0, false
	}
	return float64(data.Char - '0'), true
}

func (s *Splitter) acceptWord() {
	s.words = append(s.words, s.word.String())
	s.word.Reset()
}

func (s *Splitter) acceptNumber() {
	s.sum += s.number
	s.number = 0
	s.precision = 0.1
}

// SplitterEffects maps every edge of the tokenizer to Splitter operations.
// Buffers still open at the end of input are flushed by an OpCleanup post effect.
func SplitterEffects() map[mealy.StatesConnection[WordState]][]SplitEffect {
	return map[mealy.StatesConnection[WordState]][]SplitEffect{
		Conn(WordInit, Word):                 {Do(OpPushWord)},
		Conn(WordInit, NumberInteger):        {Do(OpPushIntegerDigit)},
		Conn(Word, Word):                     {Do(OpPushWord)},
		Conn(Word, NumberInteger):            {DoThen(OpAcceptWord, OpPushIntegerDigit)},
		Conn(Word, WordInit):                 {Do(OpAcceptWord)},
		Conn(NumberInteger, Word):            {DoThen(OpAcceptNumber, OpPushWord)},
		Conn(NumberInteger, NumberInteger):   {Do(OpPushIntegerDigit)},
		Conn(NumberInteger, WordInit):        {Do(OpAcceptNumber)},
		Conn(NumberFraction, Word):           {DoThen(OpAcceptNumber, OpPushWord)},
		Conn(NumberFraction, NumberFraction): {Do(OpPushFractionDigit)},
		Conn(NumberFraction, WordInit):       {Do(OpAcceptNumber)},
	}
}

// NewSplittingMachine returns the tokenizer wired to SplitterEffects
func NewSplittingMachine(opts ...mealy.Option[SplitEffect]) (*mealy.Machine[WordState, SplitEffect], error) {
	opts = append([]mealy.Option[SplitEffect]{mealy.WithPostEffect(Do(OpCleanup))}, opts...)
	return WordsAndNumbers(SplitterEffects(), opts...)
}
