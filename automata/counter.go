package automata

import "github.com/librescoot/mealy"

// CounterEffect is an effect understood by Counter
type CounterEffect int

const (
	IncrementWordCount CounterEffect = iota
	IncrementNumberCount
)

// Counter counts words and numbers. It is not reset between runs.
type Counter struct {
	Words   int
	Numbers int
}

// Dispatch applies effect
func (c *Counter) Dispatch(effect CounterEffect, _ mealy.StreamData) {
	switch effect {
	case IncrementWordCount:
		c.Words++
	case IncrementNumberCount:
		c.Numbers++
	}
}

// Reset clears both counts
func (c *Counter) Reset() {
	c.Words = 0
	c.Numbers = 0
}

// CounterEffects counts a word on every entry into Word from another state
// and a number on every entry into NumberInteger from another state.
func CounterEffects() map[mealy.StatesConnection[WordState]][]CounterEffect {
	return map[mealy.StatesConnection[WordState]][]CounterEffect{
		Conn(WordInit, Word):          {IncrementWordCount},
		Conn(WordInit, NumberInteger): {IncrementNumberCount},
		Conn(Word, NumberInteger):     {IncrementNumberCount},
		Conn(NumberInteger, Word):     {IncrementWordCount},
		Conn(NumberFraction, Word):    {IncrementWordCount},
	}
}

// NewCountingMachine returns the tokenizer wired to CounterEffects
func NewCountingMachine(opts ...mealy.Option[CounterEffect]) (*mealy.Machine[WordState, CounterEffect], error) {
	return WordsAndNumbers(CounterEffects(), opts...)
}
