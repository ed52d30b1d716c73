package automata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/automata"
)

func TestCounter(t *testing.T) {
	m, err := automata.NewCountingMachine()
	require.NoError(t, err)
	assert.True(t, m.Frozen())

	tests := []struct {
		input   string
		words   int
		numbers int
	}{
		{"the123fox jumps,,,,", 3, 1},
		{"!@#..,.?", 0, 0},
		{"Add 1.5 pinches of salt and 2 cups of water!", 8, 2},
		{"", 0, 0},
		{"3.14.15", 0, 2},
		{"12ab34.5cd", 2, 2},
	}

	var counter automata.Counter
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			counter.Reset()
			require.NoError(t, m.Run(tt.input, &counter))
			assert.Equal(t, tt.words, counter.Words, "words")
			assert.Equal(t, tt.numbers, counter.Numbers, "numbers")
		})
	}
}

func TestCounter_AccumulatesWithoutReset(t *testing.T) {
	m, err := automata.NewCountingMachine()
	require.NoError(t, err)

	var counter automata.Counter
	require.NoError(t, m.Run("one 2", &counter))
	require.NoError(t, m.Run("three 4", &counter))

	assert.Equal(t, 2, counter.Words)
	assert.Equal(t, 2, counter.Numbers)
}

func TestWordsAndNumbers_SharedTopology(t *testing.T) {
	plain, err := automata.WordsAndNumbers[automata.CounterEffect](nil)
	require.NoError(t, err)
	assert.NoError(t, plain.Table().Validate())

	var counter automata.Counter
	require.NoError(t, plain.Run("words 123", &counter))
	assert.Zero(t, counter.Words)
	assert.Zero(t, counter.Numbers)

	// Every input is accepted: each state falls back to init.
	assert.True(t, plain.Accepts("\x00☃ é \xff"))
}

func TestWordsAndNumbers_InvalidEffects(t *testing.T) {
	_, err := automata.WordsAndNumbers(map[mealy.StatesConnection[automata.WordState]][]automata.CounterEffect{
		automata.Conn(automata.WordInit, automata.NumberFraction): {automata.IncrementNumberCount},
	})
	assert.ErrorIs(t, err, mealy.ErrTransitionDoesNotExist)
}
