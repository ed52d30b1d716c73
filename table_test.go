package mealy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/predicate"
)

func TestTransition_Evaluate(t *testing.T) {
	digit := to(stB, predicate.IsDigit)

	next, ok := digit.Evaluate('7')
	assert.True(t, ok)
	assert.Equal(t, stB, next)

	next, ok = digit.Evaluate('x')
	assert.False(t, ok)
	assert.Empty(t, next)

	fb := fallback(stC)
	assert.True(t, fb.Unconditional())
	next, ok = fb.Evaluate('x')
	assert.True(t, ok)
	assert.Equal(t, stC, next)
}

func TestTransition_With(t *testing.T) {
	plain := to(stB, predicate.IsDigit)
	withEffect := plain.With("digit")

	_, ok := plain.EffectValue()
	assert.False(t, ok)

	effect, ok := withEffect.EffectValue()
	assert.True(t, ok)
	assert.Equal(t, "digit", effect)
	assert.False(t, withEffect.Unconditional())
}

func TestTable_Has(t *testing.T) {
	table := mealy.Table[string, string]{stA: nil}

	assert.True(t, table.Has(stA))
	assert.False(t, table.Has(stB))
}

func TestTable_Clone(t *testing.T) {
	table := mealy.Table[string, string]{
		stA: {to(stB, predicate.IsDigit)},
		stB: nil,
	}

	clone := table.Clone()
	clone[stA][0] = clone[stA][0].With("changed")
	clone[stA] = append(clone[stA], fallback(stA))
	delete(clone, stB)

	require.Len(t, table[stA], 1)
	_, ok := table[stA][0].EffectValue()
	assert.False(t, ok)
	assert.True(t, table.Has(stB))
}

func TestTable_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table := mealy.Table[string, string]{
			stA: {to(stB, predicate.IsDigit), fallback(stA)},
			stB: nil,
		}
		assert.NoError(t, table.Validate())
	})

	t.Run("dangling target", func(t *testing.T) {
		table := mealy.Table[string, string]{
			stA: {to(stGhost, predicate.IsDigit)},
		}
		err := table.Validate()
		assert.ErrorIs(t, err, mealy.ErrStateDoesNotExist)

		var stateErr *mealy.StateError[string]
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, stGhost, stateErr.State)
	})

	t.Run("shadowed transition", func(t *testing.T) {
		table := mealy.Table[string, string]{
			stA: {fallback(stA), to(stA, predicate.IsDigit)},
		}
		err := table.Validate()
		assert.ErrorIs(t, err, mealy.ErrShadowedTransition)
		assert.NotErrorIs(t, err, mealy.ErrStateDoesNotExist)
	})
}
