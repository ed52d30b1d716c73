package mealy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/predicate"
)

func TestDefinition_Build(t *testing.T) {
	m, err := mealy.NewDefinition[string, string]().
		TransitionWith(stA, stB, predicate.IsLetter, "word").
		Fallback(stA, stA).
		Transition(stB, stB, predicate.IsLetter).
		FallbackWith(stB, stA, "end").
		PostEffect("post").
		Initial(stA).
		Build()
	require.NoError(t, err)

	assert.True(t, m.Frozen())
	assert.Equal(t, stA, m.Initial())
	assert.Equal(t, []string{"word", "end", "word", "post"}, runEffects(t, m, "ab cd"))
}

func TestDefinition_BuildWithoutInitial(t *testing.T) {
	_, err := mealy.NewDefinition[string, string]().
		Fallback(stA, stA).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no initial state")
}

func TestDefinition_BuildMissingInitial(t *testing.T) {
	_, err := mealy.NewDefinition[string, string]().
		Fallback(stA, stA).
		Initial(stGhost).
		Build()
	require.Error(t, err)
	assert.True(t, mealy.IsStateDoesNotExist(err))
	assert.Contains(t, err.Error(), "invalid definition")
}

func TestDefinition_StateDeclaresTerminal(t *testing.T) {
	m, err := mealy.NewDefinition[string, string]().
		Transition(stA, stB, predicate.IsDigit).
		State(stB).
		Initial(stA).
		Build()
	require.NoError(t, err)

	assert.True(t, m.Accepts("1"))
	assert.False(t, m.Accepts("12"))
}

func TestDefinition_MergeEffects(t *testing.T) {
	def := mealy.NewDefinition[string, string]().
		Transition(stA, stB, predicate.Is('1')).
		Transition(stA, stB, predicate.Is('2')).
		Fallback(stB, stA).
		Initial(stA).
		MergeEffects(map[conn][]string{{From: stA, To: stB}: {"one"}}).
		MergeEffects(map[conn][]string{{From: stA, To: stB}: {"uno", "dos"}})

	m, err := def.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"uno", "dos"}, runEffects(t, m, "1x2"))
}

func TestDefinition_MergeEffectsError(t *testing.T) {
	_, err := mealy.NewDefinition[string, string]().
		Fallback(stA, stA).
		Initial(stA).
		MergeEffects(map[conn][]string{{From: stA, To: stA}: {"x", "y"}}).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, mealy.ErrTooManyEffects)
}

func TestDefinition_BuildCopiesTable(t *testing.T) {
	def := mealy.NewDefinition[string, string]().
		Transition(stA, stA, predicate.IsDigit).
		Initial(stA)

	first := def.MustBuild()
	def.Fallback(stA, stA)
	second := def.MustBuild()

	assert.False(t, first.Accepts("1x"))
	assert.True(t, second.Accepts("1x"))
}

func TestDefinition_PostEffectOption(t *testing.T) {
	m, err := mealy.NewDefinition[string, string]().
		Fallback(stA, stA).
		PostEffect("definition").
		Initial(stA).
		Build(mealy.WithPostEffect("option"))
	require.NoError(t, err)

	post, ok := m.PostEffect()
	require.True(t, ok)
	assert.Equal(t, "option", post)
}

func TestDefinition_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		mealy.NewDefinition[string, string]().MustBuild()
	})
}

func TestDefinition_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := mealy.NewDefinition[string, string]().
			Transition(stA, stB, predicate.IsDigit).
			Fallback(stA, stA).
			State(stB).
			Initial(stA).
			Validate()
		assert.NoError(t, err)
	})

	t.Run("no initial", func(t *testing.T) {
		err := mealy.NewDefinition[string, string]().
			Fallback(stA, stA).
			Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no initial state")
	})

	t.Run("all problems reported", func(t *testing.T) {
		err := mealy.NewDefinition[string, string]().
			Fallback(stA, stA).
			Transition(stA, stGhost, predicate.IsDigit).
			Initial(stC).
			Validate()
		require.Error(t, err)

		assert.ErrorIs(t, err, mealy.ErrShadowedTransition)
		assert.ErrorIs(t, err, mealy.ErrStateDoesNotExist)
		assert.Contains(t, err.Error(), "initial state")
		assert.Contains(t, err.Error(), stGhost)
	})
}
