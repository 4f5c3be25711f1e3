package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/scramble"
)

func TestCompileSimpleSeries(t *testing.T) {
	cfg := scramble.Config{Scramble: "[R, U, F]"}
	states, handler, err := scramble.Compile(cfg, nil, nil)
	require.NoError(t, err)
	require.Nil(t, handler)
	require.Len(t, states, 3)
	for i, s := range states {
		require.Equal(t, i+1, s.CaseNumber)
	}
}

func TestCompileEmptyScramble(t *testing.T) {
	states, handler, err := scramble.Compile(scramble.Config{Scramble: "  "}, nil, nil)
	require.NoError(t, err)
	require.Nil(t, handler)
	require.Nil(t, states)
}

func TestCompileWithEquivalenceReturnsHandler(t *testing.T) {
	cfg := scramble.Config{
		Scramble:     "<U>",
		Equivalences: []scramble.EquivalenceSet{{Pieces: []string{"UC1", "UC2"}}},
	}
	_, handler, err := scramble.Compile(cfg, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, handler)
}

func TestCompileWithSortCriteria(t *testing.T) {
	cfg := scramble.Config{
		Scramble:     "[R, U]",
		SortCriteria: []scramble.SortCriterion{{Kind: scramble.SortPermutationAt, Pieces: []string{"UC1"}}},
	}
	states, _, err := scramble.Compile(cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, states, 2)
}
