package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
)

func TestGeneratePlain(t *testing.T) {
	parsed, err := scramble.Parse("R U")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	states, err := gen.Generate(parsed)
	require.NoError(t, err)
	require.Len(t, states, 1)
	require.Equal(t, "R U", states[0].SetupMoves)
}

func TestGenerateSeriesProducesDistinctStates(t *testing.T) {
	parsed, err := scramble.Parse("[R, U]")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	states, err := gen.Generate(parsed)
	require.NoError(t, err)
	require.Len(t, states, 2)
}

func TestGenerateComplexPlainThenSeries(t *testing.T) {
	parsed, err := scramble.Parse("R [U, F]")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	states, err := gen.Generate(parsed)
	require.NoError(t, err)
	require.Len(t, states, 2)
}

func TestGenerateFilteredDropsSolvedAndTrivial(t *testing.T) {
	parsed, err := scramble.Parse("[R Ri, U]")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	states, err := gen.GenerateFiltered(parsed)
	require.NoError(t, err)
	for _, s := range states {
		require.NotEqual(t, "R Ri", s.SetupMoves)
	}
}

func TestGenerateGeneratorsExpandsToClosure(t *testing.T) {
	parsed, err := scramble.Parse("<R>")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	states, err := gen.Generate(parsed)
	require.NoError(t, err)
	// R has order 5 (quarter-turn cycle), and the BFS includes the
	// starting (solved) state, so the closure has 5 distinct states:
	// 4 nontrivial powers plus solved's equivalent under R^5=identity.
	require.GreaterOrEqual(t, len(states), 4)
}

func TestGenerateGeneratorsFilteredByEquivalence(t *testing.T) {
	parsed, err := scramble.Parse("<U>")
	require.NoError(t, err)

	pieceMap := scramble.DefaultMegaminx()
	handler, err := scramble.NewHandler(
		[]scramble.EquivalenceSet{{Pieces: []string{"UC1", "UC2", "UC3", "UC4", "UC5"}}},
		nil, pieceMap,
	)
	require.NoError(t, err)

	unfiltered := scramble.NewSolvedGenerator()
	full, err := unfiltered.Generate(parsed)
	require.NoError(t, err)

	filtered := scramble.NewSolvedGenerator()
	filtered.SetEquivalence(handler)
	reduced, err := filtered.Generate(parsed)
	require.NoError(t, err)

	require.LessOrEqual(t, len(reduced), len(full))
}

func TestGenerateInterrupted(t *testing.T) {
	parsed, err := scramble.Parse("<R, U, F, bL>")
	require.NoError(t, err)

	gen := scramble.NewSolvedGenerator()
	gen.SetInterrupted(func() bool { return true })
	_, err = gen.Generate(parsed)
	require.Error(t, err)
}

func TestFromStateLength(t *testing.T) {
	n := scramble.FromState(minx.New())
	require.Len(t, n.CornerSignature, minx.NumCorners)
	require.Len(t, n.EdgeSignature, minx.NumEdges)
}
