package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
)

func TestCaseSorterAssignsSequentialNumbers(t *testing.T) {
	pieceMap := scramble.DefaultMegaminx()
	criteria := []scramble.SortCriterion{{Kind: scramble.SortPermutationAt, Pieces: []string{"UC1"}}}
	sorter := scramble.NewCaseSorter(criteria, pieceMap)

	a := minx.New()
	b := minx.New()
	b.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})

	states := []scramble.GeneratedState{
		scramble.NewGeneratedState(b, "U"),
		scramble.NewGeneratedState(a, ""),
	}

	sorter.Sort(states)
	require.Equal(t, 1, states[0].CaseNumber)
	require.Equal(t, 2, states[1].CaseNumber)
}

func TestCaseSorterSetPriorityBreaksTies(t *testing.T) {
	pieceMap := scramble.DefaultMegaminx()
	criteria := []scramble.SortCriterion{{Kind: scramble.SortSetPriority, Pieces: []string{"UC2", "UC1"}}}
	sorter := scramble.NewCaseSorter(criteria, pieceMap)

	states := []scramble.GeneratedState{
		scramble.NewGeneratedState(minx.New(), "b"),
		scramble.NewGeneratedState(minx.New(), "a"),
	}
	sorter.Sort(states)
	require.Equal(t, "a", states[0].SetupMoves)
}
