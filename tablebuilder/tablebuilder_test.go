package tablebuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/pruner"
	"github.com/katalvlaran/llminxsolver/tablebuilder"
)

func ruMoves() []minx.Move {
	var moves []minx.Move
	for _, f := range []minx.Family{minx.FamilyR, minx.FamilyU} {
		moves = append(moves,
			minx.Move{Family: f, Power: minx.Quarter},
			minx.Move{Family: f, Power: minx.Inverse},
			minx.Move{Family: f, Power: minx.Double},
			minx.Move{Family: f, Power: minx.DoubleInverse},
		)
	}
	return moves
}

func TestBuildSolvedCoordinateIsZero(t *testing.T) {
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})
	table := tablebuilder.Build(p, ruMoves(), nil, nil)

	require.Len(t, table, p.TableSize())
	require.EqualValues(t, 0, table[p.Coordinate(minx.New())])
}

func TestBuildEveryEntryReachableOrUnreached(t *testing.T) {
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})
	table := tablebuilder.Build(p, ruMoves(), nil, nil)

	for _, d := range table {
		require.True(t, d == tablebuilder.Unreached || int(d) < len(table))
	}
}

func TestBuildInterruptedStopsImmediately(t *testing.T) {
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})
	alwaysInterrupted := func() bool { return true }
	table := tablebuilder.Build(p, ruMoves(), alwaysInterrupted, nil)

	require.EqualValues(t, 0, table[p.Coordinate(minx.New())])
	unreachedCount := 0
	for _, d := range table {
		if d == tablebuilder.Unreached {
			unreachedCount++
		}
	}
	require.Equal(t, len(table)-1, unreachedCount)
}

func TestBuildProgressCallbackFires(t *testing.T) {
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})
	calls := 0
	tablebuilder.Build(p, ruMoves(), nil, func(depth byte, layerCount, nodes, tableSize int) {
		calls++
		require.LessOrEqual(t, nodes, tableSize)
	})
	require.Greater(t, calls, 0)
}
