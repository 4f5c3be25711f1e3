package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/searchmode"
	"github.com/katalvlaran/llminxsolver/solver"
)

func TestNewDefaults(t *testing.T) {
	s := solver.New()
	require.Equal(t, searchmode.RU, s.Mode())
	require.Equal(t, searchmode.MetricFifth, s.Metric())
	require.Equal(t, 12, s.MaxDepth())
}

func TestSolveScrambledRUTurnsUpSolution(t *testing.T) {
	start := minx.New()
	start.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	start.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})
	start.ClearMoves()

	s := solver.WithConfig(searchmode.RU, 4)
	s.SetLimitDepth(true)
	s.SetStart(start)

	solutions := s.Solve()
	require.NotEmpty(t, solutions)
}

// An already-solved start never produces a solution: the outer depth
// loop starts at depth 1 and the root always backtracks immediately
// (state.Depth() == 0), so levelsLeft never reaches 0 at the root.
// This matches solver.rs's identical structure; Solve is meant to be
// called on a scrambled state, not a solved one.
func TestSolveAlreadySolvedProducesNoSolutionAndFinishes(t *testing.T) {
	s := solver.WithConfig(searchmode.RU, 3)
	s.SetLimitDepth(true)
	s.SetStart(minx.New())

	var gotFinish bool
	s.SetStatusCallback(func(ev solver.StatusEvent) {
		if ev.EventType == solver.FinishSearch {
			gotFinish = true
		}
	})

	solutions := s.Solve()
	require.Empty(t, solutions)
	require.True(t, gotFinish)
}

func TestInterruptStopsSearchEarly(t *testing.T) {
	s := solver.WithConfig(searchmode.RUFLbL, 20)
	s.SetLimitDepth(true)

	var gotFinish bool
	s.SetStatusCallback(func(ev solver.StatusEvent) {
		if ev.EventType == solver.StartSearch {
			s.Interrupt()
		}
		if ev.EventType == solver.FinishSearch {
			gotFinish = true
		}
	})

	_ = s.Solve()
	require.True(t, gotFinish)
}

func TestSolveRebuildsTablesOnModeChange(t *testing.T) {
	s := solver.WithConfig(searchmode.RU, 2)
	s.SetLimitDepth(true)
	_ = s.Solve()

	s.SetMode(searchmode.RUF)
	_ = s.Solve() // must not panic on index out of range from stale tables
}
