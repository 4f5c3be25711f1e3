package batch_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/batch"
	"github.com/katalvlaran/llminxsolver/memoryconfig"
	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
	"github.com/katalvlaran/llminxsolver/searchmode"
)

func smallConfig() batch.Config {
	cfg := batch.DefaultConfig()
	cfg.Mode = searchmode.RU
	cfg.PruningDepth = 4
	cfg.MaxSearchDepth = 3
	cfg.MemoryConfig = memoryconfig.New(512, 2, 2)
	return cfg
}

// scrambledByOneMove returns a state one R turn away from solved, with
// its move history cleared so a solver sees it as a fresh 1-move case.
func scrambledByOneMove() *minx.State {
	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ClearMoves()
	return s
}

func TestSolveEmptyStatesReturnsEmptyResults(t *testing.T) {
	results := batch.Solve(nil, smallConfig(), nil, nil, nil, nil)
	require.Equal(t, 0, results.TotalCases)
}

func TestSolveSingleCaseFindsSolution(t *testing.T) {
	states := []scramble.GeneratedState{scramble.NewGeneratedState(scrambledByOneMove(), "R")}
	states[0].CaseNumber = 1

	results := batch.Solve(states, smallConfig(), nil, nil, nil, nil)
	require.Equal(t, 1, results.TotalCases)
	require.Equal(t, 1, results.SolvedCases)
	require.Len(t, results.CaseResults, 1)
	require.True(t, results.CaseResults[0].IsSolved())
}

func TestSolveMultipleCasesFiresCaseSolvedCallback(t *testing.T) {
	states := []scramble.GeneratedState{
		scramble.NewGeneratedState(scrambledByOneMove(), "R"),
		scramble.NewGeneratedState(scrambledByOneMove(), "R"),
	}
	states[0].CaseNumber = 1
	states[1].CaseNumber = 2

	var mu sync.Mutex
	var notifiedCases []int

	results := batch.Solve(states, smallConfig(), nil, nil, nil, func(r batch.CaseResult) {
		mu.Lock()
		notifiedCases = append(notifiedCases, r.CaseNumber)
		mu.Unlock()
	})

	require.Equal(t, 2, results.TotalCases)
	require.Equal(t, 2, results.SolvedCases)
	mu.Lock()
	require.ElementsMatch(t, []int{1, 2}, notifiedCases)
	mu.Unlock()
}

func TestSolveStopAfterFirstStillReportsASolution(t *testing.T) {
	cfg := smallConfig()
	cfg.StopAfterFirst = true

	states := []scramble.GeneratedState{scramble.NewGeneratedState(scrambledByOneMove(), "R")}
	states[0].CaseNumber = 1

	results := batch.Solve(states, cfg, nil, nil, nil, nil)
	require.Len(t, results.CaseResults, 1)
	require.NotEmpty(t, results.CaseResults[0].Solutions)
}

func TestSolveRespectsInterruptFlag(t *testing.T) {
	var interrupted atomic.Bool
	interrupted.Store(true)

	states := []scramble.GeneratedState{scramble.NewGeneratedState(scrambledByOneMove(), "R")}
	states[0].CaseNumber = 1

	results := batch.Solve(states, smallConfig(), nil, &interrupted, nil, nil)
	require.Equal(t, 1, results.TotalCases)
	require.Empty(t, results.CaseResults[0].Solutions)
}

func TestSolveWithAmpleBudgetSolvesAllCases(t *testing.T) {
	cfg := smallConfig()
	cfg.MemoryConfig = memoryconfig.New(4096, 4, 4)

	states := make([]scramble.GeneratedState, 2)
	for i := range states {
		states[i] = scramble.NewGeneratedState(scrambledByOneMove(), "R")
		states[i].CaseNumber = i + 1
	}

	results := batch.Solve(states, cfg, nil, nil, nil, nil)
	require.Equal(t, 2, results.TotalCases)
	require.Equal(t, 2, results.SolvedCases)
}
