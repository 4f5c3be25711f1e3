package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/batch"
	"github.com/katalvlaran/llminxsolver/memoryconfig"
	"github.com/katalvlaran/llminxsolver/searchmode"
)

func smallMultiModeConfig(modes ...searchmode.Mode) batch.MultiModeConfig {
	cfg := batch.DefaultMultiModeConfig()
	cfg.Modes = modes
	cfg.MaxSearchDepth = 3
	cfg.LimitDepth = true
	cfg.MemoryConfig = memoryconfig.New(512, 2, 2)
	return cfg
}

func TestSolveMultiModeSingleModeReturnsSolutions(t *testing.T) {
	cfg := smallMultiModeConfig(searchmode.RU)
	solutions := batch.SolveMultiMode(scrambledByOneMove(), cfg, nil, nil)
	require.NotEmpty(t, solutions)
}

func TestSolveMultiModeMultipleModesReturnsNilButFiresEvents(t *testing.T) {
	cfg := smallMultiModeConfig(searchmode.RU, searchmode.RUbL)

	var gotSolution bool
	var modeNames = map[string]bool{}
	solutions := batch.SolveMultiMode(scrambledByOneMove(), cfg, nil, func(ev batch.StatusEvent) {
		if ev.EventType == batch.SolutionFound {
			gotSolution = true
		}
		if ev.ModeName != "" {
			modeNames[ev.ModeName] = true
		}
	})

	require.Nil(t, solutions)
	require.True(t, gotSolution)
	require.Contains(t, modeNames, "RU")
	require.Contains(t, modeNames, "RUbL")
}

func TestDefaultMultiModeConfigDefaultsToRU(t *testing.T) {
	cfg := batch.DefaultMultiModeConfig()
	require.Equal(t, []searchmode.Mode{searchmode.RU}, cfg.Modes)
}
