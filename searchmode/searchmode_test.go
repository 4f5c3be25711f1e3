package searchmode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/searchmode"
)

func TestPossibleMovesSizes(t *testing.T) {
	cases := map[searchmode.Mode]int{
		searchmode.RU:     8,
		searchmode.RUF:    12,
		searchmode.RUL:    12,
		searchmode.RUFL:   16,
		searchmode.RUFLbL: 20,
		searchmode.RUbL:   12,
		searchmode.RUbR:   12,
		searchmode.RUD:    12,
	}
	for mode, want := range cases {
		moves := searchmode.PossibleMoves(mode)
		require.Len(t, moves, want, "mode %v", mode)
	}
}

func TestRUMoveSetIsRAndU(t *testing.T) {
	moves := searchmode.PossibleMoves(searchmode.RU)
	for _, m := range moves {
		require.Contains(t, []minx.Family{minx.FamilyR, minx.FamilyU}, m.Family)
	}
}

func TestCreatePrunersNonEmptyForEveryMode(t *testing.T) {
	modes := []searchmode.Mode{
		searchmode.RU, searchmode.RUF, searchmode.RUL, searchmode.RUFL,
		searchmode.RUFLbL, searchmode.RUbL, searchmode.RUbR, searchmode.RUD,
	}
	for _, mode := range modes {
		pruners := searchmode.CreatePruners(mode)
		require.NotEmpty(t, pruners, "mode %v", mode)
		for _, p := range pruners {
			require.Greater(t, p.TableSize(), 0, "mode %v pruner %s", mode, p.Name())
		}
	}
}

func TestRUPrunersCoverPermutationsAndCornerOrientation(t *testing.T) {
	pruners := searchmode.CreatePruners(searchmode.RU)
	var usesCP, usesEP, usesCO, usesEO bool
	for _, p := range pruners {
		usesCP = usesCP || p.UsesCornerPermutation()
		usesEP = usesEP || p.UsesEdgePermutation()
		usesCO = usesCO || p.UsesCornerOrientation()
		usesEO = usesEO || p.UsesEdgeOrientation()
	}
	require.True(t, usesCP)
	require.True(t, usesEP)
	require.True(t, usesCO)
	require.False(t, usesEO)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "RU", searchmode.RU.String())
	require.Equal(t, "RUD", searchmode.RUD.String())
}

func TestValidate(t *testing.T) {
	require.NoError(t, searchmode.Validate(searchmode.RUbR))
	require.Error(t, searchmode.Validate(searchmode.Mode(99)))
}
