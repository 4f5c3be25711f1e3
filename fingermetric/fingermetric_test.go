package fingermetric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/fingermetric"
)

func TestDefaultParamsMatchesTeacherConstants(t *testing.T) {
	p := fingermetric.DefaultParams()
	require.Equal(t, 0.8, p.WristMult)
	require.Equal(t, 1.3, p.PushMult)
	require.Equal(t, 1.4, p.RingMult)
	require.Equal(t, 0.5, p.Destabilize)
	require.Equal(t, 1.0, p.AddRegrip)
	require.Equal(t, 1.65, p.Double)
	require.Equal(t, 2.25, p.OverWorkMult)
	require.Equal(t, 0.8, p.MoveBlock)
	require.Equal(t, 3.5, p.Rotation)
}

func TestScoreEmptySequenceIsZero(t *testing.T) {
	require.Equal(t, 0.0, fingermetric.Score(""))
	require.Equal(t, 0.0, fingermetric.Score("U U'"))
}

func TestScoreIsPositiveForANonTrivialAlgorithm(t *testing.T) {
	score := fingermetric.Score("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.False(t, math.IsNaN(score))
	require.Greater(t, score, 0.0)
}

func TestScoreIsDeterministic(t *testing.T) {
	alg := "R U2 R' U' R U' R'"
	require.Equal(t, fingermetric.Score(alg), fingermetric.Score(alg))
}

func TestMoveCountFaceTurnVsQuarterTurn(t *testing.T) {
	require.Equal(t, uint32(2), fingermetric.MoveCount("R2 L2", "FTM"))
	require.Equal(t, uint32(4), fingermetric.MoveCount("R2 L2", "QTM"))
}

func TestMoveCountDropsLeadingAndTrailingAUF(t *testing.T) {
	require.Equal(t, uint32(1), fingermetric.MoveCount("U R U'", "FTM"))
}
