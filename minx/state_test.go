package minx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
)

// cornerOrientationSum returns the sum of all 17 corner slot
// orientations mod 3; a single quarter turn of any face must leave
// this invariant unchanged (every face's quarter turn twists either no
// corners or 3 of them).
func cornerOrientationSum(s *minx.State) int {
	sum := 0
	for i := minx.CornerPosition(0); i < minx.NumCorners; i++ {
		sum += int(s.CornerOrientationAt(i))
	}
	return sum % 3
}

func edgeOrientationSum(s *minx.State) int {
	sum := 0
	for i := minx.EdgePosition(0); i < minx.NumEdges; i++ {
		sum += int(s.EdgeOrientationAt(i))
	}
	return sum % 2
}

func TestNewIsSolved(t *testing.T) {
	s := minx.New()
	require.Equal(t, 0, s.Depth())
	_, ok := s.LastMove()
	require.False(t, ok)
	for i := 0; i < minx.NumCorners; i++ {
		require.Equal(t, uint8(i), s.CornerPositions()[i])
	}
}

func TestApplyMoveRecordsHistory(t *testing.T) {
	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	require.Equal(t, 1, s.Depth())
	last, ok := s.LastMove()
	require.True(t, ok)
	require.Equal(t, minx.Move{Family: minx.FamilyR, Power: minx.Quarter}, last)
}

func TestQuarterTurnFiveTimesIsIdentity(t *testing.T) {
	for _, f := range []minx.Family{minx.FamilyR, minx.FamilyL, minx.FamilyU, minx.FamilyF, minx.FamilyBL, minx.FamilyBR, minx.FamilyD} {
		solved := minx.New()
		s := minx.New()
		for i := 0; i < 5; i++ {
			s.ApplyMove(minx.Move{Family: f, Power: minx.Quarter})
		}
		require.True(t, solved.StateEquals(s), "family %v: 5 quarter turns must return to solved", f)
	}
}

func TestDoubleTurnIsTwoQuarters(t *testing.T) {
	for _, f := range []minx.Family{minx.FamilyR, minx.FamilyL, minx.FamilyU, minx.FamilyF, minx.FamilyBL, minx.FamilyBR, minx.FamilyD} {
		a := minx.New()
		a.ApplyMove(minx.Move{Family: f, Power: minx.Double})

		b := minx.New()
		b.ApplyMove(minx.Move{Family: f, Power: minx.Quarter})
		b.ApplyMove(minx.Move{Family: f, Power: minx.Quarter})

		require.Equal(t, a.CornerPositions(), b.CornerPositions(), "family %v", f)
		require.Equal(t, a.EdgePositions(), b.EdgePositions(), "family %v", f)
		require.Equal(t, a.CornerOrientations(), b.CornerOrientations(), "family %v", f)
		require.Equal(t, a.EdgeOrientations(), b.EdgeOrientations(), "family %v", f)
	}
}

func TestInverseUndoesQuarterTurn(t *testing.T) {
	for _, f := range []minx.Family{minx.FamilyR, minx.FamilyL, minx.FamilyU, minx.FamilyF, minx.FamilyBL, minx.FamilyBR, minx.FamilyD} {
		solved := minx.New()
		s := minx.New()
		s.ApplyMove(minx.Move{Family: f, Power: minx.Quarter})
		s.ApplyMove(minx.Move{Family: f, Power: minx.Quarter}.Inverse())
		require.True(t, solved.StateEquals(s), "family %v", f)
	}
}

func TestUndoMoveRestoresState(t *testing.T) {
	s := minx.New()
	before := s.Clone()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Inverse})

	undone, ok := s.UndoMove()
	require.True(t, ok)
	require.Equal(t, minx.Move{Family: minx.FamilyU, Power: minx.Inverse}, undone)
	require.Equal(t, 1, s.Depth())

	_, ok = s.UndoMove()
	require.True(t, ok)
	require.Equal(t, 0, s.Depth())
	require.True(t, before.StateEquals(s))

	_, ok = s.UndoMove()
	require.False(t, ok)
}

func TestOrientationInvariantsConserved(t *testing.T) {
	s := minx.New()
	for _, f := range []minx.Family{minx.FamilyR, minx.FamilyU, minx.FamilyF, minx.FamilyL, minx.FamilyBL, minx.FamilyBR} {
		s.ApplyMove(minx.Move{Family: f, Power: minx.Quarter})
		require.Equal(t, 0, cornerOrientationSum(s), "family %v corner sum", f)
		require.Equal(t, 0, edgeOrientationSum(s), "family %v edge sum", f)
	}
}

func TestGeneratingMovesCollapsesDoubles(t *testing.T) {
	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	require.Equal(t, "R2", s.GeneratingMoves())
}

func TestSolvingMovesIsReverseInverse(t *testing.T) {
	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Inverse})
	require.Equal(t, "UR'", s.SolvingMoves())
}

func TestFFTMAndFTMLength(t *testing.T) {
	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Double})
	s.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})

	require.Equal(t, 4, s.FFTMLength()) // 1 + 2 + 1
	require.Equal(t, 2, s.FTMLength())  // R,R2 collapse to 1, plus U
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "R", minx.Move{Family: minx.FamilyR, Power: minx.Quarter}.String())
	require.Equal(t, "R'", minx.Move{Family: minx.FamilyR, Power: minx.Inverse}.String())
	require.Equal(t, "bL2", minx.Move{Family: minx.FamilyBL, Power: minx.Double}.String())
	require.Equal(t, "bR2'", minx.Move{Family: minx.FamilyBR, Power: minx.DoubleInverse}.String())
}
