package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/validation"
)

func solvedLastLayer() validation.State {
	return validation.State{
		CornerPositions:    []uint8{0, 1, 2, 3, 4},
		CornerOrientations: []uint8{0, 0, 0, 0, 0},
		EdgePositions:      []uint8{0, 1, 2, 3, 4},
		EdgeOrientations:   []uint8{0, 0, 0, 0, 0},
	}
}

func TestLastLayerStateValidSolvedState(t *testing.T) {
	require.NoError(t, validation.LastLayerState(solvedLastLayer()))
}

func TestLastLayerStateInvalidDuplicateCorner(t *testing.T) {
	st := solvedLastLayer()
	st.CornerPositions = []uint8{0, 1, 1, 3, 4}

	err := validation.LastLayerState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.InvalidCornerPermutation, verr.Kind)
}

func TestLastLayerStateInvalidOddParitySwap(t *testing.T) {
	st := solvedLastLayer()
	// A single transposition of two corners is an odd-parity permutation.
	st.CornerPositions = []uint8{1, 0, 2, 3, 4}

	err := validation.LastLayerState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.PermutationParity, verr.Kind)
}

func TestLastLayerStateValidThreeCycle(t *testing.T) {
	st := solvedLastLayer()
	// A 3-cycle is an even-parity permutation.
	st.CornerPositions = []uint8{1, 2, 0, 3, 4}

	require.NoError(t, validation.LastLayerState(st))
}

func TestLastLayerStateInvalidOutOfRangeOrientation(t *testing.T) {
	st := solvedLastLayer()
	st.CornerOrientations = []uint8{3, 0, 0, 0, 0}

	err := validation.LastLayerState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.InvalidCornerOrientation, verr.Kind)
}

func TestLastLayerStateInvalidOrientationSum(t *testing.T) {
	st := solvedLastLayer()
	st.CornerOrientations = []uint8{1, 0, 0, 0, 0}

	err := validation.LastLayerState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.InvalidCornerOrientation, verr.Kind)
}

func TestLastLayerStateTooFewPositions(t *testing.T) {
	st := solvedLastLayer()
	st.CornerPositions = []uint8{0, 1}

	err := validation.LastLayerState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.InvalidStateSize, verr.Kind)
}

func TestFromStateOfSolvedPuzzleIsFullyValid(t *testing.T) {
	s := minx.New()
	st := validation.FromState(s)

	require.Len(t, st.CornerPositions, minx.NumCorners)
	require.Len(t, st.EdgePositions, minx.NumEdges)
	require.NoError(t, validation.FullState(st))
	require.NoError(t, validation.LastLayerState(st))
}

func TestFullStateRejectsWrongLength(t *testing.T) {
	st := validation.State{
		CornerPositions:    []uint8{0, 1, 2},
		CornerOrientations: []uint8{0, 0, 0},
		EdgePositions:      []uint8{0, 1, 2},
		EdgeOrientations:   []uint8{0, 0, 0},
	}

	err := validation.FullState(st)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.InvalidStateSize, verr.Kind)
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "permutation parity error", validation.PermutationParity.String())
}
