package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
)

func testHandler(t *testing.T) *scramble.Handler {
	t.Helper()
	pieceMap := scramble.DefaultMegaminx()
	equivalences := []scramble.EquivalenceSet{{Pieces: []string{"UC1", "UC2"}}}
	groups := []scramble.OrientationGroup{{NumOrientations: 1, Pieces: []string{"UC3"}}}
	h, err := scramble.NewHandler(equivalences, groups, pieceMap)
	require.NoError(t, err)
	return h
}

func TestNormalizeStateShape(t *testing.T) {
	h := testHandler(t)
	n := h.Normalize(minx.New())
	require.Len(t, n.CornerSignature, minx.NumCorners)
	require.Len(t, n.EdgeSignature, minx.NumEdges)
}

func TestAreEquivalentSameState(t *testing.T) {
	h := testHandler(t)
	require.True(t, h.AreEquivalent(minx.New(), minx.New()))
}

func TestInvalidOrientationGroupRejected(t *testing.T) {
	pieceMap := scramble.DefaultMegaminx()
	groups := []scramble.OrientationGroup{{NumOrientations: 2, Pieces: []string{"UC1"}}}
	_, err := scramble.NewHandler(nil, groups, pieceMap)
	require.Error(t, err)
}

func TestMixedPieceTypeEquivalenceRejected(t *testing.T) {
	pieceMap := scramble.DefaultMegaminx()
	equivalences := []scramble.EquivalenceSet{{Pieces: []string{"UC1", "UE1"}}}
	_, err := scramble.NewHandler(equivalences, nil, pieceMap)
	require.Error(t, err)
}

func TestUMoveEquivalentUnderFullLLEquivalence(t *testing.T) {
	pieceMap := scramble.DefaultMegaminx()
	equivalences := []scramble.EquivalenceSet{
		{Pieces: []string{"UC1", "UC2", "UC3", "UC4", "UC5"}},
		{Pieces: []string{"UE1", "UE2", "UE3", "UE4", "UE5"}},
	}
	h, err := scramble.NewHandler(equivalences, nil, pieceMap)
	require.NoError(t, err)

	solved := minx.New()
	afterU := minx.New()
	afterU.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})

	require.Equal(t, h.Normalize(solved), h.Normalize(afterU))
}
