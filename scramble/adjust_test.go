package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
)

func TestAdjustHandlerExpandsBaseMove(t *testing.T) {
	h, err := scramble.NewAdjustHandler([]string{"U"}, nil)
	require.NoError(t, err)
	require.Len(t, h.PreAdjustSequences(), 4)
}

func TestAdjustHandlerKeepsExplicitSequence(t *testing.T) {
	h, err := scramble.NewAdjustHandler([]string{"U R"}, nil)
	require.NoError(t, err)
	require.Len(t, h.PreAdjustSequences(), 1)
	require.Len(t, h.PreAdjustSequences()[0], 2)
}

func TestApplyPreAdjustRendersMoves(t *testing.T) {
	seq := []minx.Move{{Family: minx.FamilyU, Power: minx.Quarter}}
	result, rendered := scramble.ApplyPreAdjust(minx.New(), seq)
	require.Equal(t, "U", rendered)
	require.NotNil(t, result)
}

func TestReduceStatesFoldsPostAdjustSymmetry(t *testing.T) {
	h, err := scramble.NewAdjustHandler(nil, []string{"U"})
	require.NoError(t, err)

	base := minx.New()
	base.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})

	rotated := minx.New()
	rotated.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})
	rotated.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})

	states := []scramble.GeneratedState{
		scramble.NewGeneratedState(base, "R"),
		scramble.NewGeneratedState(rotated, "U R"),
	}

	reduced := h.ReduceStates(states, nil)
	require.Len(t, reduced, 1)
}
