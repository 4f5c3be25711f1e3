package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/scramble"
)

func TestParsePlainSegment(t *testing.T) {
	parsed, err := scramble.Parse("R U R' U'")
	require.NoError(t, err)
	require.Len(t, parsed.Segments, 1)
	require.Equal(t, scramble.SegmentPlain, parsed.Segments[0].Kind)
}

func TestParseSeriesSegment(t *testing.T) {
	parsed, err := scramble.Parse("[R, U, F]")
	require.NoError(t, err)
	require.Len(t, parsed.Segments, 1)
	require.Equal(t, scramble.SegmentSeries, parsed.Segments[0].Kind)
	require.Equal(t, []string{"R", "U", "F"}, parsed.Segments[0].Options)
}

func TestParseSeriesWhitespaceSplit(t *testing.T) {
	parsed, err := scramble.Parse("[R U R' U']")
	require.NoError(t, err)
	require.Equal(t, []string{"R", "U", "R'", "U'"}, parsed.Segments[0].Options)
}

func TestParseGeneratorsSegment(t *testing.T) {
	parsed, err := scramble.Parse("<R, U>")
	require.NoError(t, err)
	require.Equal(t, scramble.SegmentGenerators, parsed.Segments[0].Kind)
}

func TestParseNestedBrackets(t *testing.T) {
	parsed, err := scramble.Parse("[R [U], F]")
	require.NoError(t, err)
	require.Len(t, parsed.Segments[0].Options, 2)
}

func TestParseUnclosedBracket(t *testing.T) {
	_, err := scramble.Parse("[R, U")
	require.Error(t, err)
}

func TestParseModifiers(t *testing.T) {
	parsed, err := scramble.Parse("R U#1,3,5-7,10+")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, parsed.Modifiers.SpecificCases)
	require.Equal(t, [][2]int{{5, 7}}, parsed.Modifiers.Ranges)
	require.Equal(t, 10, parsed.Modifiers.StartFrom)
}

func TestParseInvalidModifiersDropped(t *testing.T) {
	parsed, err := scramble.Parse("R#10-5,0")
	require.NoError(t, err)
	require.Empty(t, parsed.Modifiers.Ranges)
	require.Empty(t, parsed.Modifiers.SpecificCases)
}

func TestParseEmptyScramble(t *testing.T) {
	parsed, err := scramble.Parse("   ")
	require.NoError(t, err)
	require.True(t, parsed.IsEmpty())
}

func TestParseMovesInvalid(t *testing.T) {
	_, err := scramble.ParseMoves("Q")
	require.Error(t, err)
}

func TestParseEquivalencesBlock(t *testing.T) {
	sets, groups := scramble.ParseEquivalences("{UC1 UC2}\n1: UC3\n")
	require.Len(t, sets, 1)
	require.Equal(t, []string{"UC1", "UC2"}, sets[0].Pieces)
	require.Len(t, groups, 1)
	require.EqualValues(t, 1, groups[0].NumOrientations)
}
