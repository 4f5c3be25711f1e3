package coordinate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/coordinate"
)

func TestPowers(t *testing.T) {
	require.Equal(t, uint32(1), coordinate.PowersOfTwo[0])
	require.Equal(t, uint32(2), coordinate.PowersOfTwo[1])
	require.Equal(t, uint32(1024), coordinate.PowersOfTwo[10])

	require.Equal(t, uint32(1), coordinate.PowersOfThree[0])
	require.Equal(t, uint32(3), coordinate.PowersOfThree[1])
	require.Equal(t, uint32(243), coordinate.PowersOfThree[5])
}

func TestFactorial(t *testing.T) {
	require.Equal(t, uint32(1), coordinate.Fac[0])
	require.Equal(t, uint32(1), coordinate.Fac[1])
	require.Equal(t, uint32(120), coordinate.Fac[5])
	require.Equal(t, uint32(3628800), coordinate.Fac[10])
}

func TestBinomialTable(t *testing.T) {
	require.Equal(t, uint32(10), coordinate.CKN[5][2])
	require.Equal(t, uint32(120), coordinate.CKN[10][3])
	require.Equal(t, uint32(0), coordinate.CKN[3][5])
}

func TestParity(t *testing.T) {
	require.Equal(t, uint8(0), coordinate.Parity(0))
	require.Equal(t, uint8(1), coordinate.Parity(1))
	require.Equal(t, uint8(0), coordinate.Parity(3))
	require.Equal(t, uint8(1), coordinate.Parity(7))
}

func TestPermutationCoordinateRoundTrip(t *testing.T) {
	cubies := []uint8{0, 1, 2, 3, 4}
	permutation := []uint8{4, 2, 0, 1, 3}

	coord := coordinate.PermutationCoordinate(permutation, cubies)

	decoded := make([]uint8, len(permutation))
	for i := range decoded {
		decoded[i] = 0xFF
	}
	coordinate.DecodePermutation(coord, decoded, cubies)

	for _, c := range cubies {
		wantSlot := indexOf(permutation, c)
		gotSlot := indexOf(decoded, c)
		require.Equal(t, wantSlot, gotSlot, "cubie %d", c)
	}
}

func indexOf(arr []uint8, v uint8) int {
	for i, a := range arr {
		if a == v {
			return i
		}
	}
	return -1
}

func TestSeparationCoordinateRoundTrip(t *testing.T) {
	permutation := []uint8{9, 1, 9, 3, 9, 9, 6}
	cubies := []uint8{1, 3, 6}

	coord := coordinate.SeparationCoordinate(permutation, cubies)

	decoded := make([]uint8, len(permutation))
	coordinate.DecodeSeparation(coord, decoded, cubies)

	occupied := map[int]bool{1: true, 3: true, 6: true}
	for i, v := range decoded {
		if occupied[i] {
			require.NotEqual(t, uint8(0xFF), v, "slot %d should be occupied", i)
		} else {
			require.Equal(t, uint8(0xFF), v, "slot %d should be free", i)
		}
	}
}

func TestEdgeOrientationRoundTrip(t *testing.T) {
	const n = 5
	for full := uint32(0); full < (1 << n); full++ {
		if coordinate.Parity(full) != 0 {
			continue // only zero-sum words are reachable states
		}
		coord := coordinate.EdgeOrientationCoordinate(full, n)
		back := coordinate.DecodeEdgeOrientation(coord, n)
		require.Equal(t, full, back)
	}
}

func TestCornerOrientationRoundTrip(t *testing.T) {
	cubies := []uint8{0, 1, 2, 3, 4}
	var orientation uint64
	// digits 1,2,0,2 with the 5th forced to conserve the sum mod 3
	digits := []uint64{1, 2, 0, 2}
	sum := uint64(0)
	for i, d := range digits {
		orientation |= d << (uint(cubies[i]) * 2)
		sum += d
	}
	last := (3 - sum%3) % 3
	orientation |= last << (uint(cubies[4]) * 2)

	coord := coordinate.CornerOrientationCoordinate(orientation, cubies)
	back := coordinate.DecodeCornerOrientation(coord, cubies)
	require.Equal(t, orientation, back)
}
