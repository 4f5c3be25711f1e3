// SPDX-License-Identifier: MIT

// Package validation checks a minx.State (or a raw 5-slot last-layer
// snapshot) against the invariants spec.md §3 requires of a legal
// puzzle state: positions form a permutation, orientations sum to 0
// under their modulus, and permutation parity is even.
//
// Grounded on original_source/llminxsolver-rs/src/validation.rs.
package validation

import (
	"fmt"

	"github.com/katalvlaran/llminxsolver/minx"
)

// ErrorKind classifies a Error, mirroring validation.rs's ValidationError variants.
type ErrorKind int

const (
	InvalidCornerPermutation ErrorKind = iota
	InvalidEdgePermutation
	InvalidCornerOrientation
	InvalidEdgeOrientation
	PermutationParity
	InvalidStateSize
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCornerPermutation:
		return "invalid corner permutation"
	case InvalidEdgePermutation:
		return "invalid edge permutation"
	case InvalidCornerOrientation:
		return "invalid corner orientation"
	case InvalidEdgeOrientation:
		return "invalid edge orientation"
	case PermutationParity:
		return "permutation parity error"
	case InvalidStateSize:
		return "invalid state size"
	default:
		return "unknown validation error"
	}
}

// Error reports one failed invariant check.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func newErr(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

const (
	cornerOrientationModulus = 3
	edgeOrientationModulus   = 2
	maxCornerOrientation     = 2
	maxEdgeOrientation       = 1
	lastLayerCorners         = 5
	lastLayerEdges           = 5
)

func countInversions(perm []uint8) int {
	inversions := 0
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions
}

func isValidPermutation(positions []uint8, size int) error {
	if len(positions) != size {
		return fmt.Errorf("expected %d positions, got %d", size, len(positions))
	}

	seen := make([]bool, size)
	for i, pos := range positions {
		if int(pos) >= size {
			return fmt.Errorf("position %d is out of range (0-%d)", pos, size-1)
		}
		if seen[pos] {
			return fmt.Errorf("duplicate position %d at index %d", pos, i)
		}
		seen[pos] = true
	}
	return nil
}

func validateOrientationValues(orientations []uint8, maxValue uint8, pieceType string) error {
	for i, o := range orientations {
		if o > maxValue {
			return fmt.Errorf("%s %d orientation %d is out of range (0-%d)", pieceType, i, o, maxValue)
		}
	}
	return nil
}

func validateOrientationSum(orientations []uint8, modulus int, pieceType string) error {
	sum := 0
	for _, o := range orientations {
		sum += int(o)
	}
	if sum%modulus != 0 {
		return fmt.Errorf("sum of %s orientations (%d) is not divisible by %d", pieceType, sum, modulus)
	}
	return nil
}

func validatePermutationParity(cornerPositions, edgePositions []uint8) error {
	cornerInversions := countInversions(cornerPositions)
	edgeInversions := countInversions(edgePositions)

	if cornerInversions%2 != 0 {
		return fmt.Errorf("corner permutation has odd parity (%d inversions)", cornerInversions)
	}
	if edgeInversions%2 != 0 {
		return fmt.Errorf("edge permutation has odd parity (%d inversions)", edgeInversions)
	}
	return nil
}

// State is a raw snapshot to validate: slices, not minx.State's fixed
// arrays, so LastLayer checks can be run against a 5-slot excerpt.
type State struct {
	CornerPositions    []uint8
	CornerOrientations []uint8
	EdgePositions      []uint8
	EdgeOrientations   []uint8
}

// FromState extracts a State snapshot from a live minx.State.
func FromState(s *minx.State) State {
	cp := s.CornerPositions()
	ep := s.EdgePositions()

	co := make([]uint8, minx.NumCorners)
	for i := range co {
		co[i] = s.CornerOrientationAt(minx.CornerPosition(i))
	}
	eo := make([]uint8, minx.NumEdges)
	for i := range eo {
		eo[i] = s.EdgeOrientationAt(minx.EdgePosition(i))
	}

	return State{
		CornerPositions:    cp[:],
		CornerOrientations: co,
		EdgePositions:      ep[:],
		EdgeOrientations:   eo,
	}
}

// LastLayerState checks only the first 5 corner/edge slots of state —
// the invariants a Last Layer search actually depends on.
func LastLayerState(state State) error {
	if len(state.CornerPositions) < lastLayerCorners {
		return newErr(InvalidStateSize, "need at least %d corner positions for last layer, got %d", lastLayerCorners, len(state.CornerPositions))
	}
	if len(state.EdgePositions) < lastLayerEdges {
		return newErr(InvalidStateSize, "need at least %d edge positions for last layer, got %d", lastLayerEdges, len(state.EdgePositions))
	}

	llCornerPositions := state.CornerPositions[:lastLayerCorners]
	llEdgePositions := state.EdgePositions[:lastLayerEdges]

	if err := isValidPermutation(llCornerPositions, lastLayerCorners); err != nil {
		return newErr(InvalidCornerPermutation, "%s", err)
	}
	if err := isValidPermutation(llEdgePositions, lastLayerEdges); err != nil {
		return newErr(InvalidEdgePermutation, "%s", err)
	}

	if len(state.CornerOrientations) >= lastLayerCorners {
		llCornerOrientations := state.CornerOrientations[:lastLayerCorners]
		if err := validateOrientationValues(llCornerOrientations, maxCornerOrientation, "Corner"); err != nil {
			return newErr(InvalidCornerOrientation, "%s", err)
		}
		if err := validateOrientationSum(llCornerOrientations, cornerOrientationModulus, "corner"); err != nil {
			return newErr(InvalidCornerOrientation, "%s", err)
		}
	}

	if len(state.EdgeOrientations) >= lastLayerEdges {
		llEdgeOrientations := state.EdgeOrientations[:lastLayerEdges]
		if err := validateOrientationValues(llEdgeOrientations, maxEdgeOrientation, "Edge"); err != nil {
			return newErr(InvalidEdgeOrientation, "%s", err)
		}
		if err := validateOrientationSum(llEdgeOrientations, edgeOrientationModulus, "edge"); err != nil {
			return newErr(InvalidEdgeOrientation, "%s", err)
		}
	}

	if err := validatePermutationParity(llCornerPositions, llEdgePositions); err != nil {
		return newErr(PermutationParity, "%s", err)
	}

	return nil
}

// FullState checks every slot of state against the full-puzzle
// invariants: exact slot counts, a true permutation per array, every
// orientation in range and summing correctly, and an even corner
// permutation and an even edge permutation.
func FullState(state State) error {
	if len(state.CornerPositions) != minx.NumCorners {
		return newErr(InvalidStateSize, "expected %d corner positions, got %d", minx.NumCorners, len(state.CornerPositions))
	}
	if len(state.EdgePositions) != minx.NumEdges {
		return newErr(InvalidStateSize, "expected %d edge positions, got %d", minx.NumEdges, len(state.EdgePositions))
	}
	if len(state.CornerOrientations) != minx.NumCorners {
		return newErr(InvalidStateSize, "expected %d corner orientations, got %d", minx.NumCorners, len(state.CornerOrientations))
	}
	if len(state.EdgeOrientations) != minx.NumEdges {
		return newErr(InvalidStateSize, "expected %d edge orientations, got %d", minx.NumEdges, len(state.EdgeOrientations))
	}

	if err := isValidPermutation(state.CornerPositions, minx.NumCorners); err != nil {
		return newErr(InvalidCornerPermutation, "%s", err)
	}
	if err := isValidPermutation(state.EdgePositions, minx.NumEdges); err != nil {
		return newErr(InvalidEdgePermutation, "%s", err)
	}

	if err := validateOrientationValues(state.CornerOrientations, maxCornerOrientation, "Corner"); err != nil {
		return newErr(InvalidCornerOrientation, "%s", err)
	}
	if err := validateOrientationSum(state.CornerOrientations, cornerOrientationModulus, "corner"); err != nil {
		return newErr(InvalidCornerOrientation, "%s", err)
	}

	if err := validateOrientationValues(state.EdgeOrientations, maxEdgeOrientation, "Edge"); err != nil {
		return newErr(InvalidEdgeOrientation, "%s", err)
	}
	if err := validateOrientationSum(state.EdgeOrientations, edgeOrientationModulus, "edge"); err != nil {
		return newErr(InvalidEdgeOrientation, "%s", err)
	}

	if err := validatePermutationParity(state.CornerPositions, state.EdgePositions); err != nil {
		return newErr(PermutationParity, "%s", err)
	}

	return nil
}
