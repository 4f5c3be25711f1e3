package scramble

import (
	"strings"

	"github.com/katalvlaran/llminxsolver/minx"
)

// AdjustHandler expands pre-adjust and post-adjust move strings into
// sequence lists, and uses them to fold together generated states that
// differ only by a pre/post-adjust symmetry.
type AdjustHandler struct {
	preAdjust  [][]minx.Move
	postAdjust [][]minx.Move
}

// NewAdjustHandler builds an AdjustHandler from pre/post-adjust move
// strings. Each string is either a bare family letter ("U"), which
// expands to all 4 of that family's powers as 4 separate one-move
// sequences (spec.md §9 Open Question, resolved literally), or an
// explicit move sequence, which is parsed and kept as one sequence.
func NewAdjustHandler(preAdjust, postAdjust []string) (*AdjustHandler, error) {
	pre, err := expandAdjustList(preAdjust)
	if err != nil {
		return nil, err
	}
	post, err := expandAdjustList(postAdjust)
	if err != nil {
		return nil, err
	}
	return &AdjustHandler{preAdjust: pre, postAdjust: post}, nil
}

var baseMovePowers = map[string][]minx.Move{
	"R":  {{Family: minx.FamilyR, Power: minx.Quarter}, {Family: minx.FamilyR, Power: minx.Inverse}, {Family: minx.FamilyR, Power: minx.Double}, {Family: minx.FamilyR, Power: minx.DoubleInverse}},
	"L":  {{Family: minx.FamilyL, Power: minx.Quarter}, {Family: minx.FamilyL, Power: minx.Inverse}, {Family: minx.FamilyL, Power: minx.Double}, {Family: minx.FamilyL, Power: minx.DoubleInverse}},
	"U":  {{Family: minx.FamilyU, Power: minx.Quarter}, {Family: minx.FamilyU, Power: minx.Inverse}, {Family: minx.FamilyU, Power: minx.Double}, {Family: minx.FamilyU, Power: minx.DoubleInverse}},
	"F":  {{Family: minx.FamilyF, Power: minx.Quarter}, {Family: minx.FamilyF, Power: minx.Inverse}, {Family: minx.FamilyF, Power: minx.Double}, {Family: minx.FamilyF, Power: minx.DoubleInverse}},
	"D":  {{Family: minx.FamilyD, Power: minx.Quarter}, {Family: minx.FamilyD, Power: minx.Inverse}, {Family: minx.FamilyD, Power: minx.Double}, {Family: minx.FamilyD, Power: minx.DoubleInverse}},
	"bL": {{Family: minx.FamilyBL, Power: minx.Quarter}, {Family: minx.FamilyBL, Power: minx.Inverse}, {Family: minx.FamilyBL, Power: minx.Double}, {Family: minx.FamilyBL, Power: minx.DoubleInverse}},
	"bR": {{Family: minx.FamilyBR, Power: minx.Quarter}, {Family: minx.FamilyBR, Power: minx.Inverse}, {Family: minx.FamilyBR, Power: minx.Double}, {Family: minx.FamilyBR, Power: minx.DoubleInverse}},
}

func expandAdjustList(adjusts []string) ([][]minx.Move, error) {
	var out [][]minx.Move
	for _, adj := range adjusts {
		trimmed := strings.TrimSpace(adj)
		if trimmed == "" {
			continue
		}
		if powers, ok := baseMovePowers[trimmed]; ok {
			for _, mv := range powers {
				out = append(out, []minx.Move{mv})
			}
			continue
		}
		moves, err := ParseMoves(trimmed)
		if err != nil {
			return nil, err
		}
		if len(moves) > 0 {
			out = append(out, moves)
		}
	}
	return out, nil
}

// PreAdjustSequences returns every expanded pre-adjust move sequence.
func (h *AdjustHandler) PreAdjustSequences() [][]minx.Move { return h.preAdjust }

// PostAdjustSequences returns every expanded post-adjust move sequence.
func (h *AdjustHandler) PostAdjustSequences() [][]minx.Move { return h.postAdjust }

// ApplyPreAdjust returns a clone of state with seq applied, and the
// rendered move string.
func ApplyPreAdjust(state *minx.State, seq []minx.Move) (*minx.State, string) {
	clone := state.Clone()
	for _, mv := range seq {
		clone.ApplyMove(mv)
	}
	return clone, renderMoves(seq)
}

// ApplyPostAdjust returns a clone of state with the inverse of seq
// applied in reverse order, and the rendered (forward) move string.
func ApplyPostAdjust(state *minx.State, seq []minx.Move) (*minx.State, string) {
	clone := state.Clone()
	for i := len(seq) - 1; i >= 0; i-- {
		clone.ApplyMove(seq[i].Inverse())
	}
	return clone, renderMoves(seq)
}

func renderMoves(seq []minx.Move) string {
	parts := make([]string, len(seq))
	for i, mv := range seq {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

func normalizeForAdjust(state *minx.State, equivalence *Handler) NormalizedState {
	if equivalence != nil {
		return equivalence.Normalize(state)
	}
	return FromState(state)
}

// ReduceStates removes generated states that are pre/post-adjust
// equivalent to one already kept: for each kept state, every
// combination of a pre-adjust sequence (including the identity) and a
// post-adjust sequence (including the identity) applied around its
// setup moves is marked as a duplicate so a later state matching any
// of those variants is dropped.
func (h *AdjustHandler) ReduceStates(states []GeneratedState, equivalence *Handler) []GeneratedState {
	var result []GeneratedState
	duplicates := make(map[stateKey]struct{})

	preSeqs := append([][]minx.Move{nil}, h.preAdjust...)
	postSeqs := append([][]minx.Move{nil}, h.postAdjust...)

	for _, s := range states {
		key := hashNormalizedState(normalizeForAdjust(s.State, equivalence))
		if _, ok := duplicates[key]; ok {
			continue
		}
		result = append(result, s)

		for _, pre := range preSeqs {
			for _, post := range postSeqs {
				variant := h.computeVariant(s.SetupMoves, pre, post)
				duplicates[hashNormalizedState(normalizeForAdjust(variant, equivalence))] = struct{}{}
			}
		}
	}

	return result
}

// computeVariant rebuilds, from solved: post-adjust moves, then the
// original setup moves, then pre-adjust moves.
func (h *AdjustHandler) computeVariant(setupMoves string, pre, post []minx.Move) *minx.State {
	result := minx.New()
	for _, mv := range post {
		result.ApplyMove(mv)
	}
	if moves, err := ParseMoves(setupMoves); err == nil {
		for _, mv := range moves {
			result.ApplyMove(mv)
		}
	}
	for _, mv := range pre {
		result.ApplyMove(mv)
	}
	return result
}

// FindPostAdjustSolution returns the first post-adjust sequence that
// brings state to goal, and false if none does.
func (h *AdjustHandler) FindPostAdjustSolution(state, goal *minx.State) ([]minx.Move, bool) {
	for _, post := range h.postAdjust {
		adjusted, _ := ApplyPostAdjust(state, post)
		if adjusted.StateEquals(goal) {
			return post, true
		}
	}
	return nil, false
}

// IsSolvedWithPostAdjust reports whether any post-adjust variant of
// state equals goal.
func (h *AdjustHandler) IsSolvedWithPostAdjust(state, goal *minx.State) bool {
	_, ok := h.FindPostAdjustSolution(state, goal)
	return ok
}
