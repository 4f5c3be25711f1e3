package scramble

import "github.com/katalvlaran/llminxsolver/minx"

// Handler applies declared equivalence sets and orientation groups to
// state normalization: pieces in the same equivalence set are folded
// to one representative slot, and orientations beyond a group's
// declared count are reduced modulo that count.
type Handler struct {
	equivalences      []EquivalenceSet
	orientationGroups []OrientationGroup
	pieceMap          PieceMap

	cornerEquivalence map[int]int
	edgeEquivalence   map[int]int

	cornerOrientationCounts [minx.NumCorners]uint8
	edgeOrientationCounts   [minx.NumEdges]uint8
}

// NewHandler builds a Handler from declared equivalence sets and
// orientation groups, resolved against pieceMap.
func NewHandler(equivalences []EquivalenceSet, groups []OrientationGroup, pieceMap PieceMap) (*Handler, error) {
	h := &Handler{
		equivalences:      equivalences,
		orientationGroups: groups,
		pieceMap:          pieceMap,
		cornerEquivalence: make(map[int]int),
		edgeEquivalence:   make(map[int]int),
	}
	for i := range h.cornerOrientationCounts {
		h.cornerOrientationCounts[i] = 3
	}
	for i := range h.edgeOrientationCounts {
		h.edgeOrientationCounts[i] = 2
	}

	if err := h.buildEquivalenceMaps(); err != nil {
		return nil, err
	}
	if err := h.applyOrientationGroups(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) buildEquivalenceMaps() error {
	for _, set := range h.equivalences {
		type indexed struct {
			isCorner bool
			idx      int
		}
		var indices []indexed
		for _, name := range set.Pieces {
			if idx, ok := h.pieceMap.GetCorner(name); ok {
				indices = append(indices, indexed{true, idx})
			} else if idx, ok := h.pieceMap.GetEdge(name); ok {
				indices = append(indices, indexed{false, idx})
			} else {
				return newErr(ErrInvalidPiece, "unknown piece in equivalence set: %s", name)
			}
		}

		if len(indices) <= 1 {
			continue
		}
		firstIsCorner := indices[0].isCorner
		representative := indices[0].idx
		for _, ix := range indices {
			if ix.isCorner != firstIsCorner {
				return newErr(ErrInvalidEquivalence, "equivalence set contains mixed piece types (corners and edges)")
			}
			if ix.isCorner {
				h.cornerEquivalence[ix.idx] = representative
			} else {
				h.edgeEquivalence[ix.idx] = representative
			}
		}
	}
	return nil
}

func (h *Handler) applyOrientationGroups() error {
	for _, group := range h.orientationGroups {
		for _, name := range group.Pieces {
			if idx, ok := h.pieceMap.GetCorner(name); ok {
				if 3%group.NumOrientations != 0 {
					return newErr(ErrInvalidEquivalence, "cannot set %d orientations for corner %s (must divide 3)", group.NumOrientations, name)
				}
				h.cornerOrientationCounts[idx] = group.NumOrientations
			} else if idx, ok := h.pieceMap.GetEdge(name); ok {
				if 2%group.NumOrientations != 0 {
					return newErr(ErrInvalidEquivalence, "cannot set %d orientations for edge %s (must divide 2)", group.NumOrientations, name)
				}
				h.edgeOrientationCounts[idx] = group.NumOrientations
			} else {
				return newErr(ErrInvalidPiece, "unknown piece in orientation group: %s", name)
			}
		}
	}
	return nil
}

// AreEquivalent reports whether a and b normalize to the same
// equivalence class.
func (h *Handler) AreEquivalent(a, b *minx.State) bool {
	return h.Normalize(a) == h.Normalize(b)
}

// Normalize returns a's equivalence-aware NormalizedState: positions
// folded to their equivalence-class representative, orientations
// reduced modulo each slot's declared orientation count.
func (h *Handler) Normalize(s *minx.State) NormalizedState {
	n := FromState(s)

	for i, pos := range n.CornerSignature {
		if rep, ok := h.cornerEquivalence[int(pos)]; ok {
			n.CornerSignature[i] = uint8(rep)
		}
	}
	for i, pos := range n.EdgeSignature {
		if rep, ok := h.edgeEquivalence[int(pos)]; ok {
			n.EdgeSignature[i] = uint8(rep)
		}
	}
	for i := range n.CornerOrientation {
		if count := h.cornerOrientationCounts[i]; count < 3 {
			n.CornerOrientation[i] %= count
		}
	}
	for i := range n.EdgeOrientation {
		if count := h.edgeOrientationCounts[i]; count < 2 {
			n.EdgeOrientation[i] %= count
		}
	}

	return n
}

// ApplyToState sets s's ignore masks so a solver treats every
// non-representative piece of each equivalence set, and every
// single-orientation group, as don't-care.
func (h *Handler) ApplyToState(s *minx.State) {
	var ignoreCorners [minx.NumCorners]bool
	var ignoreEdges [minx.NumEdges]bool
	for idx, rep := range h.cornerEquivalence {
		if idx != rep {
			ignoreCorners[idx] = true
		}
	}
	for idx, rep := range h.edgeEquivalence {
		if idx != rep {
			ignoreEdges[idx] = true
		}
	}
	s.SetIgnoreCornerPositions(ignoreCorners)
	s.SetIgnoreEdgePositions(ignoreEdges)

	var ignoreCornerOri [minx.NumCorners]bool
	var ignoreEdgeOri [minx.NumEdges]bool
	for i, count := range h.cornerOrientationCounts {
		if count == 1 {
			ignoreCornerOri[i] = true
		}
	}
	for i, count := range h.edgeOrientationCounts {
		if count == 1 {
			ignoreEdgeOri[i] = true
		}
	}
	s.SetIgnoreCornerOrientations(ignoreCornerOri)
	s.SetIgnoreEdgeOrientations(ignoreEdgeOri)
}

// Deduplicate removes equivalence-duplicate states from states
// in place, keeping the first occurrence of each equivalence class.
func Deduplicate(h *Handler, states []GeneratedState) []GeneratedState {
	seen := make(map[stateKey]struct{}, len(states))
	out := states[:0]
	for _, s := range states {
		key := hashNormalizedState(h.Normalize(s.State))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
