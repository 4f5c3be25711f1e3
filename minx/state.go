package minx

import "strings"

// State is a bit-packed Last-Layer Megaminx position: two permutation
// arrays (which piece occupies which slot) plus two packed orientation
// words (the twist/flip of whatever piece currently occupies each
// slot), and the move history that produced this position from solved.
//
// A State is cheap to copy (fixed-size arrays plus the move slice and
// a last-move pointer) and is not safe for concurrent mutation from
// multiple goroutines — callers that fan a State out across workers
// (the batch package does) clone it per worker first,
// mirroring the teacher's convention that mutable traversal state is
// owned by exactly one goroutine at a time.
type State struct {
	cornerPositions [NumCorners]uint8
	edgePositions   [NumEdges]uint8

	cornerOrientations uint64 // 2 bits per slot
	edgeOrientations   uint32 // 1 bit per slot

	ignoreCornerPositions    [NumCorners]bool
	ignoreEdgePositions      [NumEdges]bool
	ignoreCornerOrientations [NumCorners]bool
	ignoreEdgeOrientations   [NumEdges]bool

	moves    []Move
	lastMove *Move
}

// New returns a solved State: every slot holds the piece of the same
// index, every orientation is 0.
func New() *State {
	s := &State{moves: make([]Move, 0, MaxSearchDepth)}
	for i := range s.cornerPositions {
		s.cornerPositions[i] = uint8(i)
	}
	for i := range s.edgePositions {
		s.edgePositions[i] = uint8(i)
	}
	return s
}

// WithState returns a State built from explicit permutation and
// orientation words, with an empty move history.
func WithState(cornerPositions [NumCorners]uint8, edgePositions [NumEdges]uint8, cornerOrientations uint64, edgeOrientations uint32) *State {
	s := New()
	s.cornerPositions = cornerPositions
	s.edgePositions = edgePositions
	s.cornerOrientations = cornerOrientations
	s.edgeOrientations = edgeOrientations
	return s
}

// Clone returns an independent copy of s, including its move history.
func (s *State) Clone() *State {
	c := *s
	c.moves = make([]Move, len(s.moves), cap(s.moves))
	copy(c.moves, s.moves)
	if s.lastMove != nil {
		lm := *s.lastMove
		c.lastMove = &lm
	}
	return &c
}

// CornerPositions returns the corner permutation array.
func (s *State) CornerPositions() [NumCorners]uint8 { return s.cornerPositions }

// SetCornerPositions overwrites the corner permutation array.
func (s *State) SetCornerPositions(p [NumCorners]uint8) { s.cornerPositions = p }

// EdgePositions returns the edge permutation array.
func (s *State) EdgePositions() [NumEdges]uint8 { return s.edgePositions }

// SetEdgePositions overwrites the edge permutation array.
func (s *State) SetEdgePositions(p [NumEdges]uint8) { s.edgePositions = p }

// CornerOrientations returns the packed corner-orientation word.
func (s *State) CornerOrientations() uint64 { return s.cornerOrientations }

// SetCornerOrientations overwrites the packed corner-orientation word.
func (s *State) SetCornerOrientations(o uint64) { s.cornerOrientations = o }

// EdgeOrientations returns the packed edge-orientation word.
func (s *State) EdgeOrientations() uint32 { return s.edgeOrientations }

// SetEdgeOrientations overwrites the packed edge-orientation word.
func (s *State) SetEdgeOrientations(o uint32) { s.edgeOrientations = o }

func (s *State) cornerOrientation(slot CornerPosition) uint8 {
	return uint8((s.cornerOrientations >> (uint(slot) * 2)) & 3)
}

func (s *State) setCornerOrientation(slot CornerPosition, o uint8) {
	shift := uint(slot) * 2
	mask := ^(uint64(3) << shift)
	s.cornerOrientations = (s.cornerOrientations & mask) | (uint64(o) << shift)
}

func (s *State) edgeOrientation(slot EdgePosition) uint8 {
	return uint8((s.edgeOrientations >> uint(slot)) & 1)
}

func (s *State) setEdgeOrientation(slot EdgePosition, o uint8) {
	shift := uint(slot)
	mask := ^(uint32(1) << shift)
	s.edgeOrientations = (s.edgeOrientations & mask) | (uint32(o) << shift)
}

// CornerOrientationAt returns the orientation (0, 1 or 2) of whatever
// piece currently occupies corner slot.
func (s *State) CornerOrientationAt(slot CornerPosition) uint8 { return s.cornerOrientation(slot) }

// EdgeOrientationAt returns the orientation (0 or 1) of whatever piece
// currently occupies edge slot.
func (s *State) EdgeOrientationAt(slot EdgePosition) uint8 { return s.edgeOrientation(slot) }

// IgnoreCornerPositions returns the per-piece corner-position ignore mask.
func (s *State) IgnoreCornerPositions() [NumCorners]bool { return s.ignoreCornerPositions }

// SetIgnoreCornerPositions overwrites the per-piece corner-position ignore mask.
func (s *State) SetIgnoreCornerPositions(m [NumCorners]bool) { s.ignoreCornerPositions = m }

// IgnoreEdgePositions returns the per-piece edge-position ignore mask.
func (s *State) IgnoreEdgePositions() [NumEdges]bool { return s.ignoreEdgePositions }

// SetIgnoreEdgePositions overwrites the per-piece edge-position ignore mask.
func (s *State) SetIgnoreEdgePositions(m [NumEdges]bool) { s.ignoreEdgePositions = m }

// IgnoreCornerOrientations returns the per-piece corner-orientation ignore mask.
func (s *State) IgnoreCornerOrientations() [NumCorners]bool { return s.ignoreCornerOrientations }

// SetIgnoreCornerOrientations overwrites the per-piece corner-orientation ignore mask.
func (s *State) SetIgnoreCornerOrientations(m [NumCorners]bool) { s.ignoreCornerOrientations = m }

// IgnoreEdgeOrientations returns the per-piece edge-orientation ignore mask.
func (s *State) IgnoreEdgeOrientations() [NumEdges]bool { return s.ignoreEdgeOrientations }

// SetIgnoreEdgeOrientations overwrites the per-piece edge-orientation ignore mask.
func (s *State) SetIgnoreEdgeOrientations(m [NumEdges]bool) { s.ignoreEdgeOrientations = m }

// Depth is the number of moves applied since the history was last cleared.
func (s *State) Depth() int { return len(s.moves) }

// LastMove returns the most recently applied move, and false if none.
func (s *State) LastMove() (Move, bool) {
	if s.lastMove == nil {
		return Move{}, false
	}
	return *s.lastMove, true
}

// Moves returns the recorded move history, oldest first.
func (s *State) Moves() []Move { return s.moves }

// ClearMoves empties the move history without touching the puzzle state.
func (s *State) ClearMoves() {
	s.moves = s.moves[:0]
	s.lastMove = nil
}

func (s *State) recordMove(m Move) {
	s.moves = append(s.moves, m)
	last := m
	s.lastMove = &last
}

// ApplyMove rotates s by m and records it in the move history.
func (s *State) ApplyMove(m Move) {
	applyFamily(s, m.Family, m.Power)
	s.recordMove(m)
}

// UndoMove reverses the most recently applied move and pops it from
// the history. It returns false if there is no move to undo.
func (s *State) UndoMove() (Move, bool) {
	last, ok := s.LastMove()
	if !ok {
		return Move{}, false
	}
	applyFamily(s, last.Family, last.Inverse().Power)
	s.moves = s.moves[:len(s.moves)-1]
	if n := len(s.moves); n > 0 {
		lm := s.moves[n-1]
		s.lastMove = &lm
	} else {
		s.lastMove = nil
	}
	return last, true
}

// GeneratingMoves renders the setup sequence that produced s from
// solved, with adjacent identical quarter/inverse turns of the same
// face collapsed into their double form (e.g. "R R" becomes "R2").
func (s *State) GeneratingMoves() string {
	moves := make([]Move, len(s.moves))
	copy(moves, s.moves)
	for simplifyMoves(&moves) {
	}
	var b strings.Builder
	for _, m := range moves {
		b.WriteString(m.String())
	}
	return b.String()
}

// simplifyMoves collapses the first adjacent pair of identical
// quarter/inverse-quarter moves into a double, in place, and reports
// whether it found one. Called repeatedly until it returns false.
func simplifyMoves(moves *[]Move) bool {
	ms := *moves
	for i := 1; i < len(ms); i++ {
		if ms[i] == ms[i-1] && (ms[i].Power == Quarter || ms[i].Power == Inverse) {
			doubled := Double
			if ms[i].Power == Inverse {
				doubled = DoubleInverse
			}
			ms[i-1] = Move{ms[i].Family, doubled}
			ms = append(ms[:i], ms[i+1:]...)
			*moves = ms
			return true
		}
	}
	return false
}

// SolvingMoves renders the sequence that returns s to solved: the
// history reversed, each move inverted.
func (s *State) SolvingMoves() string {
	var b strings.Builder
	for i := len(s.moves) - 1; i >= 0; i-- {
		b.WriteString(s.moves[i].Inverse().String())
	}
	return b.String()
}

// FFTMLength is the move-history length in the Fifth-turn metric: a
// quarter turn costs 1, a double turn costs 2.
func (s *State) FFTMLength() int {
	length := 0
	for _, m := range s.moves {
		if m.IsDouble() {
			length += 2
		} else {
			length++
		}
	}
	return length
}

// FTMLength is the move-history length in the Face-turn metric: any
// turn costs 1, but two adjacent turns of the same face collapse to 1.
func (s *State) FTMLength() int {
	length := len(s.moves)
	for i := 1; i < len(s.moves); i++ {
		if s.moves[i].sameFamily(s.moves[i-1]) {
			length--
		}
	}
	return length
}

// StateEquals reports whether s and other describe the same Last
// Layer, honoring s's ignore masks (keyed by the piece identity
// occupying each slot, not the slot index) so callers can treat a
// subset of pieces as don't-care — e.g. OLL-only comparisons that
// disregard edge permutation.
func (s *State) StateEquals(other *State) bool {
	for i := 0; i < NumCorners; i++ {
		piece := s.cornerPositions[i]
		if s.cornerPositions[i] != other.cornerPositions[i] && !s.ignoreCornerPositions[piece] {
			return false
		}
		if s.cornerOrientation(CornerPosition(i)) != other.cornerOrientation(CornerPosition(i)) && !s.ignoreCornerOrientations[piece] {
			return false
		}
	}
	for i := 0; i < NumEdges; i++ {
		piece := s.edgePositions[i]
		if s.edgePositions[i] != other.edgePositions[i] && !s.ignoreEdgePositions[piece] {
			return false
		}
		if s.edgeOrientation(EdgePosition(i)) != other.edgeOrientation(EdgePosition(i)) && !s.ignoreEdgeOrientations[piece] {
			return false
		}
	}
	return true
}
