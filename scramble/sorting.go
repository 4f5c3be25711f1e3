package scramble

import (
	"sort"

	"github.com/katalvlaran/llminxsolver/minx"
)

// CaseSorter orders generated cases by a sequence of SortCriterion
// rules, most significant first, falling back to setup-move string
// order to break any remaining tie.
type CaseSorter struct {
	criteria []SortCriterion
	pieceMap PieceMap
}

// NewCaseSorter returns a CaseSorter applying criteria in order,
// resolving piece names against pieceMap.
func NewCaseSorter(criteria []SortCriterion, pieceMap PieceMap) *CaseSorter {
	return &CaseSorter{criteria: criteria, pieceMap: pieceMap}
}

// Sort orders states in place and renumbers their CaseNumber 1..len(states).
func (c *CaseSorter) Sort(states []GeneratedState) {
	sort.SliceStable(states, func(i, j int) bool {
		return c.less(states[i], states[j])
	})
	for i := range states {
		states[i].CaseNumber = i + 1
	}
}

func (c *CaseSorter) less(a, b GeneratedState) bool {
	for _, crit := range c.criteria {
		switch cmp := c.compareByCriterion(a.State, b.State, crit); {
		case cmp < 0:
			return true
		case cmp > 0:
			return false
		}
	}
	return a.SetupMoves < b.SetupMoves
}

func (c *CaseSorter) compareByCriterion(a, b *minx.State, crit SortCriterion) int {
	switch crit.Kind {
	case SortSetPriority:
		return c.compareSetPriority(a, b, crit.Pieces)
	case SortOrientationAt:
		return c.compareOrientationAt(a, b, crit.Pieces)
	case SortOrientationOf:
		return c.compareOrientationOf(a, b, crit.Pieces)
	case SortPermutationAt:
		return c.comparePermutationAt(a, b, crit.Pieces)
	case SortPermutationOf:
		return c.comparePermutationOf(a, b, crit.Pieces)
	default:
		return 0
	}
}

func (c *CaseSorter) compareSetPriority(a, b *minx.State, pieces []string) int {
	type key struct {
		isCorner bool
		idx      int
	}
	priority := make(map[key]int, len(pieces))
	for i, name := range pieces {
		if idx, ok := c.pieceMap.GetCorner(name); ok {
			priority[key{true, idx}] = i
		} else if idx, ok := c.pieceMap.GetEdge(name); ok {
			priority[key{false, idx}] = i
		}
	}
	unlisted := len(pieces)

	ap, bp := a.CornerPositions(), b.CornerPositions()
	for i := 0; i < minx.NumCorners; i++ {
		pa, ok := priority[key{true, int(ap[i])}]
		if !ok {
			pa = unlisted
		}
		pb, ok := priority[key{true, int(bp[i])}]
		if !ok {
			pb = unlisted
		}
		if pa != pb {
			return pa - pb
		}
	}

	ae, be := a.EdgePositions(), b.EdgePositions()
	for i := 0; i < minx.NumEdges; i++ {
		pa, ok := priority[key{false, int(ae[i])}]
		if !ok {
			pa = unlisted
		}
		pb, ok := priority[key{false, int(be[i])}]
		if !ok {
			pb = unlisted
		}
		if pa != pb {
			return pa - pb
		}
	}

	return 0
}

func countOrientedAt(s *minx.State, pieceMap PieceMap, pieces []string) int {
	count := 0
	for _, name := range pieces {
		if idx, ok := pieceMap.GetCorner(name); ok {
			if s.CornerOrientationAt(minx.CornerPosition(idx)) == 0 {
				count++
			}
		} else if idx, ok := pieceMap.GetEdge(name); ok {
			if s.EdgeOrientationAt(minx.EdgePosition(idx)) == 0 {
				count++
			}
		}
	}
	return count
}

func (c *CaseSorter) compareOrientationAt(a, b *minx.State, pieces []string) int {
	if d := countOrientedAt(b, c.pieceMap, pieces) - countOrientedAt(a, c.pieceMap, pieces); d != 0 {
		return d
	}
	for _, name := range pieces {
		if idx, ok := c.pieceMap.GetCorner(name); ok {
			if d := int(a.CornerOrientationAt(minx.CornerPosition(idx))) - int(b.CornerOrientationAt(minx.CornerPosition(idx))); d != 0 {
				return d
			}
		} else if idx, ok := c.pieceMap.GetEdge(name); ok {
			if d := int(a.EdgeOrientationAt(minx.EdgePosition(idx))) - int(b.EdgeOrientationAt(minx.EdgePosition(idx))); d != 0 {
				return d
			}
		}
	}
	return 0
}

func findCornerByPiece(s *minx.State, pieceIdx int) (int, bool) {
	for slot, p := range s.CornerPositions() {
		if int(p) == pieceIdx {
			return slot, true
		}
	}
	return 0, false
}

func findEdgeByPiece(s *minx.State, pieceIdx int) (int, bool) {
	for slot, p := range s.EdgePositions() {
		if int(p) == pieceIdx {
			return slot, true
		}
	}
	return 0, false
}

func (c *CaseSorter) compareOrientationOf(a, b *minx.State, pieces []string) int {
	for _, name := range pieces {
		if pieceIdx, ok := c.pieceMap.GetCorner(name); ok {
			la, okA := findCornerByPiece(a, pieceIdx)
			lb, okB := findCornerByPiece(b, pieceIdx)
			if okA && okB {
				if d := int(a.CornerOrientationAt(minx.CornerPosition(la))) - int(b.CornerOrientationAt(minx.CornerPosition(lb))); d != 0 {
					return d
				}
			}
		} else if pieceIdx, ok := c.pieceMap.GetEdge(name); ok {
			la, okA := findEdgeByPiece(a, pieceIdx)
			lb, okB := findEdgeByPiece(b, pieceIdx)
			if okA && okB {
				if d := int(a.EdgeOrientationAt(minx.EdgePosition(la))) - int(b.EdgeOrientationAt(minx.EdgePosition(lb))); d != 0 {
					return d
				}
			}
		}
	}
	return 0
}

func (c *CaseSorter) comparePermutationAt(a, b *minx.State, pieces []string) int {
	for _, name := range pieces {
		if idx, ok := c.pieceMap.GetCorner(name); ok {
			if d := int(a.CornerPositions()[idx]) - int(b.CornerPositions()[idx]); d != 0 {
				return d
			}
		} else if idx, ok := c.pieceMap.GetEdge(name); ok {
			if d := int(a.EdgePositions()[idx]) - int(b.EdgePositions()[idx]); d != 0 {
				return d
			}
		}
	}
	return 0
}

func (c *CaseSorter) comparePermutationOf(a, b *minx.State, pieces []string) int {
	for _, name := range pieces {
		if pieceIdx, ok := c.pieceMap.GetCorner(name); ok {
			pa, _ := findCornerByPiece(a, pieceIdx)
			pb, _ := findCornerByPiece(b, pieceIdx)
			if d := pa - pb; d != 0 {
				return d
			}
		} else if pieceIdx, ok := c.pieceMap.GetEdge(name); ok {
			pa, _ := findEdgeByPiece(a, pieceIdx)
			pb, _ := findEdgeByPiece(b, pieceIdx)
			if d := pa - pb; d != 0 {
				return d
			}
		}
	}
	return 0
}
