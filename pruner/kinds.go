package pruner

import (
	"github.com/katalvlaran/llminxsolver/coordinate"
	"github.com/katalvlaran/llminxsolver/minx"
)

// CornerOrientationPruner coordinates on the base-3 orientation digits
// of a chosen set of corner slots.
type CornerOrientationPruner struct {
	name      string
	tablePath string
	corners   []uint8
}

// NewCornerOrientationPruner builds a CornerOrientationPruner over corners.
func NewCornerOrientationPruner(name, tablePath string, corners []uint8) *CornerOrientationPruner {
	return &CornerOrientationPruner{name: name, tablePath: tablePath, corners: append([]uint8(nil), corners...)}
}

func (p *CornerOrientationPruner) Name() string      { return p.name }
func (p *CornerOrientationPruner) TablePath() string { return p.tablePath }
func (p *CornerOrientationPruner) TableSize() int {
	return int(coordinate.PowersOfThree[len(p.corners)-1])
}

func (p *CornerOrientationPruner) Coordinate(s *minx.State) int {
	return int(coordinate.CornerOrientationCoordinate(s.CornerOrientations(), p.corners))
}

func (p *CornerOrientationPruner) SetState(coord int, s *minx.State) {
	s.SetCornerOrientations(coordinate.DecodeCornerOrientation(uint32(coord), p.corners))
}

func (p *CornerOrientationPruner) UsesCornerPermutation() bool { return false }
func (p *CornerOrientationPruner) UsesEdgePermutation() bool   { return false }
func (p *CornerOrientationPruner) UsesCornerOrientation() bool { return true }
func (p *CornerOrientationPruner) UsesEdgeOrientation() bool   { return false }

// CornerPermutationPruner coordinates on the relative order of a chosen
// set of corner slots (a Lehmer code over corners).
type CornerPermutationPruner struct {
	name      string
	tablePath string
	corners   []uint8
}

// NewCornerPermutationPruner builds a CornerPermutationPruner over corners.
func NewCornerPermutationPruner(name, tablePath string, corners []uint8) *CornerPermutationPruner {
	return &CornerPermutationPruner{name: name, tablePath: tablePath, corners: append([]uint8(nil), corners...)}
}

func (p *CornerPermutationPruner) Name() string      { return p.name }
func (p *CornerPermutationPruner) TablePath() string { return p.tablePath }
func (p *CornerPermutationPruner) TableSize() int {
	return int(coordinate.Fac[len(p.corners)] / 2)
}

func (p *CornerPermutationPruner) Coordinate(s *minx.State) int {
	cp := s.CornerPositions()
	return int(coordinate.PermutationCoordinate(cp[:], p.corners))
}

func (p *CornerPermutationPruner) SetState(coord int, s *minx.State) {
	cp := s.CornerPositions()
	coordinate.DecodePermutation(uint32(coord), cp[:], p.corners)
	s.SetCornerPositions(cp)
}

func (p *CornerPermutationPruner) UsesCornerPermutation() bool { return true }
func (p *CornerPermutationPruner) UsesEdgePermutation() bool   { return false }
func (p *CornerPermutationPruner) UsesCornerOrientation() bool { return false }
func (p *CornerPermutationPruner) UsesEdgeOrientation() bool   { return false }

// EdgeOrientationPruner coordinates on the low bits of a chosen set of
// edge slots' parity-packed orientation word.
type EdgeOrientationPruner struct {
	name      string
	tablePath string
	edges     []uint8
}

// NewEdgeOrientationPruner builds an EdgeOrientationPruner over edges.
func NewEdgeOrientationPruner(name, tablePath string, edges []uint8) *EdgeOrientationPruner {
	return &EdgeOrientationPruner{name: name, tablePath: tablePath, edges: append([]uint8(nil), edges...)}
}

func (p *EdgeOrientationPruner) Name() string      { return p.name }
func (p *EdgeOrientationPruner) TablePath() string { return p.tablePath }
func (p *EdgeOrientationPruner) TableSize() int {
	return int(coordinate.PowersOfTwo[len(p.edges)-1])
}

func (p *EdgeOrientationPruner) Coordinate(s *minx.State) int {
	return int(coordinate.EdgeOrientationCoordinate(s.EdgeOrientations(), len(p.edges)))
}

func (p *EdgeOrientationPruner) SetState(coord int, s *minx.State) {
	s.SetEdgeOrientations(coordinate.DecodeEdgeOrientation(uint32(coord), len(p.edges)))
}

func (p *EdgeOrientationPruner) UsesCornerPermutation() bool { return false }
func (p *EdgeOrientationPruner) UsesEdgePermutation() bool   { return false }
func (p *EdgeOrientationPruner) UsesCornerOrientation() bool { return false }
func (p *EdgeOrientationPruner) UsesEdgeOrientation() bool   { return true }

// EdgePermutationPruner coordinates on the relative order of a chosen
// set of edge slots.
type EdgePermutationPruner struct {
	name      string
	tablePath string
	edges     []uint8
}

// NewEdgePermutationPruner builds an EdgePermutationPruner over edges.
func NewEdgePermutationPruner(name, tablePath string, edges []uint8) *EdgePermutationPruner {
	return &EdgePermutationPruner{name: name, tablePath: tablePath, edges: append([]uint8(nil), edges...)}
}

func (p *EdgePermutationPruner) Name() string      { return p.name }
func (p *EdgePermutationPruner) TablePath() string { return p.tablePath }
func (p *EdgePermutationPruner) TableSize() int {
	return int(coordinate.Fac[len(p.edges)] / 2)
}

func (p *EdgePermutationPruner) Coordinate(s *minx.State) int {
	ep := s.EdgePositions()
	return int(coordinate.PermutationCoordinate(ep[:], p.edges))
}

func (p *EdgePermutationPruner) SetState(coord int, s *minx.State) {
	ep := s.EdgePositions()
	coordinate.DecodePermutation(uint32(coord), ep[:], p.edges)
	s.SetEdgePositions(ep)
}

func (p *EdgePermutationPruner) UsesCornerPermutation() bool { return false }
func (p *EdgePermutationPruner) UsesEdgePermutation() bool   { return true }
func (p *EdgePermutationPruner) UsesCornerOrientation() bool { return false }
func (p *EdgePermutationPruner) UsesEdgeOrientation() bool   { return false }

// SeparationPruner coordinates on which slots a chosen set of corners
// and a chosen set of edges occupy, independent of their relative
// order: a combinatorial rank over corners, folded together with one
// over edges.
type SeparationPruner struct {
	name      string
	tablePath string
	corners   []uint8
	edges     []uint8
}

// NewSeparationPruner builds a SeparationPruner over corners and edges.
func NewSeparationPruner(name, tablePath string, corners, edges []uint8) *SeparationPruner {
	return &SeparationPruner{
		name:      name,
		tablePath: tablePath,
		corners:   append([]uint8(nil), corners...),
		edges:     append([]uint8(nil), edges...),
	}
}

func (p *SeparationPruner) Name() string      { return p.name }
func (p *SeparationPruner) TablePath() string { return p.tablePath }

func (p *SeparationPruner) edgeTableSize() int {
	return int(coordinate.CKN[minx.NumEdges][len(p.edges)])
}

func (p *SeparationPruner) TableSize() int {
	cornerTableSize := int(coordinate.CKN[minx.NumCorners][len(p.corners)])
	return cornerTableSize * p.edgeTableSize()
}

func (p *SeparationPruner) Coordinate(s *minx.State) int {
	cp := s.CornerPositions()
	ep := s.EdgePositions()
	cornerCoord := coordinate.SeparationCoordinate(cp[:], p.corners)
	edgeCoord := coordinate.SeparationCoordinate(ep[:], p.edges)
	return int(cornerCoord)*p.edgeTableSize() + int(edgeCoord)
}

func (p *SeparationPruner) SetState(coord int, s *minx.State) {
	edgeTableSize := p.edgeTableSize()

	ep := s.EdgePositions()
	coordinate.DecodeSeparation(uint32(coord%edgeTableSize), ep[:], p.edges)
	s.SetEdgePositions(ep)

	cp := s.CornerPositions()
	coordinate.DecodeSeparation(uint32(coord/edgeTableSize), cp[:], p.corners)
	s.SetCornerPositions(cp)
}

func (p *SeparationPruner) UsesCornerPermutation() bool { return len(p.corners) > 1 }
func (p *SeparationPruner) UsesEdgePermutation() bool   { return len(p.edges) > 1 }
func (p *SeparationPruner) UsesCornerOrientation() bool { return false }
func (p *SeparationPruner) UsesEdgeOrientation() bool   { return false }

// CompositePruner folds two independent (disjoint-facet) pruners into
// one coordinate space, so a single pruning table lookup can bound two
// facets at once.
type CompositePruner struct {
	name      string
	tablePath string
	a, b      Pruner
}

// NewCompositePruner builds a CompositePruner over a and b.
func NewCompositePruner(name, tablePath string, a, b Pruner) *CompositePruner {
	return &CompositePruner{name: name, tablePath: tablePath, a: a, b: b}
}

func (p *CompositePruner) Name() string      { return p.name }
func (p *CompositePruner) TablePath() string { return p.tablePath }
func (p *CompositePruner) TableSize() int    { return p.a.TableSize() * p.b.TableSize() }

func (p *CompositePruner) Coordinate(s *minx.State) int {
	return p.a.Coordinate(s)*p.b.TableSize() + p.b.Coordinate(s)
}

func (p *CompositePruner) SetState(coord int, s *minx.State) {
	sizeB := p.b.TableSize()
	p.b.SetState(coord%sizeB, s)
	p.a.SetState(coord/sizeB, s)
}

func (p *CompositePruner) UsesCornerPermutation() bool {
	return p.a.UsesCornerPermutation() || p.b.UsesCornerPermutation()
}
func (p *CompositePruner) UsesEdgePermutation() bool {
	return p.a.UsesEdgePermutation() || p.b.UsesEdgePermutation()
}
func (p *CompositePruner) UsesCornerOrientation() bool {
	return p.a.UsesCornerOrientation() || p.b.UsesCornerOrientation()
}
func (p *CompositePruner) UsesEdgeOrientation() bool {
	return p.a.UsesEdgeOrientation() || p.b.UsesEdgeOrientation()
}
