package scramble

import "github.com/katalvlaran/llminxsolver/minx"

// PieceMap translates the human-facing piece names used in equivalence
// sets, orientation groups, and sort criteria ("UC1", "RE3", ...) to
// minx's slot indices.
//
// The name lists below follow minx's own CornerPosition/EdgePosition
// enum order exactly (see piecemap.go's DESIGN.md entry for the one
// place this diverges from the original source's own display strings:
// the three D-layer edge slots, which the original source's own
// PieceMap::default_megaminx names "DE1/DE2/DE3" while minx's
// EdgePosition enum — and every other reference to these slots in this
// module — names them DE3/DE4/DE5; this map uses the latter so a
// lookup here always agrees with minx.EdgePosition.String if one is
// ever added).
type PieceMap struct {
	corners map[string]int
	edges   map[string]int
}

// NewPieceMap returns an empty PieceMap.
func NewPieceMap() PieceMap {
	return PieceMap{corners: make(map[string]int), edges: make(map[string]int)}
}

// AddCorner registers a corner piece name at slot idx.
func (m PieceMap) AddCorner(name string, idx int) { m.corners[name] = idx }

// AddEdge registers an edge piece name at slot idx.
func (m PieceMap) AddEdge(name string, idx int) { m.edges[name] = idx }

// GetCorner returns name's corner slot index, and false if unknown.
func (m PieceMap) GetCorner(name string) (int, bool) { v, ok := m.corners[name]; return v, ok }

// GetEdge returns name's edge slot index, and false if unknown.
func (m PieceMap) GetEdge(name string) (int, bool) { v, ok := m.edges[name]; return v, ok }

// Contains reports whether name is a known corner or edge piece.
func (m PieceMap) Contains(name string) bool {
	_, ok1 := m.corners[name]
	_, ok2 := m.edges[name]
	return ok1 || ok2
}

var megaminxCornerNames = [minx.NumCorners]string{
	"UC1", "UC2", "UC3", "UC4", "UC5",
	"RC1", "RC5", "FC5", "FC1", "FC2",
	"LC1", "LC2", "BLC1", "BLC2", "BRC1",
	"DC1", "DC2",
}

var megaminxEdgeNames = [minx.NumEdges]string{
	"UE1", "UE2", "UE3", "UE4", "UE5",
	"RE2", "RE3", "RE4",
	"FE2", "FE3", "FE4", "FE5",
	"LE3", "LE4", "LE5",
	"BLE3", "BLE4", "BLE5",
	"BRE3", "BRE4",
	"DE3", "DE4", "DE5",
}

// DefaultMegaminx returns the PieceMap naming every last-layer-reachable
// corner and edge slot of the standard Megaminx.
func DefaultMegaminx() PieceMap {
	m := NewPieceMap()
	for i, name := range megaminxCornerNames {
		m.AddCorner(name, i)
	}
	for i, name := range megaminxEdgeNames {
		m.AddEdge(name, i)
	}
	return m
}
