// SPDX-License-Identifier: MIT

// Package scramble compiles the batch scramble DSL (spec.md §4.H) into
// a set of starting states: a small grammar of plain move sequences,
// bracketed series (one case per alternative), and bracketed generator
// sets (BFS-expanded to every state reachable by any combination of
// the generators), followed by equivalence-aware deduplication,
// pre/post-adjust reduction, and sort-criterion ordering.
//
// Grounded on
// original_source/llminxsolver-rs/src/batch_solver/{types,parser,
// generator,equivalence,adjust,sorting}.rs.
package scramble

import (
	"fmt"

	"github.com/katalvlaran/llminxsolver/minx"
)

// Error is a scramble-compilation failure, tagged with the stage that
// produced it so a caller can distinguish a malformed DSL string from
// an unknown piece name without parsing the message text.
type Error struct {
	Kind    ErrorKind
	Message string
}

// ErrorKind classifies an Error, mirroring the original's BatchError variants.
type ErrorKind uint8

const (
	ErrParse ErrorKind = iota
	ErrInvalidMove
	ErrInvalidPiece
	ErrInvalidScramble
	ErrInvalidAdjust
	ErrInvalidEquivalence
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "parse error"
	case ErrInvalidMove:
		return "invalid move"
	case ErrInvalidPiece:
		return "invalid piece"
	case ErrInvalidScramble:
		return "invalid scramble"
	case ErrInvalidAdjust:
		return "invalid adjust"
	case ErrInvalidEquivalence:
		return "invalid equivalence"
	default:
		return "error"
	}
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func newErr(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// SegmentKind distinguishes the three forms a scramble segment can take.
type SegmentKind uint8

const (
	SegmentPlain SegmentKind = iota
	SegmentSeries
	SegmentGenerators
)

// Segment is one piece of a parsed scramble: a plain move string
// applied to every current state, a bracketed series of alternative
// move strings (each producing its own branch of states), or a
// bracketed set of generators (BFS-expanded to closure).
type Segment struct {
	Kind    SegmentKind
	Plain   string
	Options []string // populated for Series and Generators
}

// IsEmpty reports whether the segment carries no moves at all.
func (s Segment) IsEmpty() bool {
	switch s.Kind {
	case SegmentPlain:
		return s.Plain == ""
	default:
		return len(s.Options) == 0
	}
}

// CaseModifiers narrows which generated case numbers are solved, via
// the "#" suffix of a scramble string (spec.md §4.H).
type CaseModifiers struct {
	SpecificCases []int
	Ranges        [][2]int // inclusive [start, end]
	StartFrom     int      // 0 means unset
}

// IsEmpty reports that no modifier at all was given, i.e. every case
// should be solved.
func (m CaseModifiers) IsEmpty() bool {
	return len(m.SpecificCases) == 0 && len(m.Ranges) == 0 && m.StartFrom == 0
}

// ShouldSolve reports whether caseNumber passes m's filter. An empty
// CaseModifiers always passes.
func (m CaseModifiers) ShouldSolve(caseNumber int) bool {
	if m.IsEmpty() {
		return true
	}
	for _, n := range m.SpecificCases {
		if n == caseNumber {
			return true
		}
	}
	for _, r := range m.Ranges {
		if caseNumber >= r[0] && caseNumber <= r[1] {
			return true
		}
	}
	if m.StartFrom != 0 && caseNumber >= m.StartFrom {
		return true
	}
	return false
}

// ParsedScramble is a scramble string broken into its ordered segments
// plus its case-number filter.
type ParsedScramble struct {
	Segments  []Segment
	Modifiers CaseModifiers
}

// IsEmpty reports whether the scramble carries no segments.
func (p ParsedScramble) IsEmpty() bool { return len(p.Segments) == 0 }

// EquivalenceSet names a group of pieces whose permutation among
// themselves does not distinguish otherwise-identical cases.
type EquivalenceSet struct {
	Pieces []string
}

// Contains reports whether piece belongs to the set.
func (e EquivalenceSet) Contains(piece string) bool {
	for _, p := range e.Pieces {
		if p == piece {
			return true
		}
	}
	return false
}

// OrientationGroup restricts a set of pieces to a reduced number of
// distinguishable orientations (e.g. 1 to ignore orientation entirely).
type OrientationGroup struct {
	NumOrientations uint8
	Pieces          []string
}

// SortKind names which field of a GeneratedState a SortCriterion compares.
type SortKind uint8

const (
	SortSetPriority SortKind = iota
	SortOrientationAt
	SortOrientationOf
	SortPermutationAt
	SortPermutationOf
)

// SortCriterion is one ordering rule a CaseSorter applies, most
// significant criterion first.
type SortCriterion struct {
	Kind   SortKind
	Pieces []string
}

// Config bundles every DSL-adjacent setting a batch run accepts beyond
// the scramble string itself: reduction and ordering rules layered on
// top of the generated case list.
type Config struct {
	Scramble          string
	PreAdjust         []string
	PostAdjust        []string
	Equivalences      []EquivalenceSet
	OrientationGroups []OrientationGroup
	SortCriteria      []SortCriterion
	StopAfterFirst    bool
}

// GeneratedState is one compiled starting position: the puzzle state
// itself, the move string that produced it from solved, and its final
// 1-based case number once sorting/filtering has settled.
type GeneratedState struct {
	State      *minx.State
	SetupMoves string
	CaseNumber int
}

// NewGeneratedState returns a GeneratedState with case number 0 (unassigned).
func NewGeneratedState(state *minx.State, setupMoves string) GeneratedState {
	return GeneratedState{State: state, SetupMoves: setupMoves}
}

// CaseResult is the outcome of solving one generated case.
type CaseResult struct {
	CaseNumber   int
	SetupMoves   string
	Solutions    []string
	BestSolution string
	SolveTime    float64
}

// IsSolved reports whether at least one solution was found.
func (r CaseResult) IsSolved() bool { return len(r.Solutions) > 0 }

// Results aggregates every case's outcome across a batch run.
type Results struct {
	TotalCases         int
	SolvedCases        int
	FailedCases        []int
	CaseResults        []CaseResult
	TotalTime          float64
	AverageTimePerCase float64
}

// NewResults returns an empty Results sized for totalCases.
func NewResults(totalCases int) Results {
	return Results{TotalCases: totalCases, CaseResults: make([]CaseResult, 0, totalCases)}
}

// AddResult folds r into the aggregate, updating solved/failed counts
// and the running time average.
func (res *Results) AddResult(r CaseResult) {
	if r.IsSolved() {
		res.SolvedCases++
	} else {
		res.FailedCases = append(res.FailedCases, r.CaseNumber)
	}
	res.TotalTime += r.SolveTime
	res.CaseResults = append(res.CaseResults, r)
	if n := len(res.CaseResults); n > 0 {
		res.AverageTimePerCase = res.TotalTime / float64(n)
	}
}

// SuccessRate is the fraction of cases solved, 0 if none were attempted.
func (res Results) SuccessRate() float64 {
	if res.TotalCases == 0 {
		return 0
	}
	return float64(res.SolvedCases) / float64(res.TotalCases)
}

// NormalizedState is a hashable signature of a puzzle state, used as a
// dedup key by the generator, equivalence handler, and adjust reducer.
type NormalizedState struct {
	CornerSignature   [minx.NumCorners]uint8
	EdgeSignature     [minx.NumEdges]uint8
	CornerOrientation [minx.NumCorners]uint8
	EdgeOrientation   [minx.NumEdges]uint8
}

// FromState builds the default (equivalence-unaware) NormalizedState
// of a puzzle state.
func FromState(s *minx.State) NormalizedState {
	n := NormalizedState{
		CornerSignature: s.CornerPositions(),
		EdgeSignature:   s.EdgePositions(),
	}
	for i := 0; i < minx.NumCorners; i++ {
		n.CornerOrientation[i] = s.CornerOrientationAt(minx.CornerPosition(i))
	}
	for i := 0; i < minx.NumEdges; i++ {
		n.EdgeOrientation[i] = s.EdgeOrientationAt(minx.EdgePosition(i))
	}
	return n
}
