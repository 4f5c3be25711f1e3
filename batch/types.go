// SPDX-License-Identifier: MIT

// Package batch drives many-case and many-mode optimal searches over a
// set of scramble.GeneratedState starting positions: a single-mode
// batch run shares one search_mode/metric across every case and scales
// its concurrency to a memory budget; a multi-mode run spawns one
// independent search per requested mode. Both report progress through
// status events tagged with a per-run correlation ID so a client can
// demultiplex concurrent batches.
//
// Grounded on original_source/llminxsolver-rs/src/batch_solver/solver.rs
// and src/parallel_solver.rs.
package batch

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/llminxsolver/memoryconfig"
	"github.com/katalvlaran/llminxsolver/searchmode"
)

// StatusEventType classifies a StatusEvent fired during a batch or
// multi-mode run. Mirrors spec.md §6's observable event enum, which is
// a superset of solver.StatusEventType (adding MemoryWarning).
type StatusEventType uint8

const (
	StartSearch StatusEventType = iota
	StartDepth
	EndDepth
	StartBuildingTable
	EndBuildingTable
	Message
	SolutionFound
	MemoryWarning
	FinishSearch
)

// StatusEvent is a progress notification carrying enough context for a
// client to demultiplex a concurrent multi-case or multi-mode run: the
// run's correlation ID, which case and/or mode it concerns (zero value
// if not applicable), a human message and a 0..1 progress fraction.
type StatusEvent struct {
	EventType  StatusEventType
	RunID      uuid.UUID
	CaseNumber int
	ModeName   string
	Depth      int
	Message    string
	Progress   float64
}

// StatusCallback receives every StatusEvent a batch or multi-mode run fires.
type StatusCallback func(StatusEvent)

// CaseSolvedCallback fires once, the first time a case produces a
// solution (or, for a case that never solves, once at the end of the run).
type CaseSolvedCallback func(result CaseResult)

// CaseResult is one case's outcome: which setup it started from, every
// optimal solution found for it, and how long the run as a whole took.
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

func (res *Results) addResult(r CaseResult) {
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

// Config is the batch driver's configuration (spec.md §6's
// "configuration options recognized by the batch driver").
type Config struct {
	Mode                     searchmode.Mode
	Metric                   searchmode.Metric
	PruningDepth             int
	MaxSearchDepth           int
	StopAfterFirst           bool
	MemoryConfig             memoryconfig.Config
	IgnoreCornerPositions    bool
	IgnoreEdgePositions      bool
	IgnoreCornerOrientations bool
	IgnoreEdgeOrientations   bool
}

// DefaultConfig returns a Config matching the teacher's solver
// defaults: RU mode, fifth-turn metric, pruning depth 6 (batch's
// lighter per-case default, vs. solver.Solver's standalone default of
// 12), max search depth 12, desktop memory sizing.
func DefaultConfig() Config {
	return Config{
		Mode:           searchmode.RU,
		Metric:         searchmode.MetricFifth,
		PruningDepth:   6,
		MaxSearchDepth: 12,
		MemoryConfig:   memoryconfig.ForDesktop(),
	}
}

const (
	upperBoundFraction     = 0.90
	minConcurrentCases     = 1
	perCaseBaseBytes int64 = 4 * 1024
	perThreadStackBytes    = 2 * 1024 * 1024
)
