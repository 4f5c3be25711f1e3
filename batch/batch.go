package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/llminxsolver/memoryconfig"
	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/scramble"
	"github.com/katalvlaran/llminxsolver/searchmode"
	"github.com/katalvlaran/llminxsolver/solver"
)

type batchCase struct {
	caseNumber int
	setupMoves string
	start      *minx.State
	solved     atomic.Bool
}

// ignoreFirstFive mirrors solver's own last-layer ignore mask.
var ignoreFirstFive = func() (c [minx.NumCorners]bool, e [minx.NumEdges]bool) {
	for i := 0; i < 5; i++ {
		c[i] = true
		e[i] = true
	}
	return
}()

func buildCases(states []scramble.GeneratedState, cfg Config, equivalence *scramble.Handler) []*batchCase {
	cases := make([]*batchCase, len(states))
	for i, gs := range states {
		start := gs.State.Clone()
		start.ClearMoves()
		if equivalence != nil {
			equivalence.ApplyToState(start)
		}
		applyIgnoreFlags(start, cfg)
		cases[i] = &batchCase{caseNumber: gs.CaseNumber, setupMoves: gs.SetupMoves, start: start}
	}
	return cases
}

func applyIgnoreFlags(s *minx.State, cfg Config) {
	if cfg.IgnoreCornerPositions {
		s.SetIgnoreCornerPositions(ignoreFirstFive)
	}
	if cfg.IgnoreEdgePositions {
		s.SetIgnoreEdgePositions(ignoreFirstFive)
	}
	if cfg.IgnoreCornerOrientations {
		s.SetIgnoreCornerOrientations(ignoreFirstFive)
	}
	if cfg.IgnoreEdgeOrientations {
		s.SetIgnoreEdgeOrientations(ignoreFirstFive)
	}
}

func newCaseSolver(cfg Config) *solver.Solver {
	s := solver.WithConfig(cfg.Mode, cfg.PruningDepth)
	s.SetMetric(cfg.Metric)
	s.SetMaxDepth(cfg.MaxSearchDepth)
	s.SetLimitDepth(true)
	s.SetIgnoreCornerPositions(cfg.IgnoreCornerPositions)
	s.SetIgnoreEdgePositions(cfg.IgnoreEdgePositions)
	s.SetIgnoreCornerOrientations(cfg.IgnoreCornerOrientations)
	s.SetIgnoreEdgeOrientations(cfg.IgnoreEdgeOrientations)
	return s
}

// tableMemoryBytes estimates the resident size of every pruning table
// cfg.Mode uses, for calculateMaxConcurrent's budget split.
func tableMemoryBytes(mode searchmode.Mode) int64 {
	var total int64
	for _, p := range searchmode.CreatePruners(mode) {
		total += int64(p.TableSize())
	}
	return total
}

// calculateMaxConcurrent mirrors solver.rs's calculate_max_concurrent:
// the search budget (90% of total, minus table memory and per-thread
// stack overhead) divided by an estimated per-case footprint, clamped
// to [1, totalCases].
func calculateMaxConcurrent(cfg Config, tableBytes int64, numThreads, numMoves, totalCases int) int {
	budgetBytes := int64(float64(cfg.MemoryConfig.TotalBudgetBytes) * upperBoundFraction)
	searchBudget := budgetBytes - tableBytes
	if searchBudget < 0 {
		searchBudget = 0
	}

	prunerInstanceBytes := int64(len(searchmode.CreatePruners(cfg.Mode))) * 256
	perCaseMoves := numMoves
	if numThreads < perCaseMoves {
		perCaseMoves = numThreads
	}
	perCaseBytes := perCaseBaseBytes + prunerInstanceBytes*int64(perCaseMoves)

	threadOverhead := int64(perThreadStackBytes) * int64(numThreads)
	effectiveBudget := searchBudget - threadOverhead
	if effectiveBudget < 0 {
		effectiveBudget = 0
	}

	maxConcurrent := totalCases
	if perCaseBytes > 0 {
		maxConcurrent = int(effectiveBudget / perCaseBytes)
		if maxConcurrent < minConcurrentCases {
			maxConcurrent = minConcurrentCases
		}
	}
	if maxConcurrent > totalCases {
		maxConcurrent = totalCases
	}
	if maxConcurrent < minConcurrentCases {
		maxConcurrent = minConcurrentCases
	}
	return maxConcurrent
}

func fire(cb StatusCallback, ev StatusEvent) {
	if cb != nil {
		cb(ev)
	}
}

// Solve runs cfg's search_mode/metric against every generated state,
// fanning cases out across chunks of memory-budget-derived concurrency
// (spec.md §4.G "Batch"). Unlike the original, which re-chunks work at
// per-depth granularity across all cases sharing one in-memory table
// set, each case here runs its own solver.Solver end to end (covering
// every depth internally); pruning tables are still built only once in
// effect, since a throwaway bootstrap solve over the solved start
// builds and disk-caches every table (via pruner.SaveTable/LoadTable)
// before any case runs, and every case then loads the cached copy. RSS is sampled and concurrency adjusted between chunks
// of whole cases rather than between depths of one chunk — see
// DESIGN.md for the full rationale.
func Solve(
	states []scramble.GeneratedState,
	cfg Config,
	equivalence *scramble.Handler,
	interrupted *atomic.Bool,
	statusCallback StatusCallback,
	caseSolvedCallback CaseSolvedCallback,
) Results {
	if len(states) == 0 {
		return NewResults(0)
	}

	runID := uuid.New()
	startTime := time.Now()
	totalCases := len(states)

	fire(statusCallback, StatusEvent{EventType: StartSearch, RunID: runID, Message: "Starting batch solve...", Progress: 0})

	cases := buildCases(states, cfg, equivalence)

	// Step 1: build (and disk-cache) every pruning table cfg.Mode needs,
	// once, via a throwaway solver over the trivial solved start.
	bootstrap := newCaseSolver(cfg)
	bootstrap.SetStatusCallback(func(ev solver.StatusEvent) {
		forwardTableEvents(statusCallback, runID, ev)
	})
	bootstrap.Solve()

	tableBytes := tableMemoryBytes(cfg.Mode)
	numThreads := cfg.MemoryConfig.SearchThreads
	if numThreads < 1 {
		numThreads = 1
	}
	numMoves := len(searchmode.PossibleMoves(cfg.Mode))
	maxConcurrent := calculateMaxConcurrent(cfg, tableBytes, numThreads, numMoves, totalCases)

	solutionCh := make(chan solutionMsg, 256)
	var aggWG sync.WaitGroup
	aggWG.Add(1)

	var mu sync.Mutex
	caseSolutions := make(map[int][]string, totalCases)
	notified := make(map[int]bool, totalCases)

	go func() {
		defer aggWG.Done()
		for msg := range solutionCh {
			mu.Lock()
			caseSolutions[msg.caseNumber] = append(caseSolutions[msg.caseNumber], msg.text)
			firstTime := !notified[msg.caseNumber]
			if firstTime {
				notified[msg.caseNumber] = true
			}
			mu.Unlock()

			fire(statusCallback, StatusEvent{
				EventType: SolutionFound, RunID: runID, CaseNumber: msg.caseNumber,
				Message: msg.text, Progress: 0,
			})

			if firstTime && caseSolvedCallback != nil {
				mu.Lock()
				sols := append([]string(nil), caseSolutions[msg.caseNumber]...)
				mu.Unlock()
				caseSolvedCallback(CaseResult{
					CaseNumber:   msg.caseNumber,
					SetupMoves:   msg.setupMoves,
					Solutions:    sols,
					BestSolution: sols[0],
					SolveTime:    time.Since(startTime).Seconds(),
				})
			}
		}
	}()

	idx := 0
	for idx < len(cases) && !isInterrupted(interrupted) {
		chunk := cases[idx:min(idx+maxConcurrent, len(cases))]
		idx += len(chunk)

		rssBefore := memoryconfig.CurrentRSSBytes()

		g := new(errgroup.Group)
		for _, ce := range chunk {
			ce := ce
			g.Go(func() error {
				runOneCase(cfg, ce, solutionCh, interrupted, runID, statusCallback)
				return nil
			})
		}
		_ = g.Wait()

		rssAfter := memoryconfig.CurrentRSSBytes()
		maxConcurrent = adjustConcurrency(statusCallback, runID, cfg, rssBefore, rssAfter, maxConcurrent, totalCases)
	}

	close(solutionCh)
	aggWG.Wait()

	elapsed := time.Since(startTime).Seconds()
	results := NewResults(totalCases)
	mu.Lock()
	for _, ce := range cases {
		sols := caseSolutions[ce.caseNumber]
		wasNotified := notified[ce.caseNumber]
		result := CaseResult{CaseNumber: ce.caseNumber, SetupMoves: ce.setupMoves, Solutions: sols, SolveTime: elapsed}
		if len(sols) > 0 {
			result.BestSolution = sols[0]
		}
		if !wasNotified && caseSolvedCallback != nil {
			caseSolvedCallback(result)
		}
		results.addResult(result)
	}
	mu.Unlock()

	results.TotalTime = elapsed
	if len(results.CaseResults) > 0 {
		results.AverageTimePerCase = elapsed / float64(len(results.CaseResults))
	}

	fire(statusCallback, StatusEvent{
		EventType: FinishSearch, RunID: runID, Progress: 1,
		Message: "Batch solve complete.",
	})

	return results
}

type solutionMsg struct {
	caseNumber int
	setupMoves string
	text       string
}

func isInterrupted(flag *atomic.Bool) bool { return flag != nil && flag.Load() }

// runOneCase drives one case's full search, forwarding SolutionFound
// events to the aggregator and, if cfg.StopAfterFirst, interrupting its
// own solver as soon as one solution is found — the case-granularity
// analogue of the original's atomically-checked per-case "solved" flag.
func runOneCase(cfg Config, ce *batchCase, solutionCh chan<- solutionMsg, interrupted *atomic.Bool, runID uuid.UUID, statusCallback StatusCallback) {
	s := newCaseSolver(cfg)
	s.SetStart(ce.start)

	stop := make(chan struct{})
	defer close(stop)
	go forwardInterrupt(s, interrupted, stop)

	s.SetStatusCallback(func(ev solver.StatusEvent) {
		if ev.EventType == solver.SolutionFound {
			ce.solved.Store(true)
			solutionCh <- solutionMsg{caseNumber: ce.caseNumber, setupMoves: ce.setupMoves, text: ev.Message}
			if cfg.StopAfterFirst {
				s.Interrupt()
			}
			return
		}
		fire(statusCallback, StatusEvent{
			EventType: batchEventType(ev.EventType), RunID: runID, CaseNumber: ce.caseNumber,
			Message: ev.Message, Progress: ev.Progress,
		})
	})

	s.Solve()
}

// forwardInterrupt polls the batch-level interrupt flag every 50ms and
// forwards it to one case's solver, exactly as parallel_solver.rs's
// per-mode interrupt-watcher thread does.
func forwardInterrupt(s *solver.Solver, interrupted *atomic.Bool, stop <-chan struct{}) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if isInterrupted(interrupted) {
				s.Interrupt()
				return
			}
		}
	}
}

func batchEventType(t solver.StatusEventType) StatusEventType {
	switch t {
	case solver.StartSearch:
		return StartSearch
	case solver.StartDepth:
		return StartDepth
	case solver.EndDepth:
		return EndDepth
	case solver.StartBuildingTable:
		return StartBuildingTable
	case solver.EndBuildingTable:
		return EndBuildingTable
	case solver.FinishSearch:
		return FinishSearch
	case solver.SolutionFound:
		return SolutionFound
	default:
		return Message
	}
}

func forwardTableEvents(cb StatusCallback, runID uuid.UUID, ev solver.StatusEvent) {
	switch ev.EventType {
	case solver.StartBuildingTable, solver.EndBuildingTable, solver.Message:
		fire(cb, StatusEvent{EventType: batchEventType(ev.EventType), RunID: runID, Message: ev.Message, Progress: ev.Progress})
	}
}

// adjustConcurrency mirrors solver.rs's post-depth RSS check: shrink if
// RSS exceeds 90% of budget, grow if it's under 50%, always clamped to
// [1, totalCases]. Fires a MemoryWarning event on either adjustment.
func adjustConcurrency(cb StatusCallback, runID uuid.UUID, cfg Config, rssBefore, rssAfter int64, current, totalCases int) int {
	if rssBefore <= 0 || rssAfter <= 0 {
		return current
	}
	budgetBytes := int64(float64(cfg.MemoryConfig.TotalBudgetBytes) * upperBoundFraction)

	switch {
	case rssAfter > budgetBytes && current > minConcurrentCases:
		ratio := float64(budgetBytes) / float64(rssAfter)
		adjusted := int(float64(current) * ratio)
		if adjusted < minConcurrentCases {
			adjusted = minConcurrentCases
		}
		if adjusted != current {
			fire(cb, StatusEvent{
				EventType: MemoryWarning, RunID: runID, Progress: 0,
				Message: "Reducing concurrency due to memory pressure.",
			})
			return adjusted
		}
	case rssAfter < cfg.MemoryConfig.TotalBudgetBytes/2 && current < totalCases:
		headroom := float64(budgetBytes) / float64(max(rssAfter, 1))
		adjusted := int(float64(current) * headroom * 0.8)
		if adjusted > totalCases {
			adjusted = totalCases
		}
		if adjusted < current {
			adjusted = current
		}
		if adjusted > current {
			fire(cb, StatusEvent{
				EventType: MemoryWarning, RunID: runID, Progress: 0,
				Message: "Increasing concurrency; memory headroom available.",
			})
			return adjusted
		}
	}
	return current
}
