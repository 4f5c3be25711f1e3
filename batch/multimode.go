package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/llminxsolver/memoryconfig"
	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/searchmode"
	"github.com/katalvlaran/llminxsolver/solver"
)

// MultiModeConfig configures a search over several search_mode values
// at once, run concurrently against the same start state.
//
// Grounded on original_source/llminxsolver-rs/src/parallel_solver.rs.
type MultiModeConfig struct {
	Modes                    []searchmode.Mode
	Metric                   searchmode.Metric
	MaxSearchDepth           int
	LimitDepth               bool
	MemoryConfig             memoryconfig.Config
	IgnoreCornerPositions    bool
	IgnoreEdgePositions      bool
	IgnoreCornerOrientations bool
	IgnoreEdgeOrientations   bool
}

// DefaultMultiModeConfig mirrors ParallelSolver::new's single-mode default.
func DefaultMultiModeConfig() MultiModeConfig {
	return MultiModeConfig{
		Modes:          []searchmode.Mode{searchmode.RU},
		Metric:         searchmode.MetricFifth,
		MaxSearchDepth: 12,
		MemoryConfig:   memoryconfig.ForDesktop(),
	}
}

// SolveMultiMode runs cfg.Modes concurrently against start. A
// single-mode config delegates to one solver.Solver and returns its
// solutions directly. A multi-mode config spawns one independent
// solver per mode and computes a per-mode memory config
// (total_budget/len(modes) memory, max(1, search_threads/len(modes))
// threads); solver.Solver takes no memory or thread setting, so that
// split does not limit any mode's search. It tags every status
// event with the owning mode's name, and (matching the original's
// "multi-mode never returns solutions directly, only via callback"
// behavior) returns nil: solutions surface exclusively as SolutionFound
// events on statusCallback.
func SolveMultiMode(start *minx.State, cfg MultiModeConfig, interrupted *atomic.Bool, statusCallback StatusCallback) []string {
	runID := uuid.New()
	fire(statusCallback, StatusEvent{EventType: StartSearch, RunID: runID, Message: "Starting search...", Progress: 0})

	if len(cfg.Modes) <= 1 {
		mode := searchmode.RU
		if len(cfg.Modes) == 1 {
			mode = cfg.Modes[0]
		}
		s := soloSolver(mode, cfg)
		s.SetStart(start.Clone())
		s.SetStatusCallback(func(ev solver.StatusEvent) {
			fire(statusCallback, StatusEvent{
				EventType: batchEventType(ev.EventType), RunID: runID,
				ModeName: mode.String(), Message: ev.Message, Progress: ev.Progress,
			})
		})
		stop := watchInterruptAsync(s, interrupted)
		defer close(stop)
		return s.Solve()
	}

	threadsPerMode := cfg.MemoryConfig.SearchThreads / len(cfg.Modes)
	if threadsPerMode < 1 {
		threadsPerMode = 1
	}
	perModeBudgetMB := cfg.MemoryConfig.BudgetMB() / int64(len(cfg.Modes))

	runStart := time.Now()
	var wg sync.WaitGroup
	for _, mode := range cfg.Modes {
		wg.Add(1)
		go func(mode searchmode.Mode) {
			defer wg.Done()

			perModeCfg := cfg
			perModeCfg.MemoryConfig = memoryconfig.New(perModeBudgetMB, threadsPerMode, threadsPerMode)
			s := soloSolver(mode, perModeCfg)
			s.SetStart(start.Clone())
			s.SetStatusCallback(func(ev solver.StatusEvent) {
				fire(statusCallback, StatusEvent{
					EventType: batchEventType(ev.EventType), RunID: runID,
					ModeName: mode.String(), Message: ev.Message, Progress: ev.Progress,
				})
			})
			stop := watchInterruptAsync(s, interrupted)
			defer close(stop)

			s.Solve()
		}(mode)
	}
	wg.Wait()

	fire(statusCallback, StatusEvent{
		EventType: FinishSearch, RunID: runID, Progress: 1,
		Message: "All modes finished in " + time.Since(runStart).Round(time.Millisecond).String(),
	})

	return nil
}

func soloSolver(mode searchmode.Mode, cfg MultiModeConfig) *solver.Solver {
	s := solver.New()
	s.SetMode(mode)
	s.SetMetric(cfg.Metric)
	s.SetMaxDepth(cfg.MaxSearchDepth)
	s.SetLimitDepth(cfg.LimitDepth)
	s.SetIgnoreCornerPositions(cfg.IgnoreCornerPositions)
	s.SetIgnoreEdgePositions(cfg.IgnoreEdgePositions)
	s.SetIgnoreCornerOrientations(cfg.IgnoreCornerOrientations)
	s.SetIgnoreEdgeOrientations(cfg.IgnoreEdgeOrientations)
	return s
}

// watchInterruptAsync polls interrupted every 50ms and forwards a stop
// request to s, exactly as parallel_solver.rs's per-mode watcher
// thread does; closing the returned channel stops the poll once s's
// own Solve call has returned.
func watchInterruptAsync(s *solver.Solver, interrupted *atomic.Bool) chan struct{} {
	stop := make(chan struct{})
	go func() {
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
	}()
	return stop
}
