package scramble

import (
	"strings"

	"github.com/katalvlaran/llminxsolver/minx"
)

// ProgressCallback reports generator progress as (states generated so
// far, human-readable message), fired roughly every 10 new states and
// once more, unconditionally, at the end.
type ProgressCallback func(count int, message string)

// Generator expands a ParsedScramble into a set of starting states,
// by cloning and mutating a base state segment by segment.
type Generator struct {
	base        *minx.State
	interrupted func() bool
	callback    ProgressCallback
	equivalence *Handler
}

// NewGenerator returns a Generator that starts every case from base.
func NewGenerator(base *minx.State) *Generator { return &Generator{base: base} }

// NewSolvedGenerator returns a Generator that starts every case from solved.
func NewSolvedGenerator() *Generator { return NewGenerator(minx.New()) }

// SetInterrupted wires a cancellation poll checked between segments
// and inside generator BFS expansion.
func (g *Generator) SetInterrupted(f func() bool) { g.interrupted = f }

// SetCallback wires a progress callback.
func (g *Generator) SetCallback(cb ProgressCallback) { g.callback = cb }

// SetEquivalence wires an equivalence Handler used to normalize states
// for dedup instead of the default identity normalization.
func (g *Generator) SetEquivalence(h *Handler) { g.equivalence = h }

func (g *Generator) isInterrupted() bool { return g.interrupted != nil && g.interrupted() }

func (g *Generator) fireCallback(count int, message string) {
	if g.callback != nil {
		g.callback(count, message)
	}
}

func (g *Generator) normalize(s *minx.State) NormalizedState {
	if g.equivalence != nil {
		return g.equivalence.Normalize(s)
	}
	return FromState(s)
}

// Generate walks every segment of parsed in order, returning the full
// (unfiltered) set of states each segment's branching produces.
func (g *Generator) Generate(parsed ParsedScramble) ([]GeneratedState, error) {
	states := []GeneratedState{NewGeneratedState(g.base.Clone(), "")}

	for _, seg := range parsed.Segments {
		if g.isInterrupted() {
			return nil, newErr(ErrInvalidScramble, "generation interrupted")
		}

		var err error
		switch seg.Kind {
		case SegmentPlain:
			states, err = g.applyPlainMoves(states, seg.Plain)
		case SegmentSeries:
			states, err = g.applySeries(states, seg.Options)
		case SegmentGenerators:
			states, err = g.applyGenerators(states, seg.Options)
		}
		if err != nil {
			return nil, err
		}
	}

	return states, nil
}

// GenerateFiltered is Generate with the solved state and any "trivial"
// setup (every token of the setup string identical) removed.
func (g *Generator) GenerateFiltered(parsed ParsedScramble) ([]GeneratedState, error) {
	states, err := g.Generate(parsed)
	if err != nil {
		return nil, err
	}

	solved := minx.New()
	filtered := states[:0]
	for _, s := range states {
		if s.State.StateEquals(solved) {
			continue
		}
		if isTrivialSetup(s.SetupMoves) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}

// isTrivialSetup is a heuristic filter (spec.md §9 Open Question, kept
// as stated in the original rather than derived from an invariant):
// a setup is "trivial" when it has two or more whitespace-separated
// tokens and all of them are identical (e.g. "U U U U").
func isTrivialSetup(setupMoves string) bool {
	trimmed := strings.TrimSpace(setupMoves)
	if trimmed == "" {
		return false
	}
	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 {
		return false
	}
	first := tokens[0]
	for _, t := range tokens[1:] {
		if t != first {
			return false
		}
	}
	return true
}

func joinSetup(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

func (g *Generator) applyPlainMoves(states []GeneratedState, movesStr string) ([]GeneratedState, error) {
	moves, err := ParseMoves(movesStr)
	if err != nil {
		return nil, err
	}
	out := make([]GeneratedState, len(states))
	for i, gs := range states {
		clone := gs.State.Clone()
		for _, m := range moves {
			clone.ApplyMove(m)
		}
		out[i] = GeneratedState{State: clone, SetupMoves: joinSetup(gs.SetupMoves, movesStr)}
	}
	return out, nil
}

func (g *Generator) applySeries(states []GeneratedState, options []string) ([]GeneratedState, error) {
	deduped := make(map[stateKey]GeneratedState)
	for _, gs := range states {
		key := hashNormalizedState(g.normalize(gs.State))
		if _, ok := deduped[key]; !ok {
			deduped[key] = gs
		}
	}

	next := make(map[stateKey]GeneratedState)
	for _, option := range options {
		moves, err := ParseMoves(option)
		if err != nil {
			return nil, err
		}
		for _, gs := range deduped {
			clone := gs.State.Clone()
			for _, m := range moves {
				clone.ApplyMove(m)
			}
			key := hashNormalizedState(g.normalize(clone))
			if _, ok := next[key]; !ok {
				next[key] = GeneratedState{State: clone, SetupMoves: joinSetup(gs.SetupMoves, option)}
			}
		}
	}

	out := make([]GeneratedState, 0, len(next))
	for _, gs := range next {
		out = append(out, gs)
	}
	return out, nil
}

func (g *Generator) applyGenerators(states []GeneratedState, generators []string) ([]GeneratedState, error) {
	generatorMoves := make([][]minx.Move, 0, len(generators))
	for _, gen := range generators {
		moves, err := ParseMoves(gen)
		if err != nil {
			return nil, err
		}
		generatorMoves = append(generatorMoves, moves)
	}

	allStates := make(map[stateKey]struct{}, len(states))
	result := make([]GeneratedState, 0, len(states))
	for _, gs := range states {
		key := hashNormalizedState(g.normalize(gs.State))
		if _, ok := allStates[key]; !ok {
			allStates[key] = struct{}{}
			result = append(result, gs)
		}
	}

	queue := make([]GeneratedState, len(result))
	copy(queue, result)
	lastCallbackCount := len(result)

	for len(queue) > 0 {
		if g.isInterrupted() {
			return nil, newErr(ErrInvalidScramble, "generation interrupted")
		}

		current := queue[0]
		queue = queue[1:]

		if len(result)-lastCallbackCount >= 10 {
			g.fireCallback(len(result), "Generating states...")
			lastCallbackCount = len(result)
		}

		for gi, moves := range generatorMoves {
			if g.isInterrupted() {
				return nil, newErr(ErrInvalidScramble, "generation interrupted")
			}

			clone := current.State.Clone()
			for _, m := range moves {
				clone.ApplyMove(m)
			}
			key := hashNormalizedState(g.normalize(clone))
			if _, seen := allStates[key]; seen {
				continue
			}
			allStates[key] = struct{}{}

			setup := strings.TrimSpace(joinSetup(current.SetupMoves, strings.TrimSpace(generators[gi])))
			next := GeneratedState{State: clone, SetupMoves: setup}
			queue = append(queue, next)
			result = append(result, next)
		}
	}

	g.fireCallback(len(result), "Generation complete")
	return result, nil
}
