package scramble

// Compile runs the full scramble-compilation pipeline (spec.md §4.H):
// parse the scramble string, parse its equivalence/orientation-group
// declarations, generate and filter states, deduplicate under any
// declared equivalence, reduce under pre/post-adjust symmetry, sort by
// any declared criteria, and number the surviving cases 1..K.
//
// interrupted and progress may be nil. Returns the final case list and
// the equivalence Handler used (nil if no equivalence/orientation
// group was declared), so a caller can apply the same Handler's
// ignore-mask to a solver's start/goal states.
func Compile(cfg Config, interrupted func() bool, progress ProgressCallback) ([]GeneratedState, *Handler, error) {
	parsed, err := Parse(cfg.Scramble)
	if err != nil {
		return nil, nil, err
	}
	if parsed.IsEmpty() {
		return nil, nil, nil
	}

	var handler *Handler
	if len(cfg.Equivalences) > 0 || len(cfg.OrientationGroups) > 0 {
		handler, err = NewHandler(cfg.Equivalences, cfg.OrientationGroups, DefaultMegaminx())
		if err != nil {
			return nil, nil, err
		}
	}

	gen := NewSolvedGenerator()
	gen.SetInterrupted(interrupted)
	gen.SetCallback(progress)
	gen.SetEquivalence(handler)

	states, err := gen.GenerateFiltered(parsed)
	if err != nil {
		return nil, nil, err
	}
	if interrupted != nil && interrupted() {
		return nil, nil, newErr(ErrInvalidScramble, "generation cancelled")
	}

	if handler != nil {
		states = Deduplicate(handler, states)
	}

	if len(cfg.PreAdjust) > 0 || len(cfg.PostAdjust) > 0 {
		adjust, err := NewAdjustHandler(cfg.PreAdjust, cfg.PostAdjust)
		if err != nil {
			return nil, nil, err
		}
		states = adjust.ReduceStates(states, handler)
	}

	if len(cfg.SortCriteria) > 0 {
		sorter := NewCaseSorter(cfg.SortCriteria, DefaultMegaminx())
		sorter.Sort(states)
	} else {
		for i := range states {
			states[i].CaseNumber = i + 1
		}
	}

	return states, handler, nil
}
