// SPDX-License-Identifier: MIT

// Package tablebuilder fills a pattern-database pruning table by
// breadth-first layer expansion from the solved coordinate, switching
// between a forward sweep (expand every state at the current frontier
// depth) and a backward sweep (scan every still-unvisited coordinate
// and test whether one move reaches the previous frontier) depending
// on which direction touches fewer table entries this layer.
//
// Grounded on original_source/llminxsolver-rs/src/solver.rs's
// build_pruning_table.
package tablebuilder

import (
	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/pruner"
)

// Unreached marks a table entry whose minimum distance from solved has
// not yet been discovered.
const Unreached = 0xFF

// Progress is fired once per BFS layer while Build runs.
type Progress func(depth uint8, layerCount int, nodes int, tableSize int)

// Build returns p's pruning table: table[coord] is the fewest moves
// (drawn from moves) needed to reach a state whose p.Coordinate is
// coord, starting from solved, or Unreached if no state within the
// table's depth range was found. interrupted is polled between table
// entries so a caller can abort a long build; progress may be nil.
func Build(p pruner.Pruner, moves []minx.Move, interrupted func() bool, progress Progress) []byte {
	tableSize := p.TableSize()
	table := make([]byte, tableSize)
	for i := range table {
		table[i] = Unreached
	}

	state := minx.New()
	table[p.Coordinate(state)] = 0

	nodes := 1
	prevDepthCount := 1
	depth := uint8(0)

	for prevDepthCount > 0 {
		if interrupted != nil && interrupted() {
			break
		}
		if progress != nil {
			progress(depth, prevDepthCount, nodes, tableSize)
		}

		forwardSearch := prevDepthCount < tableSize-nodes
		prevDepthCount = 0
		nextDepth := depth + 1

		if forwardSearch {
			nodes, prevDepthCount = expandForward(p, moves, table, depth, nextDepth, nodes, interrupted)
		} else {
			nodes, prevDepthCount = expandBackward(p, moves, table, depth, nextDepth, nodes, interrupted)
		}

		depth++
	}

	return table
}

func expandForward(p pruner.Pruner, moves []minx.Move, table []byte, depth, nextDepth byte, nodes int, interrupted func() bool) (int, int) {
	state := minx.New()
	added := 0

	for i := range table {
		if interrupted != nil && interrupted() {
			break
		}
		if table[i] != depth {
			continue
		}

		p.SetState(i, state)
		for _, m := range moves {
			state.ApplyMove(m)
			newCoord := p.Coordinate(state)
			if table[newCoord] == Unreached {
				table[newCoord] = nextDepth
				nodes++
				added++
			}
			state.UndoMove()
		}
	}

	return nodes, added
}

func expandBackward(p pruner.Pruner, moves []minx.Move, table []byte, depth, nextDepth byte, nodes int, interrupted func() bool) (int, int) {
	state := minx.New()
	added := 0

	for i := range table {
		if interrupted != nil && interrupted() {
			break
		}
		if table[i] != Unreached {
			continue
		}

		p.SetState(i, state)
		for _, m := range moves {
			state.ApplyMove(m)
			newCoord := p.Coordinate(state)
			reaches := table[newCoord] == depth
			state.UndoMove()
			if reaches {
				table[i] = nextDepth
				nodes++
				added++
				break
			}
		}
	}

	return nodes, added
}
