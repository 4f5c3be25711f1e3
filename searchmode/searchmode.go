// SPDX-License-Identifier: MIT

// Package searchmode registers each recognized search_mode: its
// move-set (a subset of minx's 24 moves, optionally extended with D)
// and its pruner bundle (the minimal set of pattern-database pruners
// needed to bound every piece the mode's moves can disturb).
//
// Grounded on original_source/llminxsolver-rs/src/search_mode.rs, with
// RUD supplemented per SPEC_FULL.md §1/§12 (absent from the original
// enum, present in spec.md §6).
package searchmode

import (
	"fmt"

	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/pruner"
)

// Metric re-exports pruner.Metric: the move-counting convention a
// search runs (and persists pruning tables) under.
type Metric = pruner.Metric

const (
	MetricFifth = pruner.MetricFifth
	MetricFace  = pruner.MetricFace
)

// Mode names one recognized search_mode value.
type Mode uint8

const (
	RU Mode = iota
	RUF
	RUL
	RUFL
	RUFLbL
	RUbL
	RUbR
	RUD
)

func (m Mode) String() string {
	switch m {
	case RU:
		return "RU"
	case RUF:
		return "RUF"
	case RUL:
		return "RUL"
	case RUFL:
		return "RUFL"
	case RUFLbL:
		return "RUFLbL"
	case RUbL:
		return "RUbL"
	case RUbR:
		return "RUbR"
	case RUD:
		return "RUD"
	default:
		return "?"
	}
}

// corners is shorthand for building a []uint8 corner piece list from
// minx position constants (edges is its edge counterpart).
func corners(ps ...minx.CornerPosition) []uint8 {
	out := make([]uint8, len(ps))
	for i, p := range ps {
		out[i] = uint8(p)
	}
	return out
}

func edges(ps ...minx.EdgePosition) []uint8 {
	out := make([]uint8, len(ps))
	for i, p := range ps {
		out[i] = uint8(p)
	}
	return out
}

func family(f minx.Family) []minx.Move {
	return []minx.Move{
		{Family: f, Power: minx.Quarter},
		{Family: f, Power: minx.Inverse},
		{Family: f, Power: minx.Double},
		{Family: f, Power: minx.DoubleInverse},
	}
}

// PossibleMoves returns the move-set m searches over.
func PossibleMoves(m Mode) []minx.Move {
	switch m {
	case RU:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU))
	case RUF:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyF))
	case RUL:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyL))
	case RUFL:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyF), family(minx.FamilyL))
	case RUFLbL:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyF), family(minx.FamilyL), family(minx.FamilyBL))
	case RUbL:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyBL))
	case RUbR:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyBR))
	case RUD:
		return concatMoves(family(minx.FamilyR), family(minx.FamilyU), family(minx.FamilyD))
	default:
		return nil
	}
}

func concatMoves(groups ...[]minx.Move) []minx.Move {
	var out []minx.Move
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// CreatePruners returns m's pruner bundle, in the order a solver should
// check them (cheapest/narrowest first, matching the original's
// ordering).
func CreatePruners(m Mode) []pruner.Pruner {
	c := corners
	e := edges

	switch m {
	case RU:
		return []pruner.Pruner{
			pruner.NewEdgePermutationPruner("Edge permutations RU", "ruedgepermutations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2)),
			pruner.NewCompositePruner("Corners RU", "rucorners",
				pruner.NewCornerPermutationPruner("Corner permutations RU", "rucornerpermutations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5)),
				pruner.NewCornerOrientationPruner("Corner orientations RU", "rucornerorientations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5)),
			),
		}

	case RUF:
		return []pruner.Pruner{
			pruner.NewCornerPermutationPruner("Corner permutations RUF", "rufcornerpermutations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.FC2)),
			pruner.NewEdgePermutationPruner("Edge permutations RUF", "rufedgepermutations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.FE4, minx.FE5)),
			pruner.NewCompositePruner("Orientations RUF", "ruforientations",
				pruner.NewCornerOrientationPruner("Corner orientations RUF", "rufcornerorientations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.FC2)),
				pruner.NewEdgeOrientationPruner("Edge orientations RUF", "rufedgeorientations",
					e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.FE4, minx.FE5)),
			),
		}

	case RUL:
		return []pruner.Pruner{
			pruner.NewCornerOrientationPruner("Corner orientations RUL", "rulcornerorientations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC2, minx.LC1, minx.LC2)),
			pruner.NewCornerPermutationPruner("Corner permutations RUL", "rulcornerpermutations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC2, minx.LC1, minx.LC2)),
		}

	case RUFL:
		return []pruner.Pruner{
			pruner.NewEdgeOrientationPruner("Edge orientations RUFL", "rufledgeorientations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.FE4, minx.FE5, minx.LE3, minx.LE4, minx.LE5)),
			pruner.NewCornerOrientationPruner("Corner orientations RUFL", "ruflcornerorientations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.FC2, minx.LC1, minx.LC2)),
			pruner.NewCornerPermutationPruner("Corner permutations RUFL", "ruflcornerpermutations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.FC2, minx.LC1, minx.LC2)),
		}

	case RUFLbL:
		return []pruner.Pruner{
			pruner.NewEdgeOrientationPruner("Edge orientations RUFLbL", "ruflbledgeorientations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.FE4, minx.FE5, minx.LE3, minx.LE4, minx.LE5, minx.BLE3, minx.BLE4, minx.BLE5)),
			pruner.NewCornerOrientationPruner("Corner orientations RUFLbL", "ruflblcornerorientations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.FC2, minx.LC1, minx.LC2, minx.BLC1, minx.BLC2)),
			pruner.NewCompositePruner("Edge orientations / Corner separations RUFLbL", "ruflbledgeorientationscornerseparations",
				pruner.NewEdgeOrientationPruner("Edge orientations RUFLbL", "ruflbledgeorientations",
					e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.FE4, minx.FE5, minx.LE3, minx.LE4, minx.LE5, minx.BLE3, minx.BLE4, minx.BLE5)),
				pruner.NewSeparationPruner("Corner separations U RUFLbL", "ruflblcornerseparationsu",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5), nil),
			),
			pruner.NewSeparationPruner("Separations R RUFLbL", "ruflblseparationsr",
				c(minx.RC1, minx.FC5, minx.UC3, minx.UC2, minx.RC5),
				e(minx.FE2, minx.RE2, minx.RE3, minx.RE4, minx.UE5)),
			pruner.NewSeparationPruner("Separations L RUFLbL", "ruflblseparationsl",
				c(minx.LC1, minx.LC2, minx.FC2, minx.UC4, minx.UC5),
				e(minx.FE5, minx.UE2, minx.LE3, minx.LE4, minx.LE5)),
			pruner.NewSeparationPruner("Separations F RUFLbL", "ruflblseparationsf",
				c(minx.FC5, minx.FC2, minx.FC1, minx.UC4, minx.UC3),
				e(minx.UE1, minx.FE2, minx.FE3, minx.FE4, minx.FE5)),
			pruner.NewSeparationPruner("Separations bL RUFLbL", "ruflblseparationsbl",
				c(minx.LC2, minx.BLC1, minx.BLC2, minx.UC1, minx.UC5),
				e(minx.LE5, minx.BLE3, minx.BLE4, minx.BLE5, minx.UE3)),
		}

	case RUbL:
		return []pruner.Pruner{
			pruner.NewEdgePermutationPruner("Edge permutations RUbL", "rubledgepermutations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.LE5, minx.BLE3, minx.BLE4, minx.BLE5)),
			pruner.NewCompositePruner("Corners RUbL", "rublcorners",
				pruner.NewCornerPermutationPruner("Corner permutations RUbL", "rublcornerpermutations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.LC2, minx.BLC1, minx.BLC2)),
				pruner.NewCornerOrientationPruner("Corner orientations RUbL", "rublcornerorientations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.LC2, minx.BLC1, minx.BLC2)),
			),
		}

	case RUbR:
		return []pruner.Pruner{
			pruner.NewCornerPermutationPruner("Corner permutations RUbR", "rubrcornerpermutations",
				c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.BLC2, minx.BRC1)),
			pruner.NewEdgePermutationPruner("Edge permutations RUbR", "rubredgepermutations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.BRE3, minx.BRE4, minx.BLE5)),
			pruner.NewCompositePruner("Orientations RUbR", "rubrorientations",
				pruner.NewCornerOrientationPruner("Corner orientations RUbR", "rubrcornerorientations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.BLC2, minx.BRC1)),
				pruner.NewEdgeOrientationPruner("Edge orientations RUbR", "rubgedgeorientations",
					e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.BRE3, minx.BRE4, minx.BLE5)),
			),
		}

	case RUD:
		// Supplemented (see SPEC_FULL.md §1): built the same way RUbL/RUbR
		// extend RU with a third face — the RU piece lists above plus the
		// three additional corner slots (FC1, DC1, DC2) and four edge slots
		// (FE3, DE3, DE4, DE5; RE4 is already in RU's edge list) D's
		// quarter turn reaches beyond RU's footprint.
		return []pruner.Pruner{
			pruner.NewEdgePermutationPruner("Edge permutations RUD", "rudedgepermutations",
				e(minx.UE1, minx.UE2, minx.UE3, minx.UE4, minx.UE5, minx.RE2, minx.RE3, minx.RE4, minx.FE2, minx.FE3, minx.DE3, minx.DE4, minx.DE5)),
			pruner.NewCompositePruner("Corners RUD", "rudcorners",
				pruner.NewCornerPermutationPruner("Corner permutations RUD", "rudcornerpermutations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.DC1, minx.DC2)),
				pruner.NewCornerOrientationPruner("Corner orientations RUD", "rudcornerorientations",
					c(minx.UC1, minx.UC2, minx.UC3, minx.UC4, minx.UC5, minx.RC1, minx.RC5, minx.FC5, minx.FC1, minx.DC1, minx.DC2)),
			),
		}

	default:
		return nil
	}
}

// Validate reports an error if m is not one of the 8 recognized modes.
func Validate(m Mode) error {
	if m > RUD {
		return fmt.Errorf("searchmode: unrecognized mode %d", m)
	}
	return nil
}
