// SPDX-License-Identifier: MIT

// Package fingermetric scores a move-string's physical difficulty by
// simulating two hands' fingers across the sequence: each move updates
// a finger's (time, location), charging a delay proportional to any
// required location change, amplified by regripping, wrist-rotation
// state, and hand-conflict heuristics. Purely arithmetic, deterministic
// given its Params, and unrelated to solver search.
//
// Grounded on original_source/llminxsolver-rs/src/mcc/{types,parser,
// calculator}.rs and src/mcc/finger_sim/*.rs.
package fingermetric

// validMoves is the set of move tokens the parser recognizes, lower-cased.
var validMoves = map[string]bool{
	"bl": true, "bl2": true, "bl'": true,
	"br": true, "br2": true, "br'": true,
	"r": true, "r2": true, "r'": true,
	"u": true, "u'": true, "u2": true,
	"f": true, "f2": true, "f'": true,
	"d": true, "d2": true, "d'": true,
	"l": true, "l2": true, "l'": true,
	"x": true, "x'": true, "x2": true,
	"y": true, "y'": true, "y2": true,
	"z": true, "z'": true, "z2": true,
}

// Params tunes the physical model: wrist, push, and ring multipliers,
// destabilize/regrip/double-move/overwork penalties, and the cost of a
// whole-puzzle rotation.
type Params struct {
	WristMult    float64
	PushMult     float64
	RingMult     float64
	Destabilize  float64
	AddRegrip    float64
	Double       float64
	OverWorkMult float64
	MoveBlock    float64
	Rotation     float64
}

// DefaultParams mirrors MCCParams::default.
func DefaultParams() Params {
	return Params{
		WristMult:    0.8,
		PushMult:     1.3,
		RingMult:     1.4,
		Destabilize:  0.5,
		AddRegrip:    1.0,
		Double:       1.65,
		OverWorkMult: 2.25,
		MoveBlock:    0.8,
		Rotation:     3.5,
	}
}
