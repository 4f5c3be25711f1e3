// SPDX-License-Identifier: MIT

// Package minx models the Last Layer of a Megaminx: the 5 last-layer
// corners and 5 last-layer edges plus the 12 remaining corner slots and
// 18 remaining edge slots a move can carry a piece through in transit.
// State is a fixed-width, bit-packed permutation+orientation pair, and
// a move is one of 7 quarter-turn face families applied 1-4 times.
package minx

// NumCorners is the number of corner slots tracked by a State: the 5
// last-layer corners plus the 12 corner slots a last-layer move can
// carry a piece through (every family except U touches at least one
// non-last-layer corner slot in its 5-cycle).
const NumCorners = 17

// NumEdges is the number of edge slots tracked by a State, by the same
// reasoning as NumCorners.
const NumEdges = 23

// MaxSearchDepth bounds the move-history capacity pre-allocated by New;
// it is not a hard limit, just a sizing hint matching the deepest
// search depth any recognized search mode is expected to reach.
const MaxSearchDepth = 100

// CornerPosition names a corner slot. The first 5 values (UC1..UC5) are
// the last-layer corners a solve must place and orient; the rest are
// the corner slots adjacent moves pass pieces through.
type CornerPosition uint8

const (
	UC1 CornerPosition = iota
	UC2
	UC3
	UC4
	UC5
	RC1
	RC5
	FC5
	FC1
	FC2
	LC1
	LC2
	BLC1
	BLC2
	BRC1
	DC1
	DC2
)

// EdgePosition names an edge slot, by the same scheme as CornerPosition.
type EdgePosition uint8

const (
	UE1 EdgePosition = iota
	UE2
	UE3
	UE4
	UE5
	RE2
	RE3
	RE4
	FE2
	FE3
	FE4
	FE5
	LE3
	LE4
	LE5
	BLE3
	BLE4
	BLE5
	BRE3
	BRE4
	DE3
	DE4
	DE5
)
