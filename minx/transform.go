package minx

// quarterTurn is the transcribed single quarter-turn operator for one
// face family: a 5-slot corner cycle and a 5-slot edge cycle, each with
// a per-destination-slot flag for the orientation change that slot
// receives. Every other power of the family (inverse, double,
// double-inverse) is derived by composing this operator with itself
// (see Power.steps and applyQuarterTurn); none of the 24 move variants
// beyond these 7 base cycles is transcribed by hand.
//
// cornerCycle[i] is the destination slot written on this turn; its new
// content comes from cornerCycle[(i+1)%5]'s old content, with
// cornerTwist[i] true meaning that content is rotated clockwise
// (orientation +1 mod 3) in transit. edgeCycle/edgeFlip follow the same
// convention with clockwise replaced by a parity flip (orientation
// xor 1).
type quarterTurn struct {
	cornerCycle [5]CornerPosition
	cornerTwist [5]bool
	edgeCycle   [5]EdgePosition
	edgeFlip    [5]bool
}

// quarterTurns holds the 7 transcribed face transforms, grounded on
// original_source/.../minx/transformations/{r,l,u,f,bl,br,d}_moves.rs.
var quarterTurns = map[Family]quarterTurn{
	FamilyR: {
		cornerCycle: [5]CornerPosition{RC1, RC5, UC2, UC3, FC5},
		cornerTwist: [5]bool{false, true, true, false, true},
		edgeCycle:   [5]EdgePosition{UE5, FE2, RE4, RE3, RE2},
		edgeFlip:    [5]bool{false, false, false, false, false},
	},
	FamilyL: {
		cornerCycle: [5]CornerPosition{LC1, FC2, UC4, UC5, LC2},
		cornerTwist: [5]bool{true, false, true, true, false},
		edgeCycle:   [5]EdgePosition{UE2, LE5, LE4, LE3, FE5},
		edgeFlip:    [5]bool{false, false, false, false, false},
	},
	FamilyU: {
		cornerCycle: [5]CornerPosition{UC1, UC5, UC4, UC3, UC2},
		cornerTwist: [5]bool{false, false, false, false, false},
		edgeCycle:   [5]EdgePosition{UE1, UE5, UE4, UE3, UE2},
		edgeFlip:    [5]bool{false, false, false, false, false},
	},
	FamilyF: {
		cornerCycle: [5]CornerPosition{FC1, FC5, UC3, UC4, FC2},
		cornerTwist: [5]bool{false, true, true, true, false},
		edgeCycle:   [5]EdgePosition{UE1, FE5, FE4, FE3, FE2},
		edgeFlip:    [5]bool{true, false, false, false, true},
	},
	FamilyBL: {
		cornerCycle: [5]CornerPosition{BLC1, LC2, UC5, UC1, BLC2},
		cornerTwist: [5]bool{true, false, true, true, false},
		edgeCycle:   [5]EdgePosition{UE3, BLE5, BLE4, BLE3, LE5},
		edgeFlip:    [5]bool{true, false, false, false, true},
	},
	FamilyBR: {
		cornerCycle: [5]CornerPosition{BRC1, BLC2, UC1, UC2, RC5},
		cornerTwist: [5]bool{false, true, true, false, true},
		edgeCycle:   [5]EdgePosition{UE4, RE2, BRE3, BRE4, BLE5},
		edgeFlip:    [5]bool{true, false, false, false, true},
	},
	FamilyD: {
		cornerCycle: [5]CornerPosition{DC1, RC1, FC5, FC1, DC2},
		cornerTwist: [5]bool{false, false, false, false, false},
		edgeCycle:   [5]EdgePosition{FE3, DE5, DE4, DE3, RE4},
		edgeFlip:    [5]bool{false, false, false, false, false},
	},
}

func cornerOrientCW(o uint8) uint8 {
	switch o {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 0
	default:
		return 3
	}
}

// applyQuarterTurnOnce rotates s by one quarter turn of qt.
func applyQuarterTurnOnce(s *State, qt quarterTurn) {
	var oldCornerPiece [5]uint8
	var oldCornerOr [5]uint8
	for i, slot := range qt.cornerCycle {
		oldCornerPiece[i] = s.cornerPositions[slot]
		oldCornerOr[i] = s.cornerOrientation(slot)
	}
	for i, slot := range qt.cornerCycle {
		src := (i + 1) % 5
		or := oldCornerOr[src]
		if qt.cornerTwist[i] {
			or = cornerOrientCW(or)
		}
		s.cornerPositions[slot] = oldCornerPiece[src]
		s.setCornerOrientation(slot, or)
	}

	var oldEdgePiece [5]uint8
	var oldEdgeOr [5]uint8
	for i, slot := range qt.edgeCycle {
		oldEdgePiece[i] = s.edgePositions[slot]
		oldEdgeOr[i] = s.edgeOrientation(slot)
	}
	for i, slot := range qt.edgeCycle {
		src := (i + 1) % 5
		or := oldEdgeOr[src]
		if qt.edgeFlip[i] {
			or ^= 1
		}
		s.edgePositions[slot] = oldEdgePiece[src]
		s.setEdgeOrientation(slot, or)
	}
}

// applyFamily applies family f, powered by p, to s.
func applyFamily(s *State, f Family, p Power) {
	qt := quarterTurns[f]
	for i := 0; i < p.steps(); i++ {
		applyQuarterTurnOnce(s, qt)
	}
}
