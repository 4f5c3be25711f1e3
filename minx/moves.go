package minx

import (
	"fmt"
)

// Family names one of the 7 quarter-turn face transforms this package
// knows how to apply. D is not exposed by any search mode's move-set
// except RUD (see searchmode); the B face named in scrambled notation
// elsewhere in the Megaminx literature has no reachable transform here,
// per the move-set fixed by this module.
type Family uint8

const (
	FamilyR Family = iota
	FamilyL
	FamilyU
	FamilyF
	FamilyBL
	FamilyBR
	FamilyD
)

func (f Family) String() string {
	switch f {
	case FamilyR:
		return "R"
	case FamilyL:
		return "L"
	case FamilyU:
		return "U"
	case FamilyF:
		return "F"
	case FamilyBL:
		return "bL"
	case FamilyBR:
		return "bR"
	case FamilyD:
		return "D"
	default:
		return "?"
	}
}

// Power is how many quarter turns of a Family a Move applies, and in
// which direction. The four values mirror the 4 powers every face
// family carries in the move-string grammar: plain, prime, 2, 2-prime.
type Power uint8

const (
	Quarter Power = iota
	Inverse
	Double
	DoubleInverse
)

// steps is how many times the family's single quarter-turn cycle must
// be composed with itself, forward, to produce this power. Every face
// cycle here has order 5 (a 5-cycle on both corners and edges), so the
// inverse of one quarter turn is four quarter turns forward, and the
// inverse of a double is three quarter turns forward; composing the
// transcribed single-quarter-turn operator this many times reproduces
// the literal Ri/R2/R2i transforms exactly (see DESIGN.md).
func (p Power) steps() int {
	switch p {
	case Quarter:
		return 1
	case Double:
		return 2
	case DoubleInverse:
		return 3
	case Inverse:
		return 4
	default:
		return 1
	}
}

func (p Power) String() string {
	switch p {
	case Quarter:
		return ""
	case Inverse:
		return "'"
	case Double:
		return "2"
	case DoubleInverse:
		return "2'"
	default:
		return "?"
	}
}

// Move is one face family applied with one power: R, R', R2, R2', L, ...
type Move struct {
	Family Family
	Power  Power
}

// ALL24 lists the 24 moves exposed to search modes: the 6 families
// {R, L, U, F, bL, bR} at each of the 4 powers.
var ALL24 = buildAllMoves(FamilyR, FamilyL, FamilyU, FamilyF, FamilyBL, FamilyBR)

// ALLWithD lists ALL24 plus D's 4 powers, for RUD and any other mode
// that needs the D transform.
var ALLWithD = buildAllMoves(FamilyR, FamilyL, FamilyU, FamilyF, FamilyBL, FamilyBR, FamilyD)

func buildAllMoves(families ...Family) []Move {
	moves := make([]Move, 0, len(families)*4)
	for _, f := range families {
		moves = append(moves, Move{f, Quarter}, Move{f, Inverse}, Move{f, Double}, Move{f, DoubleInverse})
	}
	return moves
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m.Power {
	case Quarter:
		return Move{m.Family, Inverse}
	case Inverse:
		return Move{m.Family, Quarter}
	case Double:
		return Move{m.Family, DoubleInverse}
	case DoubleInverse:
		return Move{m.Family, Double}
	default:
		return m
	}
}

// IsDouble reports whether m is a 2 or 2' turn.
func (m Move) IsDouble() bool {
	return m.Power == Double || m.Power == DoubleInverse
}

// String renders m in move-string grammar, e.g. "R", "R'", "bL2'".
func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.Family, m.Power)
}

// sameFamily reports whether m and o turn the same face, regardless of
// power — used by generating-move simplification and by optimality
// pruning in the solver.
func (m Move) sameFamily(o Move) bool {
	return m.Family == o.Family
}

// NumMoveSlots is the size a caller must allocate for a table indexed
// by MoveIndex: slot 0 means "no previous move", slots 1..28 index
// ALLWithD's 28 moves in its fixed order.
const NumMoveSlots = 7*4 + 1

var moveIndexTable = func() map[Move]int {
	idx := make(map[Move]int, len(ALLWithD))
	for i, mv := range ALLWithD {
		idx[mv] = i + 1
	}
	return idx
}()

// MoveIndex returns m's stable 1-based slot among ALLWithD, the index
// the solver's sibling tables use to look up "moves allowed after m".
func MoveIndex(m Move) int {
	return moveIndexTable[m]
}

var moveStringTable = func() map[string]Move {
	t := make(map[string]Move, len(ALLWithD)*2)
	for _, mv := range ALLWithD {
		t[mv.String()] = mv
		switch mv.Power {
		case Inverse:
			t[mv.Family.String()+"i"] = mv
		case DoubleInverse:
			t[mv.Family.String()+"2i"] = mv
		}
	}
	return t
}()

// ParseMove parses a single move token (e.g. "R", "R'", "Ri", "bL2",
// "bL2'") in the grammar every recognized Family/Power combination
// renders to and accepts from.
func ParseMove(token string) (Move, error) {
	if mv, ok := moveStringTable[token]; ok {
		return mv, nil
	}
	return Move{}, fmt.Errorf("minx: unrecognized move %q", token)
}
