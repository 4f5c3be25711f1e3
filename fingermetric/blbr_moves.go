package fingermetric

import "strings"

// handleBl/handleBli/handleBl2 grounded on finger_sim/bl_moves.rs.
// handleBr/handleBri/handleBr2 mirror them left<->right; the
// original's finger_sim::br_moves module was not present in the
// retrieved source (only its call sites in mod.rs), so these are
// reconstructed by the same left<->right symmetry every other paired
// move family in this simulator exhibits (r/l, u/ui, d/di).

func handleBl(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.rWrist == 1:
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == -1:
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 1 && !strings.HasPrefix(prevMove, "U") && !strings.HasPrefix(prevMove, "D"):
		if c.lIndex.location == "uflick" {
			c.speed += overwork(c.lIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.lOhCool+2.5)
		} else {
			c.speed += overwork(c.lIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lOhCool = c.speed
	case c.lWrist == 0 && (c.rWrist == 1 || c.rWrist == -1):
		c.speed += overwork(c.lIndex, "top", c.speed, 0.9*c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += 1.45
		} else {
			c.speed += 1.0
		}
		c.lIndex = fingerState{time: c.speed, location: "leftdb"}
	case c.rWrist == -1 && !strings.HasPrefix(prevMove, "U"):
		c.speed += overwork(c.rRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.rRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleBli(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.lWrist == 1:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == -1:
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.rWrist == 1 && !strings.HasPrefix(prevMove, "U") && !strings.HasPrefix(prevMove, "D"):
		if c.rIndex.location == "uflick" {
			c.speed += overwork(c.rIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.rOhCool+2.5)
		} else {
			c.speed += overwork(c.rIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rOhCool = c.speed
	case c.rWrist == 0 && (c.lWrist == 1 || c.lWrist == -1):
		c.speed += overwork(c.rIndex, "top", c.speed, 0.9*c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += 1.45
		} else {
			c.speed += 1.0
		}
		c.rIndex = fingerState{time: c.speed, location: "rightdb"}
	case c.lWrist == -1 && !strings.HasPrefix(prevMove, "U"):
		c.speed += overwork(c.lRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.lRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleBl2(c *simContext, j int, prevMove string) moveOutcome {
	rOw := max(overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)))
	lOw := max(overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)))

	switch {
	case c.rWrist == 1 && (c.lWrist != 1 || rOw <= lOw):
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == 1:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == -1 && (c.rWrist != -1 ||
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)) >
			max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.lRing, "home", c.speed, c.params.OverWorkMult))):
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.Double*c.params.RingMult
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	case c.rWrist == -1:
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.Double*c.params.RingMult
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleBr(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.lWrist == 1:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == -1:
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.rWrist == 1 && !strings.HasPrefix(prevMove, "U") && !strings.HasPrefix(prevMove, "D"):
		if c.rIndex.location == "uflick" {
			c.speed += overwork(c.rIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.rOhCool+2.5)
		} else {
			c.speed += overwork(c.rIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rOhCool = c.speed
	case c.rWrist == 0 && (c.lWrist == 1 || c.lWrist == -1):
		c.speed += overwork(c.rIndex, "top", c.speed, 0.9*c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += 1.45
		} else {
			c.speed += 1.0
		}
		c.rIndex = fingerState{time: c.speed, location: "rightdb"}
	case c.lWrist == -1 && !strings.HasPrefix(prevMove, "U"):
		c.speed += overwork(c.lRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.lRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleBri(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.rWrist == 1:
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == -1:
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 1 && !strings.HasPrefix(prevMove, "U") && !strings.HasPrefix(prevMove, "D"):
		if c.lIndex.location == "uflick" {
			c.speed += overwork(c.lIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.lOhCool+2.5)
		} else {
			c.speed += overwork(c.lIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lOhCool = c.speed
	case c.lWrist == 0 && (c.rWrist == 1 || c.rWrist == -1):
		c.speed += overwork(c.lIndex, "top", c.speed, 0.9*c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += 1.45
		} else {
			c.speed += 1.0
		}
		c.lIndex = fingerState{time: c.speed, location: "leftdb"}
	case c.rWrist == -1 && !strings.HasPrefix(prevMove, "U"):
		c.speed += overwork(c.rRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.rRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleBr2(c *simContext, j int, prevMove string) moveOutcome {
	rOw := max(overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)))
	lOw := max(overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)))

	switch {
	case c.lWrist == 1 && (c.rWrist != 1 || lOw <= rOw):
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == 1:
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == -1 && (c.lWrist != -1 ||
		max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)) >
			max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.rRing, "home", c.speed, c.params.OverWorkMult))):
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.Double*c.params.RingMult
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == -1:
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "U") {
			c.speed += c.params.MoveBlock*0.5 + c.params.Double*c.params.RingMult
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}
