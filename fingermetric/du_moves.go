package fingermetric

import "strings"

// handleD/handleDi/handleD2 grounded on finger_sim/d_moves.rs.

func handleD(c *simContext, j int, prevMove string) moveOutcome {
	lOw := max(overwork(c.lRing, "home", c.speed, c.params.OverWorkMult), overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult))
	rOw := max(overwork(c.rRing, "dflick", c.speed, c.params.OverWorkMult), overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult))

	switch {
	case c.lWrist == 0 && (c.rWrist != 0 || lOw <= rOw):
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "B") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	case c.rWrist == 0 && !strings.HasPrefix(prevMove, "B"):
		c.speed += overwork(c.rRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.rRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleDi(c *simContext, j int, prevMove string) moveOutcome {
	rOw := max(overwork(c.rRing, "home", c.speed, c.params.OverWorkMult), overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult))
	lOw := max(overwork(c.lRing, "dflick", c.speed, c.params.OverWorkMult), overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult))

	switch {
	case c.rWrist == 0 && (c.lWrist != 0 || rOw <= lOw):
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "B") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 0 && !strings.HasPrefix(prevMove, "B"):
		c.speed += overwork(c.lRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.lRing = fingerState{time: c.speed, location: "home"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleD2(c *simContext, j int, prevMove string) moveOutcome {
	rOw := max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.rRing, "home", c.speed, c.params.OverWorkMult))
	lOw := max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.lRing, "home", c.speed, c.params.OverWorkMult))

	switch {
	case c.rWrist == 0 && (c.lWrist != 0 || rOw <= lOw):
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "B") {
			c.speed += c.params.MoveBlock*0.5 + c.params.Double*c.params.RingMult
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 0:
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "B") {
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

// handleU/handleUi/handleU2 grounded on finger_sim/u_moves.rs.

func handleU(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.rWrist == 0 &&
		(c.rThumb.time+c.params.OverWorkMult <= c.speed || c.rThumb.location != "top") &&
		c.rIndex.location != "m":
		owIndex := overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult)
		owMiddle := overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		if owIndex <= owMiddle {
			c.speed += owIndex + 1.0
			c.rIndex = fingerState{time: c.speed, location: "uflick"}
		} else {
			c.speed += owMiddle + 1.0
			c.rIndex = fingerState{time: c.speed, location: "uflick"}
			c.rMiddle = fingerState{time: c.speed, location: "uflick"}
		}
	case c.rWrist == 1 && c.lWrist == 0:
		c.speed += overwork(c.lIndex, "uflick", c.speed, c.params.OverWorkMult)
		switch {
		case prevMove == "B'":
			c.speed += c.params.MoveBlock + c.params.PushMult
		case strings.HasPrefix(prevMove, "B'"):
			c.speed += c.params.MoveBlock*0.5 + c.params.PushMult
		default:
			c.speed += c.params.PushMult
		}
		c.lIndex = fingerState{time: c.speed, location: "home"}
	case c.lWrist == 0 && !strings.HasPrefix(prevMove, "F") && !strings.HasPrefix(prevMove, "B"):
		if c.lIndex.location == "uflick" {
			c.speed += overwork(c.lIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.lOhCool+2.5)
		} else {
			c.speed += overwork(c.lIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lOhCool = c.speed
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleUi(c *simContext, j int, prevMove string) moveOutcome {
	switch {
	case c.lWrist == 0 &&
		(c.lThumb.time+c.params.OverWorkMult <= c.speed || c.lThumb.location != "top") &&
		c.lIndex.location != "m":
		owIndex := overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult)
		owMiddle := overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		if owIndex <= owMiddle {
			c.speed += owIndex + 1.0
			c.lIndex = fingerState{time: c.speed, location: "uflick"}
		} else {
			c.speed += owMiddle + 1.0
			c.lIndex = fingerState{time: c.speed, location: "uflick"}
			c.lMiddle = fingerState{time: c.speed, location: "uflick"}
		}
	case c.lWrist == 1 && c.rWrist == 0:
		c.speed += overwork(c.rIndex, "uflick", c.speed, c.params.OverWorkMult)
		switch {
		case prevMove == "B":
			c.speed += c.params.MoveBlock + c.params.PushMult
		case strings.HasPrefix(prevMove, "B'"):
			c.speed += c.params.MoveBlock*0.5 + c.params.PushMult
		default:
			c.speed += c.params.PushMult
		}
		c.rIndex = fingerState{time: c.speed, location: "home"}
	case c.rWrist == 0 && !strings.HasPrefix(prevMove, "F") && !strings.HasPrefix(prevMove, "B"):
		if c.rIndex.location == "uflick" {
			c.speed += overwork(c.rIndex, "eido", c.speed, 0.75*c.params.OverWorkMult)
			c.speed = max(c.speed, c.rOhCool+2.5)
		} else {
			c.speed += overwork(c.rIndex, "eido", c.speed, 1.25*c.params.OverWorkMult)
		}
		c.speed += 1.15 * c.params.PushMult
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rOhCool = c.speed
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleU2(c *simContext, j int) moveOutcome {
	rOw := max(overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)))
	lOw := max(overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)))

	switch {
	case c.rWrist == 0 && (c.lIndex.location == "m" || c.lWrist != 0 || rOw <= lOw):
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "u2grip", c.speed, c.params.MoveBlock*c.params.OverWorkMult)
		c.speed += c.params.Double
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == 0:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "u2grip", c.speed, c.params.MoveBlock*c.params.OverWorkMult)
		c.speed += c.params.Double
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lMiddle = fingerState{time: c.speed, location: "uflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}
