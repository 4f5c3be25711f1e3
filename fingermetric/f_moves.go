package fingermetric

import "strings"

// handleF/handleFi/handleF2 grounded on finger_sim/f_moves.rs.

func handleF(c *simContext, j int, mv, prevMove string) moveOutcome {
	switch {
	case c.rWrist == -1:
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == 1 && mv != "f":
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += 1.0
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	case c.rWrist == 1 && !strings.HasPrefix(prevMove, "D") && mv != "f":
		c.speed += overwork(c.rRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.rRing = fingerState{time: c.speed, location: "home"}
	case c.lWrist == -1 && c.rWrist == 0 && overwork(c.rIndex, "uflick", c.speed, c.params.OverWorkMult) == 0.0:
		c.speed += 1.0
		c.rIndex = fingerState{time: c.speed, location: "fflick"}
	case c.lWrist == -1 && overwork(c.lIndex, "uflick", c.speed, c.params.OverWorkMult) == 0.0 && !strings.HasPrefix(prevMove, "U"):
		c.speed += c.params.PushMult
		c.lIndex = fingerState{time: c.speed, location: "home"}
	case c.lWrist == -1 && c.grip == -1:
		c.speed += overwork(c.lThumb, "top", c.speed, 0.9*c.params.OverWorkMult)
		c.speed += overwork(c.lIndex, "top", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += 1.8
		} else {
			c.speed += 1.0
		}
		c.lWrist++
		c.lThumb = fingerState{time: c.speed, location: "leftu"}
		c.lIndex = fingerState{time: c.speed, location: "top"}
	case c.lWrist == 0 && c.grip == -1:
		c.speed += overwork(c.lThumb, "bottom", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lIndex, "top", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += 2.05
		} else {
			c.speed += 1.25
		}
		c.lThumb = fingerState{time: c.speed, location: "top"}
		c.lIndex = fingerState{time: c.speed, location: "top"}
	case c.rWrist == 0 && c.lWrist == 0 && mv == "f":
		c.speed += overwork(c.rIndex, "uflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.rIndex = fingerState{time: c.speed, location: "fflick"}
	case j == 0 && c.rWrist == 0 && c.lWrist == 0:
		c.speed += overwork(c.rThumb, "top", c.speed, c.params.OverWorkMult) + 1.0
		c.rThumb = fingerState{time: c.speed, location: "rdown"}
		c.rMiddle = fingerState{time: c.speed, location: "uflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleFi(c *simContext, j int, mv, prevMove string) moveOutcome {
	switch {
	case c.lWrist == -1:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == 1 && mv != "f":
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += c.params.MoveBlock*0.5 + c.params.RingMult
		} else {
			c.speed += 1.0
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 1 && !strings.HasPrefix(prevMove, "D") && mv != "f":
		c.speed += overwork(c.lRing, "dflick", c.speed, c.params.OverWorkMult)
		c.speed += c.params.RingMult * c.params.PushMult
		c.lRing = fingerState{time: c.speed, location: "home"}
	case c.rWrist == -1 && c.lWrist == 0 && overwork(c.lIndex, "uflick", c.speed, c.params.OverWorkMult) == 0.0:
		c.speed += 1.0
		c.lIndex = fingerState{time: c.speed, location: "fflick"}
	case c.rWrist == -1 && overwork(c.rIndex, "uflick", c.speed, c.params.OverWorkMult) == 0.0 && !strings.HasPrefix(prevMove, "U"):
		c.speed += c.params.PushMult
		c.rIndex = fingerState{time: c.speed, location: "home"}
	case c.rWrist == -1 && c.grip == 1:
		c.speed += overwork(c.rThumb, "top", c.speed, 0.9*c.params.OverWorkMult)
		c.speed += overwork(c.rIndex, "top", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += 1.8
		} else {
			c.speed += 1.0
		}
		c.rWrist++
		c.rThumb = fingerState{time: c.speed, location: "rightu"}
		c.rIndex = fingerState{time: c.speed, location: "top"}
	case c.rWrist == 0 && c.grip == 1:
		c.speed += overwork(c.rThumb, "bottom", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rIndex, "top", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += 2.05
		} else {
			c.speed += 1.25
		}
		c.rThumb = fingerState{time: c.speed, location: "top"}
		c.rIndex = fingerState{time: c.speed, location: "top"}
	case c.lWrist == 0 && c.rWrist == 0 && mv == "f'":
		c.speed += overwork(c.lIndex, "uflick", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult) + 1.0
		c.lIndex = fingerState{time: c.speed, location: "fflick"}
	case j == 0 && c.rWrist == 0 && c.lWrist == 0:
		c.speed += overwork(c.lThumb, "top", c.speed, c.params.OverWorkMult) + 1.0
		c.lThumb = fingerState{time: c.speed, location: "rdown"}
		c.lMiddle = fingerState{time: c.speed, location: "uflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}

func handleF2(c *simContext, j int, prevMove string) moveOutcome {
	rOw := max(overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)))
	lOw := max(overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult),
		max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult),
			overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)))

	switch {
	case c.rWrist == -1 && (c.lWrist != -1 || rOw <= lOw):
		c.speed += overwork(c.rIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.rIndex = fingerState{time: c.speed, location: "uflick"}
		c.rMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.lWrist == -1:
		c.speed += overwork(c.lIndex, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "u2grip", c.speed, c.params.OverWorkMult)
		c.speed += c.params.Double
		c.lIndex = fingerState{time: c.speed, location: "uflick"}
		c.lMiddle = fingerState{time: c.speed, location: "uflick"}
	case c.rWrist == 1 && (c.lWrist != 1 ||
		max(overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)) <=
			max(overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult), overwork(c.lRing, "home", c.speed, c.params.OverWorkMult))):
		c.speed += overwork(c.rMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.rRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += c.params.Double*c.params.RingMult + c.params.MoveBlock*0.5
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.rRing = fingerState{time: c.speed, location: "dflick"}
	case c.lWrist == 1:
		c.speed += overwork(c.lMiddle, "home", c.speed, c.params.OverWorkMult)
		c.speed += overwork(c.lRing, "home", c.speed, c.params.OverWorkMult)
		if strings.HasPrefix(prevMove, "D") {
			c.speed += c.params.Double*c.params.RingMult + c.params.MoveBlock*0.5
		} else {
			c.speed += c.params.Double * c.params.RingMult
		}
		c.lRing = fingerState{time: c.speed, location: "dflick"}
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist)))
	}
	return success()
}
