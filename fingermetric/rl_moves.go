package fingermetric

// handleR/handleRi/handleR2 grounded on finger_sim/r_moves.rs; handleL
// family mirrors it with left/right swapped, grounded on l_moves.rs.

func handleRi(c *simContext, j int) moveOutcome {
	switch {
	case c.rWrist == 2:
		c.rWrist = 0
	case c.rWrist > -1 && !(c.lWrist >= 1 && c.rWrist <= 0):
		c.rWrist--
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist-1)))
	}
	c.speed += c.params.WristMult
	return success()
}

func handleR(c *simContext, j int) moveOutcome {
	if c.rWrist < 2 && !(c.lWrist <= -1 && c.rWrist >= 0) {
		c.rWrist++
	} else {
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(c.rWrist+1)))
	}
	c.speed += c.params.WristMult
	return success()
}

func handleR2(c *simContext, j int) moveOutcome {
	switch {
	case c.rWrist >= 1 && c.lWrist < 1:
		c.rWrist = -1
	case c.lWrist > -1:
		c.rWrist += 2
	default:
		newR := c.rWrist + 2
		if c.rWrist > 0 {
			newR = c.rWrist - 2
		}
		return earlyExit(c.earlyReturn(j, float64(c.lWrist), float64(newR)))
	}
	c.speed += c.params.Double * c.params.WristMult
	return success()
}

func handleL(c *simContext, j int) moveOutcome {
	switch {
	case c.lWrist == 2:
		c.lWrist = 0
	case c.lWrist > -1 && !(c.rWrist >= 1 && c.lWrist <= 0):
		c.lWrist--
	default:
		return earlyExit(c.earlyReturn(j, float64(c.lWrist-1), float64(c.rWrist)))
	}
	c.speed += c.params.WristMult
	return success()
}

func handleLi(c *simContext, j int) moveOutcome {
	if c.lWrist < 2 && !(c.rWrist <= -1 && c.lWrist >= 0) {
		c.lWrist++
	} else {
		return earlyExit(c.earlyReturn(j, float64(c.lWrist+1), float64(c.rWrist)))
	}
	c.speed += c.params.WristMult
	return success()
}

func handleL2(c *simContext, j int) moveOutcome {
	switch {
	case c.lWrist >= 1 && c.rWrist < 1:
		c.lWrist = -1
	case c.rWrist > -1:
		c.lWrist += 2
	default:
		newL := c.lWrist + 2
		if c.lWrist > 0 {
			newL = c.lWrist - 2
		}
		return earlyExit(c.earlyReturn(j, float64(newL), float64(c.rWrist)))
	}
	c.speed += c.params.Double * c.params.WristMult
	return success()
}
