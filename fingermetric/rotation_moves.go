package fingermetric

// handleX/handleXi/handleX2/handleYZ/handleY2Z2 grounded on
// finger_sim/rotation_moves.rs.

func handleX(c *simContext, j int) moveOutcome {
	c.lWrist++
	c.rWrist++
	if c.lWrist > 1 || c.rWrist > 1 {
		return earlyExit([6]float64{float64(j) + 1.0, c.speed, float64(c.lWrist), float64(c.rWrist), c.lMaxTime(), c.rMaxTime()})
	}
	return success()
}

func handleXi(c *simContext, j int) moveOutcome {
	c.lWrist--
	c.rWrist--
	if c.lWrist < -1 || c.rWrist < -1 {
		return earlyExit([6]float64{float64(j) + 1.0, c.speed, float64(c.lWrist), float64(c.rWrist), c.lMaxTime(), c.rMaxTime()})
	}
	return success()
}

func handleX2(c *simContext, j int) moveOutcome {
	switch {
	case c.lWrist >= 1 && c.rWrist >= 1:
		c.lWrist -= 2
		c.rWrist -= 2
	case c.lWrist <= -1 && c.rWrist <= -1:
		c.lWrist += 2
		c.rWrist += 2
	case c.lWrist+c.rWrist > 0:
		return earlyExit([6]float64{float64(j), c.speed, float64(c.lWrist - 2), float64(c.rWrist - 2), c.lMaxTime(), c.rMaxTime()})
	default:
		return earlyExit([6]float64{float64(j), c.speed, float64(c.lWrist + 2), float64(c.rWrist + 2), c.lMaxTime(), c.rMaxTime()})
	}
	return success()
}

func handleYZ(c *simContext, j int) moveOutcome {
	c.speed += c.params.Rotation
	return earlyExit([6]float64{float64(j) + 1.0, c.speed, 0.0, 0.0, c.lMaxTime(), c.rMaxTime()})
}

func handleY2Z2(c *simContext, j int) moveOutcome {
	c.speed += c.params.Rotation * c.params.Double
	return earlyExit([6]float64{float64(j) + 1.0, c.speed, 0.0, 0.0, c.lMaxTime(), c.rMaxTime()})
}
