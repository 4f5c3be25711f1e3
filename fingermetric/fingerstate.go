package fingermetric

// fingerState tracks one finger's last action: the simulated clock
// time it finished, and a named location describing where it ended up
// relative to its resting position ("home" when idle).
type fingerState struct {
	time     float64
	location string
}

func newFingerState() fingerState { return fingerState{time: -1.0, location: "home"} }

// simContext is the mutable state threaded through one simulate run: one
// fingerState per finger on each hand, each hand's wrist rotation
// (-1, 0, 1, or the transient 2 used mid R2/L2), the active grip, and
// the running speed (elapsed simulated time) the scorer ultimately
// reports.
type simContext struct {
	lThumb, lIndex, lMiddle, lRing fingerState
	rThumb, rIndex, rMiddle, rRing fingerState
	lOhCool, rOhCool               float64
	lWrist, rWrist                 int
	grip                           int
	speed                          float64
	params                         Params
}

func newSimContext(lGrip, rGrip int, initialSpeed float64, params Params) *simContext {
	return &simContext{
		lThumb: newFingerState(), lIndex: newFingerState(), lMiddle: newFingerState(), lRing: newFingerState(),
		rThumb: newFingerState(), rIndex: newFingerState(), rMiddle: newFingerState(), rRing: newFingerState(),
		lOhCool: -1.0, rOhCool: -1.0,
		lWrist:  lGrip,
		rWrist:  rGrip,
		grip:    1,
		speed:   initialSpeed,
		params:  params,
	}
}

func (c *simContext) lMaxTime() float64 {
	return max(c.lThumb.time, max(c.lIndex.time, max(c.lMiddle.time, c.lRing.time)))
}

func (c *simContext) rMaxTime() float64 {
	return max(c.rThumb.time, max(c.rIndex.time, max(c.rMiddle.time, c.rRing.time)))
}

// earlyReturn packages a simulation's abandoned-move outcome: the
// index it stopped at, the speed reached, the wrist states it would
// have ended at, and each hand's last finger time, exactly as
// make_early_return does.
func (c *simContext) earlyReturn(j int, lWristVal, rWristVal float64) [6]float64 {
	return [6]float64{float64(j), c.speed, lWristVal, rWristVal, c.lMaxTime(), c.rMaxTime()}
}

// overwork charges a penalty when finger is away from locationPrefer
// and hasn't had penalty seconds to recover by speed.
func overwork(finger fingerState, locationPrefer string, speed, penalty float64) float64 {
	if finger.location != locationPrefer && speed-finger.time < penalty {
		return penalty - speed + finger.time
	}
	return 0.0
}

// moveOutcome is either "simulation may continue" (ok) or a
// terminal early-return vector recording why it stopped.
type moveOutcome struct {
	ok        bool
	earlyExit [6]float64
}

func success() moveOutcome                      { return moveOutcome{ok: true} }
func earlyExit(v [6]float64) moveOutcome        { return moveOutcome{ok: false, earlyExit: v} }
