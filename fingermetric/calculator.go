package fingermetric

import "math"

// Score returns sequence's physical-difficulty score under
// DefaultParams. Grounded on calculate_mcc.
func Score(sequence string) float64 {
	return ScoreWithParams(sequence, DefaultParams())
}

// ScoreWithParams explores every plausible regrip branching of
// sequence's execution and returns the fastest simulated completion
// time, rounded to one decimal place. Returns 0 for an empty (after
// AUF-trimming) sequence, and NaN if no viable regrip continuation
// exists at some point in the search — both match calculate_mcc_with_params.
func ScoreWithParams(sequence string, params Params) float64 {
	splitSeq := processAlg(sequence, true)
	if len(splitSeq) == 0 {
		return 0.0
	}

	tests := [][6]float64{
		simulate(splitSeq, 0, 0, 0.0, params),
		simulate(splitSeq, 0, -1, 1.0+params.AddRegrip, params),
		simulate(splitSeq, 0, 1, 1.0+params.AddRegrip, params),
		simulate(splitSeq, -1, 0, 1.0+params.AddRegrip, params),
		simulate(splitSeq, 1, 0, 1.0+params.AddRegrip, params),
	}

	for {
		best := tests[0]
		for _, t := range tests[1:] {
			preferT := (t[0] == -1.0 && (best[0] != -1.0 || best[1] > t[1])) ||
				(t[0] > best[0] && best[0] != -1.0) ||
				(t[0] == best[0] && t[1] < best[1] && best[0] != -1.0)
			if preferT {
				best = t
			}
		}

		if best[0] == -1.0 {
			return math.Round(best[1]*10.0) / 10.0
		}

		idx := int(best[0])
		tests = tests[:0]

		prevMoveType := byte(' ')
		if idx >= 1 {
			prevMoveType = splitSeq[idx-1][0]
		}
		prev2Type := byte(' ')
		if idx >= 2 {
			prev2Type = splitSeq[idx-2][0]
		}

		doubleRegrip := (best[2] > 1.0 || best[2] < -1.0) && (best[3] > 1.0 || best[3] < -1.0)

		for leftWrist := -1; leftWrist <= 1; leftWrist++ {
			for rightWrist := -1; rightWrist <= 1; rightWrist++ {
				leftMatch := best[2] == float64(leftWrist)
				rightMatch := best[3] == float64(rightWrist)

				if isRotationLetter(prevMoveType) {
					tests = append(tests, simulate(splitSeq[idx:], leftWrist, rightWrist, best[1], params))
					continue
				}

				rMoveLatency := 0.0
				if prevMoveType == 'R' || prev2Type == 'R' || prevMoveType == 'r' || prev2Type == 'r' {
					rMoveLatency = 1.0
				}
				lMoveLatency := 0.0
				if prevMoveType == 'L' || prev2Type == 'L' || prevMoveType == 'l' || prev2Type == 'l' {
					lMoveLatency = 1.0
				}

				switch {
				case leftMatch || doubleRegrip:
					rHandLatency := math.Max(2.0-(best[1]-best[5]), 0.0)
					penalty := math.Max(rHandLatency, math.Max(rMoveLatency, lMoveLatency*2.0))
					tests = append(tests, simulate(splitSeq[idx:], leftWrist, rightWrist, best[1]+penalty+params.AddRegrip, params))
				case rightMatch:
					lHandLatency := math.Max(2.0-(best[1]-best[4]), 0.0)
					penalty := math.Max(lHandLatency, math.Max(lMoveLatency, rMoveLatency*2.0))
					tests = append(tests, simulate(splitSeq[idx:], leftWrist, rightWrist, best[1]+penalty+params.AddRegrip, params))
				}
			}
		}

		splitSeq = splitSeq[idx:]

		if len(tests) == 0 {
			return math.NaN()
		}
	}
}

func isRotationLetter(c byte) bool {
	switch c {
	case 'X', 'x', 'Y', 'y', 'Z', 'z':
		return true
	default:
		return false
	}
}
