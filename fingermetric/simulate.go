package fingermetric

import "strings"

// simulate replays splitSeq (already AUF-trimmed move tokens in their
// original case) from the given wrist grip/speed starting point and reports
// either how far it got before an unrecognized-for-this-context
// transition forced an early stop, or the full run's resulting speed.
// Grounded on finger_sim/mod.rs's test function.
func simulate(splitSeq []string, lGrip, rGrip int, initialSpeed float64, params Params) [6]float64 {
	ctx := newSimContext(lGrip, rGrip, initialSpeed, params)
	udgrip := -1
	var prevSpeed *float64
	var firstMoveSpeed *float64

	for j, mv := range splitSeq {
		normalMove := strings.ToUpper(mv)
		prevMove := " "
		if j > 0 {
			prevMove = strings.ToUpper(splitSeq[j-1])
		}

		if prevSpeed != nil {
			v := ctx.speed
			firstMoveSpeed = &v
			ctx.speed = *prevSpeed
		}

		if j < len(splitSeq)-1 {
			next := splitSeq[j+1]
			if (strings.HasPrefix(mv, "U") && strings.HasPrefix(next, "D")) ||
				(strings.HasPrefix(mv, "D") && strings.HasPrefix(next, "U")) {
				v := ctx.speed
				prevSpeed = &v
			}
		}

		var outcome moveOutcome
		switch normalMove {
		case "R'":
			outcome = handleRi(ctx, j)
		case "R":
			outcome = handleR(ctx, j)
		case "R2":
			outcome = handleR2(ctx, j)
		case "U":
			outcome = handleU(ctx, j, prevMove)
		case "U'":
			outcome = handleUi(ctx, j, prevMove)
		case "U2":
			outcome = handleU2(ctx, j)
		case "D":
			outcome = handleD(ctx, j, prevMove)
		case "D'":
			outcome = handleDi(ctx, j, prevMove)
		case "D2":
			outcome = handleD2(ctx, j, prevMove)
		case "L":
			outcome = handleL(ctx, j)
		case "L'":
			outcome = handleLi(ctx, j)
		case "L2":
			outcome = handleL2(ctx, j)
		case "F":
			outcome = handleF(ctx, j, mv, prevMove)
		case "F'":
			outcome = handleFi(ctx, j, mv, prevMove)
		case "F2":
			outcome = handleF2(ctx, j, prevMove)
		case "BL":
			outcome = handleBl(ctx, j, prevMove)
		case "BL'":
			outcome = handleBli(ctx, j, prevMove)
		case "BL2":
			outcome = handleBl2(ctx, j, prevMove)
		case "BR":
			outcome = handleBr(ctx, j, prevMove)
		case "BR'":
			outcome = handleBri(ctx, j, prevMove)
		case "BR2":
			outcome = handleBr2(ctx, j, prevMove)
		case "X":
			outcome = handleX(ctx, j)
		case "X'":
			outcome = handleXi(ctx, j)
		case "X2":
			outcome = handleX2(ctx, j)
		case "Y", "Y'", "Z", "Z'":
			outcome = handleYZ(ctx, j)
		case "Y2", "Z2":
			outcome = handleY2Z2(ctx, j)
		default:
			outcome = earlyExit(ctx.earlyReturn(j, float64(ctx.lWrist), float64(ctx.rWrist)))
		}

		if !outcome.ok {
			return outcome.earlyExit
		}

		if firstMoveSpeed != nil {
			ctx.speed = max(ctx.speed, *firstMoveSpeed) + 0.5
			prevSpeed = nil
			firstMoveSpeed = nil
		}

		switch {
		case (strings.HasPrefix(mv, "R") || strings.HasPrefix(mv, "l")) && ctx.grip == -1:
			ctx.grip = 1
			ctx.speed += 0.65
		case (strings.HasPrefix(mv, "r") || strings.HasPrefix(mv, "L")) && ctx.grip == 1:
			ctx.grip = -1
			ctx.speed += 0.65
		}

		switch {
		case strings.HasPrefix(mv, "d") && udgrip == -1:
			udgrip = 1
			ctx.speed += 2.25
		case (strings.HasPrefix(mv, "U") || strings.HasPrefix(mv, "u")) && udgrip == 1:
			udgrip = -1
			ctx.speed += 2.25
		}

		if j >= 2 {
			prev2 := splitSeq[j-2]
			prev1 := strings.ToUpper(splitSeq[j-1])
			switch {
			case (normalMove == "R" && mv == prev2 && prev1 == "U'") || (normalMove == "R'" && mv == prev2 && prev1 == "U"):
				ctx.speed -= 0.5
			case (normalMove == "R" && mv == prev2 && prev1 == "D'" && ctx.rWrist == 1) || (normalMove == "R'" && mv == prev2 && prev1 == "D"):
				ctx.speed -= 0.3
			}
		}

		if normalMove == "U" && (ctx.lWrist == -1 || ctx.rWrist == -1) {
			ctx.speed += ctx.params.Destabilize
		}
		if (normalMove == "BL" || normalMove == "BR") && (ctx.lWrist == 0 || ctx.rWrist == 0) {
			ctx.speed += ctx.params.Destabilize
		}
		if normalMove == "D" && (ctx.lWrist == 1 || ctx.rWrist == 1) {
			ctx.speed += ctx.params.Destabilize
		}
	}

	return [6]float64{-1.0, ctx.speed, float64(lGrip), float64(rGrip), 0.0, 0.0}
}
