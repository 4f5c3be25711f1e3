package fingermetric

import "strings"

// replaceDouble folds an adjacent repeated quarter/inverse move into
// its double form ("r r" -> "r2", "r' r'" -> "r2"... only a bare
// single-char or char+' token repeats into "<char>2"), exactly as
// replace_double does token-by-token on whitespace-split input.
func replaceDouble(input string) string {
	segs := strings.Split(input, " ")
	result := make([]string, 0, len(segs))

	for _, seg := range segs {
		if len(result) > 0 {
			last := result[len(result)-1]
			if last == seg && (len(seg) == 1 || (len(seg) == 2 && strings.HasSuffix(seg, "'"))) {
				base := seg[:1]
				result = result[:len(result)-1]
				result = append(result, base+"2")
				continue
			}
		}
		result = append(result, seg)
	}

	return strings.Join(result, " ")
}

func isValidMove(m string) bool {
	return validMoves[strings.ToLower(m)]
}

// processAlg normalizes sequence (folding doubles, dropping stray
// "2'" typos, discarding unrecognized tokens) and, when ignoreAUF is
// set, strips a leading/trailing U-layer adjustment — including the
// case where a single D move stands between that U and the boundary,
// in which the U is dropped and the D is kept.
func processAlg(sequence string, ignoreAUF bool) []string {
	alg := strings.ReplaceAll(replaceDouble(sequence), "2'", "2")

	var seq []string
	for _, s := range strings.Split(alg, " ") {
		if s != "" && isValidMove(s) {
			seq = append(seq, s)
		}
	}

	if !ignoreAUF {
		return seq
	}

	if len(seq) > 0 && strings.HasPrefix(seq[0], "U") {
		seq = seq[1:]
	} else if len(seq) >= 2 {
		if strings.HasPrefix(strings.ToLower(seq[0]), "d") && strings.HasPrefix(seq[1], "U") {
			seq[0], seq[1] = seq[1], seq[0]
			seq = seq[1:]
		}
	}

	if len(seq) > 0 && strings.HasPrefix(seq[len(seq)-1], "U") {
		seq = seq[:len(seq)-1]
	} else if len(seq) >= 2 {
		last := strings.ToLower(seq[len(seq)-1])
		secondLast := seq[len(seq)-2]
		if strings.HasPrefix(last, "d") && strings.HasPrefix(secondLast, "U") {
			seq[len(seq)-2] = seq[len(seq)-1]
			seq = seq[:len(seq)-1]
		}
	}

	return seq
}

// MoveCount counts sequence's moves in metric ("FTM" face-turn, else
// quarter-turn where a "2" token costs 2), after AUF-trimming.
func MoveCount(sequence, metric string) uint32 {
	seq := processAlg(sequence, true)

	if metric == "FTM" {
		return uint32(len(seq))
	}

	var count uint32
	for _, m := range seq {
		if strings.HasSuffix(m, "2") {
			count += 2
		} else {
			count++
		}
	}
	return count
}
