package scramble

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/llminxsolver/minx"
)

// Parse compiles a scramble DSL string into its ordered segments and
// case-number filter. An empty (or all-whitespace) input parses to an
// empty ParsedScramble, not an error.
func Parse(scramble string) (ParsedScramble, error) {
	trimmed := strings.TrimSpace(scramble)
	if trimmed == "" {
		return ParsedScramble{}, nil
	}

	body, modifiers, err := extractModifiers(trimmed)
	if err != nil {
		return ParsedScramble{}, err
	}

	segments, err := parseSegments(body)
	if err != nil {
		return ParsedScramble{}, err
	}

	return ParsedScramble{Segments: segments, Modifiers: modifiers}, nil
}

// extractModifiers splits input on its first '#' and parses whatever
// follows as a CaseModifiers spec.
func extractModifiers(input string) (string, CaseModifiers, error) {
	idx := strings.IndexByte(input, '#')
	if idx < 0 {
		return input, CaseModifiers{}, nil
	}
	body := input[:idx]
	mods, err := parseModifierString(input[idx+1:])
	return body, mods, err
}

// parseModifierString parses the comma-separated modifier list after
// '#': a bare number is a specific case, "a-b" is an inclusive range,
// and "n+" means "case n and every case after it". Malformed tokens
// are silently dropped, matching the original's lenient parser.
func parseModifierString(input string) (CaseModifiers, error) {
	var mods CaseModifiers
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.Contains(part, "-"):
			bounds := strings.SplitN(part, "-", 2)
			start, errA := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, errB := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if errA == nil && errB == nil && start <= end && start > 0 {
				mods.Ranges = append(mods.Ranges, [2]int{start, end})
			}
		case strings.HasSuffix(part, "+"):
			n, err := strconv.Atoi(strings.TrimSuffix(part, "+"))
			if err == nil && n > 0 {
				mods.StartFrom = n
			}
		default:
			n, err := strconv.Atoi(part)
			if err == nil && n > 0 {
				mods.SpecificCases = append(mods.SpecificCases, n)
			}
		}
	}
	return mods, nil
}

// parseSegments scans input left to right, collecting plain-move runs
// and bracketed '[...]' series / '<...>' generator groups in order.
func parseSegments(input string) ([]Segment, error) {
	var segments []Segment
	var plain strings.Builder
	runes := []rune(input)

	flushPlain := func() {
		if s := plain.String(); strings.TrimSpace(s) != "" {
			segments = append(segments, Segment{Kind: SegmentPlain, Plain: s})
		}
		plain.Reset()
	}

	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '[':
			flushPlain()
			content, next, err := extractBracketed(runes, i+1, ']')
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Kind: SegmentSeries, Options: splitMoves(content)})
			i = next
		case '<':
			flushPlain()
			content, next, err := extractBracketed(runes, i+1, '>')
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Kind: SegmentGenerators, Options: splitMoves(content)})
			i = next
		default:
			plain.WriteRune(runes[i])
			i++
		}
	}
	flushPlain()

	return segments, nil
}

// extractBracketed reads runes from start until the matching closing
// bracket (tracking nested '[' and '<' so commas inside a sub-bracket
// don't split early), returning the content and the index just past
// the closing bracket.
func extractBracketed(runes []rune, start int, closing rune) (string, int, error) {
	depth := 1
	var content strings.Builder
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case '[', '<':
			depth++
		case ']', '>':
			depth--
			if depth == 0 && runes[i] == closing {
				return content.String(), i + 1, nil
			}
		}
		content.WriteRune(runes[i])
	}
	return "", 0, newErr(ErrParse, "unclosed bracket, expected %q", closing)
}

// splitMoves splits bracketed content into its comma-separated
// alternatives, respecting nested brackets. If there is exactly one
// alternative and it contains no comma, it is re-split on whitespace
// instead — this is how "R U R' U'" inside a single bracket becomes
// four single-move options rather than one combined string.
func splitMoves(content string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, r := range content {
		switch r {
		case '[', '<':
			depth++
		case ']', '>':
			depth--
		}
		if r == ',' && depth == 0 {
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	parts = append(parts, strings.TrimSpace(cur.String()))

	if len(parts) == 1 && !strings.Contains(content, ",") {
		return strings.Fields(content)
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseMoves parses a whitespace-separated move string into minx.Moves.
func ParseMoves(input string) ([]minx.Move, error) {
	fields := strings.Fields(input)
	moves := make([]minx.Move, 0, len(fields))
	for _, f := range fields {
		mv, err := minx.ParseMove(f)
		if err != nil {
			return nil, newErr(ErrInvalidMove, "unrecognized move: %q", f)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// ParseEquivalences parses the free-form equivalence/orientation-group
// declaration block accompanying a scramble: "{piece1 piece2}" braces
// declare an equivalence set, and "n: piece1 piece2" lines declare an
// orientation group of n distinguishable orientations.
func ParseEquivalences(input string) ([]EquivalenceSet, []OrientationGroup) {
	var sets []EquivalenceSet
	inBraces := false
	var brace strings.Builder
	for _, r := range input {
		switch {
		case r == '{':
			inBraces = true
			brace.Reset()
		case r == '}':
			inBraces = false
			if pieces := strings.Fields(brace.String()); len(pieces) > 0 {
				sets = append(sets, EquivalenceSet{Pieces: pieces})
			}
		case inBraces:
			brace.WriteRune(r)
		}
	}

	var groups []OrientationGroup
	for _, line := range strings.Split(input, "\n") {
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(line[:idx]))
		if err != nil {
			continue
		}
		pieces := strings.Fields(line[idx+1:])
		if len(pieces) == 0 {
			continue
		}
		groups = append(groups, OrientationGroup{NumOrientations: uint8(n), Pieces: pieces})
	}

	return sets, groups
}
