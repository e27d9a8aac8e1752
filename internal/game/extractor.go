package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"puzzle-score-bot/internal/model"
)

const (
	// MaxRows is the attempt limit shared by the row-count games.
	MaxRows = 6

	// FailedRowScore is assigned when a row-count result reports total
	// failure ("X/6"): one worse than the maximum allowed rows.
	FailedRowScore = MaxRows + 1

	// GridFailurePenalty is added for every failed sub-puzzle in a grid
	// result.
	GridFailurePenalty = 10

	// failureMarker is the literal a row-count game prints instead of the
	// attempt count when the puzzle was not solved.
	failureMarker = "X"
)

// Errors returned by ExtractScore. Callers must not persist a record when
// extraction fails.
var (
	ErrMalformedResult = errors.New("malformed game result")
	ErrUnknownGame     = errors.New("unknown game")
)

// Grid token runes. Keycap digits render as digit + variation selector +
// combining enclosing keycap; some clients omit the variation selector.
const (
	variationSelector = '\ufe0f'
	keycapMark        = '\u20e3'
	failureSquare     = '\U0001F7E5' // 🟥 large red square
)

// keycapValues maps the digit rune of a keycap emoji to its score
// contribution.
var keycapValues = map[rune]int{
	'1': 1,
	'2': 2,
	'3': 3,
	'4': 4,
	'5': 5,
	'6': 6,
	'7': 7,
	'8': 8,
	'9': 9,
}

// ExtractScore parses the numeric score out of a classified game message.
// Lower scores are better for every game family.
func ExtractScore(text string, g model.Game) (int, error) {
	switch g {
	case model.GameFlagle, model.GameWordle, model.GameKelma:
		return extractRowCount(text)
	case model.GameQuordle:
		return extractGrid(text)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGame, g)
	}
}

// extractRowCount reads an "attempts/max" fraction from the third
// whitespace-delimited token, e.g. "Wordle 247 4/6" yields 4 and
// "Wordle 247 X/6" yields FailedRowScore.
func extractRowCount(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return 0, fmt.Errorf("%w: missing result token", ErrMalformedResult)
	}

	attempts, _, found := strings.Cut(fields[2], "/")
	if !found {
		return 0, fmt.Errorf("%w: token %q has no attempt fraction", ErrMalformedResult, fields[2])
	}

	if attempts == failureMarker {
		return FailedRowScore, nil
	}

	score, err := strconv.Atoi(attempts)
	if err != nil {
		return 0, fmt.Errorf("%w: attempt count %q is not a number", ErrMalformedResult, attempts)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: negative attempt count %d", ErrMalformedResult, score)
	}

	return score, nil
}

// extractGrid sums the two emoji lines of a quordle share. The four
// sub-puzzle results appear on the second and third lines as keycap digits
// (attempts used) or red squares (failed sub-puzzle).
func extractGrid(text string) (int, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return 0, fmt.Errorf("%w: grid result needs at least 3 lines, got %d", ErrMalformedResult, len(lines))
	}
	return decodeGridLine(lines[1]) + decodeGridLine(lines[2]), nil
}

// decodeGridLine scores a single grid row. Keycap digits contribute their
// mapped value, failure squares contribute GridFailurePenalty, and any other
// rune contributes nothing.
func decodeGridLine(line string) int {
	runes := []rune(line)
	total := 0
	for i, r := range runes {
		if r == failureSquare {
			total += GridFailurePenalty
			continue
		}
		if v, ok := keycapValues[r]; ok && isKeycap(runes, i) {
			total += v
		}
	}
	return total
}

// isKeycap reports whether the digit at index i is followed by the keycap
// combining mark, with or without the variation selector in between.
func isKeycap(runes []rune, i int) bool {
	if i+1 < len(runes) && runes[i+1] == keycapMark {
		return true
	}
	return i+2 < len(runes) && runes[i+1] == variationSelector && runes[i+2] == keycapMark
}
