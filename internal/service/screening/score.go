package screening

import (
	"strings"
	"unicode/utf8"

	"cognitive-screening-service/internal/locale"
)

// slumsQuestionCount is the number of interview questions.
const slumsQuestionCount = 11

// slumsDeclaredMax is the maximum score the instrument reports. The
// per-question rules can only award slumsAttainableMax points in
// total; the declared scale is kept as the instrument defines it
// rather than corrected here.
const slumsDeclaredMax = 30

// slumsQuestionMaxima are the per-question score ceilings.
var slumsQuestionMaxima = [slumsQuestionCount]int{1, 1, 1, 0, 3, 5, 1, 2, 2, 1, 2}

// SlumsAttainableMax returns the sum of the per-question maxima, the
// highest score the rules can actually award.
func SlumsAttainableMax() int {
	sum := 0
	for _, m := range slumsQuestionMaxima {
		sum += m
	}
	return sum
}

// SlumsQuestionMax returns the score ceiling for one question.
func SlumsQuestionMax(index int) int {
	if index < 0 || index >= slumsQuestionCount {
		return 0
	}
	return slumsQuestionMaxima[index]
}

// ScoreAnswer grades one interview answer. It is a pure, total
// function: any string (including empty) yields a deterministic,
// non-negative score bounded by the question's maximum. Matching is
// case-insensitive substring containment.
func ScoreAnswer(pack *locale.Pack, index int, answer string) int {
	lower := strings.ToLower(answer)

	switch index {
	case 0: // Day of week
		if strings.Contains(lower, "星期") || strings.Contains(lower, "日") {
			return 1
		}
		return 0

	case 1: // Where you live
		if utf8.RuneCountInString(answer) > 2 {
			return 1
		}
		return 0

	case 2: // Which city
		if utf8.RuneCountInString(answer) > 1 {
			return 1
		}
		return 0

	case 3: // Memorization prompt, not scored
		return 0

	case 4: // Serial sevens from 100
		// Any correct step earns full credit; the finer-grained
		// partial-credit branches are unreachable in the source
		// instrument, so only the effective rule is kept.
		if strings.Contains(lower, "93") || strings.Contains(lower, "86") || strings.Contains(lower, "79") {
			return 3
		}
		return 0

	case 5: // Recall of the five items
		score := 0
		for _, item := range pack.Slums.RecallItems {
			if strings.Contains(lower, item) {
				score++
			}
		}
		return min(score, 5)

	case 6: // Digit span backwards: 7,4,2 -> 2,4,7
		if strings.Contains(lower, "247") || strings.Contains(lower, "2 4 7") {
			return 1
		}
		return 0

	case 7: // Analogy: hammer and nail
		if containsAny(lower, pack.Slums.NailTokens) {
			return 2
		}
		return 0

	case 8: // Arithmetic: two apples at 3 dollars
		if strings.Contains(lower, "6") || strings.Contains(lower, "六") {
			return 2
		}
		return 0

	case 9: // Sentence repetition
		if strings.Contains(lower, pack.Slums.SunnyToken) && strings.Contains(lower, pack.Slums.ParkToken) {
			return 1
		}
		return 0

	case 10: // Sentence interpretation
		if utf8.RuneCountInString(answer) > 5 {
			return 2
		}
		return 0

	default:
		return 0
	}
}
