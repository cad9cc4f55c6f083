package wikifetch

import "unicode"

// CountWords returns a mixed-script word count: each CJK ideograph counts
// as one unit, and each maximal run of Latin letters counts as one unit.
// This is a documented heuristic, not a linguistic tokenizer; digits,
// punctuation and other scripts do not contribute.
func CountWords(text string) int {
	count := 0
	inLatinRun := false

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			count++
			inLatinRun = false
		case unicode.Is(unicode.Latin, r):
			if !inLatinRun {
				count++
				inLatinRun = true
			}
		default:
			inLatinRun = false
		}
	}

	return count
}
