package scoring

import "strings"

// scoreFormatting awards 20 points per detected required section signal
// plus a length bonus: 20 for 300-800 words, otherwise 10 above 200 words.
// The raw sum can reach 120; the final value is clamped to 100.
//
// Weight: 0.20.
func scoreFormatting(resumeText string) float64 {
	score := 0.0
	for _, signal := range sectionSignals {
		if signal.pattern.MatchString(resumeText) {
			score += 20
		}
	}

	words := countWords(resumeText)
	if words >= 300 && words <= 800 {
		score += 20
	} else if words > 200 {
		score += 10
	}
	return clampScore(score)
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
