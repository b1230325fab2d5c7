package scoring

import "strings"

// scoreStructure starts at 100 and penalizes layouts that tend to break
// ATS parsers: decorative glyphs and tab-heavy multi-column formatting.
// Two or more date-like strings earn a bonus for a legible work timeline.
//
// Weight: 0.15.
func scoreStructure(resumeText string) float64 {
	score := 100.0
	if strings.ContainsAny(resumeText, decorativeGlyphs) {
		score -= 30
	}
	if strings.Count(resumeText, "\t") > 10 {
		score -= 20
	}
	if countDates(resumeText) >= 2 {
		score += 10
	}
	return clampScore(score)
}

func countDates(text string) int {
	total := 0
	for _, pattern := range datePatterns {
		total += len(pattern.FindAllString(text, -1))
	}
	return total
}
