package scoring

import "regexp"

// scoreKeywordBalance computes keyword density: total occurrences of
// job-description keywords as a percentage of resume word count. The ideal
// band is 1-3%; sparse or stuffed resumes score lower, and resumes outside
// a reasonable length take an additional penalty. Only a floor of 0 is
// enforced after the penalty; band scores never exceed 100.
//
// Weight: 0.10.
func scoreKeywordBalance(resumeText string, jdKeywords *KeywordSet) float64 {
	words := countWords(resumeText)

	frequency := 0
	for _, term := range jdKeywords.Terms() {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		frequency += len(pattern.FindAllStringIndex(resumeText, -1))
	}

	density := 0.0
	if words > 0 {
		density = 100 * float64(frequency) / float64(words)
	}

	var score float64
	switch {
	case density < 1:
		score = 50
	case density <= 3:
		score = 100
	case density > 5:
		score = 40
	default:
		score = 70
	}

	if words < 250 {
		score -= 30
	} else if words > 1000 {
		score -= 20
	}
	if score < 0 {
		score = 0
	}
	return score
}
