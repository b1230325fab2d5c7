package scoring

import "strings"

// scoreReadability starts at 100 and applies signed adjustments: penalties
// for first-person pronoun density and sentence length outside a readable
// band, a bonus for strong action verbs.
//
// Weight: 0.15.
func scoreReadability(resumeText string) float64 {
	score := 100.0
	words := countWords(resumeText)

	if words > 0 {
		pronouns := len(pronounPattern.FindAllString(resumeText, -1))
		ratio := float64(pronouns) / float64(words)
		if ratio > 0.05 {
			score -= 30
		} else if ratio > 0.02 {
			score -= 15
		}
	}

	sentences := countSentences(resumeText)
	if sentences == 0 {
		sentences = 1
	}
	average := float64(words) / float64(sentences)
	if average > 25 {
		score -= 20
	} else if average < 10 {
		score -= 10
	}

	verbs := countActionVerbs(resumeText)
	if verbs >= 5 {
		score += 20
	} else if verbs >= 3 {
		score += 10
	}
	return clampScore(score)
}

// countSentences splits on sentence terminators and drops empty fragments.
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

func countActionVerbs(text string) int {
	verbs := make(map[string]bool, len(actionVerbs))
	for _, v := range actionVerbs {
		verbs[v] = true
	}
	count := 0
	for _, token := range wordTokens.FindAllString(strings.ToLower(text), -1) {
		if verbs[token] {
			count++
		}
	}
	return count
}
