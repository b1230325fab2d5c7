package scoring

type insightRule struct {
	high     int
	low      int
	strength string
	weakness string
	value    func(Breakdown) int
}

// insightRules map breakdown fields to qualitative statements. Each field
// contributes at most one strength or one weakness, never both; values
// strictly between the thresholds contribute nothing. Evaluation order is
// fixed and determines output order.
var insightRules = []insightRule{
	{
		high:     70,
		low:      50,
		strength: "Good keyword match with the job description",
		weakness: "Missing many keywords from the job description",
		value:    func(b Breakdown) int { return b.KeywordMatch },
	},
	{
		high:     80,
		low:      60,
		strength: "Well-structured resume with clear sections",
		weakness: "Resume is missing standard sections or has an unusual length",
		value:    func(b Breakdown) int { return b.Formatting },
	},
	{
		high:     75,
		low:      60,
		strength: "Clear, professional writing style",
		weakness: "Writing style could be clearer and more action-oriented",
		value:    func(b Breakdown) int { return b.Readability },
	},
	{
		high:     80,
		low:      60,
		strength: "Clean layout that ATS software can parse reliably",
		weakness: "Decorative formatting may break ATS parsing",
		value:    func(b Breakdown) int { return b.Structure },
	},
	{
		high:     70,
		low:      50,
		strength: "Balanced keyword usage throughout the resume",
		weakness: "Job keywords appear too rarely or too often in the resume",
		value:    func(b Breakdown) int { return b.KeywordBalance },
	},
}

// ComputeInsights derives strengths and weaknesses from a breakdown via
// fixed threshold rules. The raw texts are part of the contract for future
// message enrichment; the threshold rules consume only the breakdown.
func (e *Engine) ComputeInsights(breakdown Breakdown, resumeText, jobDescriptionText string) Insight {
	out := Insight{Strengths: []string{}, Weaknesses: []string{}}
	for _, rule := range insightRules {
		value := rule.value(breakdown)
		switch {
		case value >= rule.high:
			out.Strengths = append(out.Strengths, rule.strength)
		case value < rule.low:
			out.Weaknesses = append(out.Weaknesses, rule.weakness)
		}
	}
	return out
}
