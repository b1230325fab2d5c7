// Package scoring evaluates how well a resume matches a job description,
// producing a weighted compatibility score, per-axis breakdown, qualitative
// insights, and improvement suggestions. All computation is synchronous,
// deterministic, and free of shared mutable state.
package scoring

import (
	"fmt"
	"math"

	"resume-match/internal/shared/telemetry"
)

// Fixed aggregation weights; they sum to 1.
const (
	weightKeywordMatch   = 0.40
	weightFormatting     = 0.20
	weightReadability    = 0.15
	weightStructure      = 0.15
	weightKeywordBalance = 0.10
)

// Suggester generates improvement suggestions. Implementations must honor
// the same contract as the built-in rules: fixed evaluation order, at most
// ten suggestions.
type Suggester interface {
	GenerateSuggestions(resumeText, jobDescriptionText string, breakdown Breakdown) []Suggestion
}

// keywordExtractor is the extraction strategy the engine runs against
// both texts. Satisfied by *Extractor.
type keywordExtractor interface {
	ExtractResume(text string) *KeywordSet
	ExtractJob(text string) *KeywordSet
}

// Engine scores resumes against job descriptions. A single Engine is
// stateless and safe for concurrent use.
type Engine struct {
	extractor keywordExtractor
	suggester Suggester
}

// NewEngine constructs an Engine using the built-in rule-based suggester.
func NewEngine() *Engine {
	return &Engine{extractor: NewExtractor()}
}

// NewEngineWithSuggester constructs an Engine whose suggestion generation
// is delegated to the given strategy. A nil suggester falls back to the
// rule-based path.
func NewEngineWithSuggester(s Suggester) *Engine {
	return &Engine{extractor: NewExtractor(), suggester: s}
}

// ComputeScore evaluates the resume against the job description. It never
// fails: any internal panic is recovered, logged, and converted to the
// all-zero result. Callers should present a zeroed result as "analysis
// unavailable", not as a zero-quality resume.
func (e *Engine) ComputeScore(resumeText, jobDescriptionText string) (result ScoreResult) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("scoring.degraded", map[string]any{
				"error": fmt.Sprint(rec),
			})
			result = ScoreResult{}
		}
	}()

	jdKeywords := e.extractor.ExtractJob(jobDescriptionText)
	resumeKeywords := e.extractor.ExtractResume(resumeText)

	keywordMatch := scoreKeywordMatch(jdKeywords, resumeKeywords)
	formatting := scoreFormatting(resumeText)
	readability := scoreReadability(resumeText)
	structure := scoreStructure(resumeText)
	balance := scoreKeywordBalance(resumeText, jdKeywords)

	// The breakdown reports each sub-score rounded, but the weighted sum
	// uses the unrounded values before the final rounding step.
	total := keywordMatch*weightKeywordMatch +
		formatting*weightFormatting +
		readability*weightReadability +
		structure*weightStructure +
		balance*weightKeywordBalance

	return ScoreResult{
		TotalScore: roundScore(total),
		Breakdown: Breakdown{
			KeywordMatch:   roundScore(keywordMatch),
			Formatting:     roundScore(formatting),
			Readability:    roundScore(readability),
			Structure:      roundScore(structure),
			KeywordBalance: roundScore(balance),
		},
	}
}

func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func roundScore(value float64) int {
	return int(math.Round(clampScore(value)))
}
