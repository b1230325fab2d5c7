package scoring

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"resume-match/internal/shared/telemetry"
)

const sampleResume = `Summary
Senior backend engineer with a focus on distributed systems.
Contact: jane@example.com, 555-123-4567

Experience
Led the platform team, developed services in Go and Python, improved API
latency by 40%, managed releases for 200 customers, created internal tooling.
Worked March 2019 to June 2024 across two product lines.

Education
BSc Computer Science

Skills
Go, Python, Docker, Kubernetes, AWS, PostgreSQL, Terraform`

const sampleJob = `We are hiring a senior backend engineer. The role requires Go,
Python, Docker, and Kubernetes experience, plus AWS and PostgreSQL. Strong
communication and leadership expected. Terraform is a bonus.`

func TestComputeScoreWithinRange(t *testing.T) {
	e := NewEngine()
	result := e.ComputeScore(sampleResume, sampleJob)

	checks := map[string]int{
		"totalScore":     result.TotalScore,
		"keywordMatch":   result.Breakdown.KeywordMatch,
		"formatting":     result.Breakdown.Formatting,
		"readability":    result.Breakdown.Readability,
		"structure":      result.Breakdown.Structure,
		"keywordBalance": result.Breakdown.KeywordBalance,
	}
	for name, value := range checks {
		if value < 0 || value > 100 {
			t.Fatalf("%s out of range: %d", name, value)
		}
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	e := NewEngine()
	first := e.ComputeScore(sampleResume, sampleJob)
	second := e.ComputeScore(sampleResume, sampleJob)
	if first != second {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}

func TestComputeScoreAggregation(t *testing.T) {
	e := NewEngine()
	result := e.ComputeScore(sampleResume, sampleJob)

	jd := e.extractor.ExtractJob(sampleJob)
	resume := e.extractor.ExtractResume(sampleResume)
	keywordMatch := scoreKeywordMatch(jd, resume)
	formatting := scoreFormatting(sampleResume)
	readability := scoreReadability(sampleResume)
	structure := scoreStructure(sampleResume)
	balance := scoreKeywordBalance(sampleResume, jd)

	wantTotal := int(math.Round(keywordMatch*weightKeywordMatch +
		formatting*weightFormatting +
		readability*weightReadability +
		structure*weightStructure +
		balance*weightKeywordBalance))
	if result.TotalScore != wantTotal {
		t.Fatalf("total %d does not match weighted sub-scores %d", result.TotalScore, wantTotal)
	}
	if result.Breakdown.KeywordMatch != int(math.Round(keywordMatch)) {
		t.Fatalf("keywordMatch breakdown mismatch: %d vs %v", result.Breakdown.KeywordMatch, keywordMatch)
	}
	if result.Breakdown.Formatting != int(math.Round(formatting)) {
		t.Fatalf("formatting breakdown mismatch: %d vs %v", result.Breakdown.Formatting, formatting)
	}
}

func TestComputeScoreEmptyInputs(t *testing.T) {
	e := NewEngine()
	result := e.ComputeScore("", "")

	// Empty texts still produce a structural baseline, never a panic: the
	// readability and structure axes start at 100 and take no penalties.
	if result.Breakdown.KeywordMatch != 0 {
		t.Fatalf("expected keywordMatch 0 for empty job description, got %d", result.Breakdown.KeywordMatch)
	}
	if result.Breakdown.Structure != 100 {
		t.Fatalf("expected structure 100 for empty text, got %d", result.Breakdown.Structure)
	}
	if result.TotalScore < 0 || result.TotalScore > 100 {
		t.Fatalf("total out of range: %d", result.TotalScore)
	}
}

func TestComputeScoreFavorsTailoredResume(t *testing.T) {
	e := NewEngine()
	tailored := e.ComputeScore(sampleResume, sampleJob)
	unrelated := e.ComputeScore(strings.Repeat("banana split recipes and garden tips. ", 60), sampleJob)
	if tailored.Breakdown.KeywordMatch <= unrelated.Breakdown.KeywordMatch {
		t.Fatalf("expected tailored resume to match more keywords: %d vs %d",
			tailored.Breakdown.KeywordMatch, unrelated.Breakdown.KeywordMatch)
	}
}

type explodingExtractor struct{}

func (explodingExtractor) ExtractResume(string) *KeywordSet { panic("tokenizer failure") }
func (explodingExtractor) ExtractJob(string) *KeywordSet    { panic("tokenizer failure") }

func TestComputeScoreRecoversToZeroResult(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	e := &Engine{extractor: explodingExtractor{}}
	result := e.ComputeScore(sampleResume, sampleJob)

	if result != (ScoreResult{}) {
		t.Fatalf("expected all-zero result after internal panic, got %+v", result)
	}
	logged := buf.String()
	if !strings.Contains(logged, "scoring.degraded") {
		t.Fatalf("expected scoring.degraded telemetry line, got %q", logged)
	}
	if !strings.Contains(logged, "tokenizer failure") {
		t.Fatalf("expected panic value in telemetry line, got %q", logged)
	}
	if !strings.Contains(logged, `"level":"error"`) {
		t.Fatalf("expected error level telemetry line, got %q", logged)
	}
}

func TestClampAndRound(t *testing.T) {
	if clampScore(-5) != 0 || clampScore(120) != 100 || clampScore(55.5) != 55.5 {
		t.Fatalf("clampScore misbehaved")
	}
	if roundScore(49.5) != 50 || roundScore(49.4) != 49 || roundScore(150) != 100 {
		t.Fatalf("roundScore misbehaved")
	}
}
