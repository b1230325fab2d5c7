package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/scoring"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/telemetry"
)

// MinTextChars is the minimum usable length for either input text.
// Extracted resumes below this are treated as unreadable.
const MinTextChars = 100

// Scorer runs the analysis computation. Satisfied by *scoring.Engine.
type Scorer interface {
	ComputeScore(resumeText, jobDescriptionText string) scoring.ScoreResult
	ComputeInsights(breakdown scoring.Breakdown, resumeText, jobDescriptionText string) scoring.Insight
	GenerateSuggestions(resumeText, jobDescriptionText string, breakdown scoring.Breakdown) []scoring.Suggestion
}

// Service runs analyses and persists the resulting reports.
type Service struct {
	Engine Scorer
	Repo   Repo
}

// Analyze validates the input texts, runs the scoring engine, and stores
// the report. The engine itself never fails; an all-zero score marks the
// report degraded, meaning "analysis unavailable" rather than a
// zero-quality resume.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription, resumeName string) (Report, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobDescription = strings.TrimSpace(jobDescription)
	if len(resumeText) < MinTextChars {
		metrics.IncAnalysesRejected()
		return Report{}, fmt.Errorf("resume: %w", ErrTextTooShort)
	}
	if len(jobDescription) < MinTextChars {
		metrics.IncAnalysesRejected()
		return Report{}, fmt.Errorf("job description: %w", ErrTextTooShort)
	}

	startedAt := time.Now()
	result := s.Engine.ComputeScore(resumeText, jobDescription)
	insight := s.Engine.ComputeInsights(result.Breakdown, resumeText, jobDescription)
	suggestions := s.Engine.GenerateSuggestions(resumeText, jobDescription, result.Breakdown)
	durationMs := float64(time.Since(startedAt).Microseconds()) / 1000.0

	// A legitimate analysis always has a nonzero readability and structure
	// floor; the fully zeroed result only appears on internal failure.
	degraded := result == (scoring.ScoreResult{})

	report := Report{
		ID:          uuid.NewString(),
		ResumeName:  strings.TrimSpace(resumeName),
		TotalScore:  result.TotalScore,
		Breakdown:   result.Breakdown,
		Strengths:   insight.Strengths,
		Weaknesses:  insight.Weaknesses,
		Suggestions: suggestions,
		Degraded:    degraded,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, report); err != nil {
		return Report{}, fmt.Errorf("store report: %w", err)
	}

	metrics.IncAnalyses()
	metrics.ObserveAnalysisDurationMs(durationMs)
	if degraded {
		metrics.IncAnalysesDegraded()
	} else {
		metrics.ObserveTotalScore(report.TotalScore)
	}
	telemetry.Info("analysis.complete", map[string]any{
		"report_id":   report.ID,
		"total_score": report.TotalScore,
		"degraded":    degraded,
		"duration_ms": durationMs,
	})

	return report, nil
}

// Get returns a report by ID.
func (s *Service) Get(ctx context.Context, reportID string) (Report, error) {
	if reportID == "" {
		return Report{}, errors.New("reportID is required")
	}
	return s.Repo.GetByID(ctx, reportID)
}

// List returns reports newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Report, error) {
	return s.Repo.List(ctx, limit, offset)
}
