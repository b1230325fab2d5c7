package reports

import (
	"time"

	"resume-match/internal/scoring"
)

// Report is a persisted analysis result: the score, its breakdown, and the
// derived insights and suggestions, keyed by creation timestamp.
type Report struct {
	ID          string               `json:"id"`
	ResumeName  string               `json:"resumeName,omitempty"`
	TotalScore  int                  `json:"totalScore"`
	Breakdown   scoring.Breakdown    `json:"breakdown"`
	Strengths   []string             `json:"strengths"`
	Weaknesses  []string             `json:"weaknesses"`
	Suggestions []scoring.Suggestion `json:"suggestions"`
	Degraded    bool                 `json:"degraded"`
	CreatedAt   time.Time            `json:"createdAt"`
}
