package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-match/internal/scoring"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (
	id, resume_name, total_score, breakdown, strengths, weaknesses, suggestions, degraded, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	breakdown, err := json.Marshal(report.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	strengths, err := marshalStringList(report.Strengths)
	if err != nil {
		return err
	}
	weaknesses, err := marshalStringList(report.Weaknesses)
	if err != nil {
		return err
	}
	suggestions, err := json.Marshal(nonNilSuggestions(report.Suggestions))
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.ResumeName,
		report.TotalScore,
		breakdown,
		strengths,
		weaknesses,
		suggestions,
		report.Degraded,
		report.CreatedAt,
	)
	return err
}

// GetByID returns a report by ID.
func (r *PGRepo) GetByID(ctx context.Context, reportID string) (Report, error) {
	const query = `
SELECT id, resume_name, total_score, breakdown, strengths, weaknesses, suggestions, degraded, created_at
FROM reports
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, reportID)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	return report, err
}

// List returns reports newest first, with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Report, error) {
	const query = `
SELECT id, resume_name, total_score, breakdown, strengths, weaknesses, suggestions, degraded, created_at
FROM reports
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Report, 0, limit)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	var breakdown, strengths, weaknesses, suggestions []byte
	if err := row.Scan(
		&report.ID,
		&report.ResumeName,
		&report.TotalScore,
		&breakdown,
		&strengths,
		&weaknesses,
		&suggestions,
		&report.Degraded,
		&report.CreatedAt,
	); err != nil {
		return Report{}, err
	}

	if err := json.Unmarshal(breakdown, &report.Breakdown); err != nil {
		return Report{}, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	if err := json.Unmarshal(strengths, &report.Strengths); err != nil {
		return Report{}, fmt.Errorf("unmarshal strengths: %w", err)
	}
	if err := json.Unmarshal(weaknesses, &report.Weaknesses); err != nil {
		return Report{}, fmt.Errorf("unmarshal weaknesses: %w", err)
	}
	if err := json.Unmarshal(suggestions, &report.Suggestions); err != nil {
		return Report{}, fmt.Errorf("unmarshal suggestions: %w", err)
	}
	return report, nil
}

func marshalStringList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return data, nil
}

func nonNilSuggestions(items []scoring.Suggestion) []scoring.Suggestion {
	if items == nil {
		return []scoring.Suggestion{}
	}
	return items
}
