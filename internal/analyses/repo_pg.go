package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ats-backend/internal/engine"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, document_id, job_description, status, engine_version, result, error_code, error_message, started_at, completed_at, created_at`

// Create inserts a new queued analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    document_id,
    job_description,
    status,
    engine_version,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.DocumentID,
		analysis.JobDescription,
		analysis.Status,
		analysis.EngineVersion,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// SetProcessing transitions a queued analysis to processing.
func (r *PGRepo) SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $1, started_at = $2
WHERE id = $3 AND status = $4`
	_, err := r.DB.ExecContext(ctx, query, StatusProcessing, startedAt, analysisID, StatusQueued)
	return err
}

// UpdateResult stores a completed result.
func (r *PGRepo) UpdateResult(ctx context.Context, analysisID string, result engine.Result, completedAt time.Time) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	const query = `
UPDATE analyses
SET status = $1, result = $2, completed_at = $3
WHERE id = $4`
	_, err = r.DB.ExecContext(ctx, query, StatusCompleted, payload, completedAt, analysisID)
	return err
}

// UpdateFailure marks an analysis failed with a sanitized error.
func (r *PGRepo) UpdateFailure(ctx context.Context, analysisID, errorCode, errorMessage string, completedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $1, error_code = $2, error_message = $3, completed_at = $4
WHERE id = $5`
	_, err := r.DB.ExecContext(ctx, query, StatusFailed, errorCode, errorMessage, completedAt, analysisID)
	return err
}

// List returns analyses newest-first honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	return r.queryAnalyses(ctx, query, limit, offset)
}

// ListByDocument returns analyses for a document newest-first.
func (r *PGRepo) ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Analysis, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE document_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	return r.queryAnalyses(ctx, query, documentID, limit, offset)
}

func (r *PGRepo) queryAnalyses(ctx context.Context, query string, args ...any) ([]Analysis, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var engineVersion sql.NullString
	var result sql.NullString
	var errorCode sql.NullString
	var errorMessage sql.NullString
	var startedAt sql.NullTime
	var completedAt sql.NullTime
	err := row.Scan(
		&a.ID,
		&a.DocumentID,
		&a.JobDescription,
		&a.Status,
		&engineVersion,
		&result,
		&errorCode,
		&errorMessage,
		&startedAt,
		&completedAt,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if engineVersion.Valid {
		a.EngineVersion = engineVersion.String
	}
	if result.Valid && result.String != "" {
		var parsed engine.Result
		if err := json.Unmarshal([]byte(result.String), &parsed); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
		}
		a.Result = &parsed
	}
	if errorCode.Valid {
		a.ErrorCode = errorCode.String
	}
	if errorMessage.Valid {
		a.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		a.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		a.CompletedAt = &completedAt.Time
	}
	return a, nil
}

var _ Repo = (*PGRepo)(nil)
