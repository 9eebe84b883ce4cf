package analyses

import (
	"context"
	"time"

	"ats-backend/internal/engine"
)

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error
	UpdateResult(ctx context.Context, analysisID string, result engine.Result, completedAt time.Time) error
	UpdateFailure(ctx context.Context, analysisID, errorCode, errorMessage string, completedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]Analysis, error)
	ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Analysis, error)
}
