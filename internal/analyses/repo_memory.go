package analyses

import (
	"context"
	"sort"
	"sync"
	"time"

	"ats-backend/internal/engine"
)

// MemoryRepo is an in-memory implementation of Repo for tests and
// database-less development.
type MemoryRepo struct {
	mu       sync.RWMutex
	analyses []Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores an analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses = append(r.analyses, analysis)
	return nil
}

// GetByID returns an analysis by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.analyses {
		if r.analyses[i].ID == analysisID {
			return r.analyses[i], nil
		}
	}
	return Analysis{}, ErrNotFound
}

// SetProcessing transitions a queued analysis to processing.
func (r *MemoryRepo) SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.analyses {
		if r.analyses[i].ID == analysisID {
			if r.analyses[i].Status == StatusQueued {
				r.analyses[i].Status = StatusProcessing
				r.analyses[i].StartedAt = &startedAt
			}
			return nil
		}
	}
	return ErrNotFound
}

// UpdateResult stores a completed result.
func (r *MemoryRepo) UpdateResult(ctx context.Context, analysisID string, result engine.Result, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.analyses {
		if r.analyses[i].ID == analysisID {
			r.analyses[i].Status = StatusCompleted
			r.analyses[i].Result = &result
			r.analyses[i].CompletedAt = &completedAt
			return nil
		}
	}
	return ErrNotFound
}

// UpdateFailure marks an analysis failed.
func (r *MemoryRepo) UpdateFailure(ctx context.Context, analysisID, errorCode, errorMessage string, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.analyses {
		if r.analyses[i].ID == analysisID {
			r.analyses[i].Status = StatusFailed
			r.analyses[i].ErrorCode = errorCode
			r.analyses[i].ErrorMessage = errorMessage
			r.analyses[i].CompletedAt = &completedAt
			return nil
		}
	}
	return ErrNotFound
}

// List returns analyses newest-first honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return r.list(ctx, "", limit, offset)
}

// ListByDocument returns analyses for a document newest-first.
func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Analysis, error) {
	return r.list(ctx, documentID, limit, offset)
}

func (r *MemoryRepo) list(ctx context.Context, documentID string, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	analyses := make([]Analysis, 0, len(r.analyses))
	for i := range r.analyses {
		if documentID == "" || r.analyses[i].DocumentID == documentID {
			analyses = append(analyses, r.analyses[i])
		}
	}
	r.mu.RUnlock()

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})

	if offset >= len(analyses) {
		return []Analysis{}, nil
	}
	end := len(analyses)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return analyses[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
