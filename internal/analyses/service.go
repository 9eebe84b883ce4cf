package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/documents"
	"ats-backend/internal/engine"
	"ats-backend/internal/extract"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo          Repo
	DocRepo       documents.Repo
	Store         object.ObjectStore
	Analyzer      *engine.Analyzer
	EngineVersion string
	Timeout       time.Duration
}

const defaultTimeout = 30 * time.Second

// Create enqueues a new analysis and kicks off asynchronous completion.
func (s *Service) Create(ctx context.Context, documentID, jobDescription string) (Analysis, error) {
	if documentID == "" {
		return Analysis{}, errors.New("documentID is required")
	}

	analysis := Analysis{
		ID:             uuid.NewString(),
		DocumentID:     documentID,
		JobDescription: jobDescription,
		Status:         StatusQueued,
		EngineVersion:  normalizeEngineVersion(s.EngineVersion),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	go s.completeAsync(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, errors.New("analysisID is required")
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns analyses ordered newest-first, optionally filtered by document.
func (s *Service) List(ctx context.Context, documentID string, limit, offset int) ([]Analysis, error) {
	if documentID != "" {
		return s.Repo.ListByDocument(ctx, documentID, limit, offset)
	}
	return s.Repo.List(ctx, limit, offset)
}

func normalizeEngineVersion(version string) string {
	if strings.TrimSpace(version) == "" {
		return "v1"
	}
	return strings.TrimSpace(version)
}

func (s *Service) completeAsync(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, "", fmt.Errorf("panic: %v", r), nil)
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.SetProcessing(ctx, analysisID, startedAt); err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})
	if s.DocRepo == nil || s.Store == nil || s.Analyzer == nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, errors.New("missing analysis dependencies"), &startedAt)
		return
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	doc, err := s.DocRepo.GetByID(ctx, analysis.DocumentID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document lookup id=%s: %w", analysis.DocumentID, err), &startedAt)
		return
	}

	var resumeText string
	if doc.ExtractedTextKey != "" {
		resumeText, err = loadText(ctx, s.Store, doc.ExtractedTextKey)
		if err != nil {
			s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s: load extracted text: %w", doc.ID, err), &startedAt)
			return
		}
	} else {
		resumeText, err = extract.FromObject(ctx, s.Store, doc.StorageKey, doc.FileName)
		if err != nil {
			s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s: %w", doc.ID, err), &startedAt)
			return
		}
		extractedKey := doc.StorageKey + ".extracted.txt"
		if err := s.DocRepo.UpdateExtraction(ctx, doc.ID, extractedKey, time.Now().UTC()); err != nil {
			s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s: update extraction: %w", doc.ID, err), &startedAt)
			return
		}
	}

	result := s.Analyzer.Analyze(resumeText, analysis.JobDescription)

	if err := ctx.Err(); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("analysis aborted: %w", err), &startedAt)
		return
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.UpdateResult(ctx, analysisID, result, completedAt); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs(&startedAt, &completedAt))
	metrics.ObserveAnalysisScore(float64(result.OverallScore))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"overall_score":     result.OverallScore,
		"classification":    result.Classification,
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
}

func (s *Service) failAnalysis(ctx context.Context, analysisID, documentID string, err error, startedAt *time.Time) {
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.UpdateFailure(context.Background(), analysisID, code, msg, completedAt); updateErr != nil {
		telemetry.Error("analysis.fail_update", map[string]any{
			"analysis_id": analysisID,
			"error":       updateErr.Error(),
			"orig_error":  msg,
		})
	}
	metrics.IncAnalysisFailed()
	if startedAt != nil {
		metrics.ObserveAnalysisDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       documentID,
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorCodeTimeout
	case errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, extract.ErrEmptyContent),
		errors.Is(err, extract.ErrTooShort):
		return ErrorCodeValidation
	case errors.Is(err, extract.ErrExtractionFailure):
		return ErrorCodeExtraction
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "document") || strings.Contains(msg, "storage") ||
		strings.Contains(msg, "analysis result") || strings.Contains(msg, "set processing") {
		return ErrorCodeStorage
	}
	return ErrorCodeInternal
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}

func loadText(ctx context.Context, store object.ObjectStore, key string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
