package analyses

import (
	"time"

	"ats-backend/internal/engine"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis represents a resume analysis job against a job description.
type Analysis struct {
	ID             string         `json:"id"`
	DocumentID     string         `json:"documentId"`
	JobDescription string         `json:"jobDescription"`
	Status         string         `json:"status"`
	EngineVersion  string         `json:"engineVersion,omitempty"`
	Result         *engine.Result `json:"result,omitempty"`
	ErrorCode      string         `json:"errorCode,omitempty"`
	ErrorMessage   string         `json:"errorMessage,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	StartedAt      *time.Time     `json:"startedAt,omitempty"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
}
