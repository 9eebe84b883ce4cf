package analyses

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"ats-backend/internal/engine"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:             "an-1",
		DocumentID:     "doc-1",
		JobDescription: "Go developer",
		Status:         StatusQueued,
		EngineVersion:  "v1",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.DocumentID,
			analysis.JobDescription,
			analysis.Status,
			analysis.EngineVersion,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(analysisTestColumns()))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByIDCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	resultJSON := `{"overall_score":72,"weighted_score":72.5,"classification":"Good Fit"}`
	rows := sqlmock.NewRows(analysisTestColumns()).
		AddRow("an-1", "doc-1", "Go developer", StatusCompleted, "v1", resultJSON, nil, nil, now, now, now)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("an-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	analysis, err := repo.GetByID(context.Background(), "an-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if analysis.Status != StatusCompleted {
		t.Fatalf("status = %q", analysis.Status)
	}
	if analysis.Result == nil || analysis.Result.OverallScore != 72 {
		t.Fatalf("unexpected result: %+v", analysis.Result)
	}
	if analysis.Result.Classification != engine.ClassGoodFit {
		t.Fatalf("classification = %q", analysis.Result.Classification)
	}
	if analysis.StartedAt == nil || analysis.CompletedAt == nil {
		t.Fatal("expected started/completed timestamps")
	}
}

func TestPGRepoSetProcessing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	startedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE analyses").
		WithArgs(StatusProcessing, startedAt, "an-1", StatusQueued).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.SetProcessing(context.Background(), "an-1", startedAt); err != nil {
		t.Fatalf("SetProcessing: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	completedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE analyses").
		WithArgs(StatusCompleted, sqlmock.AnyArg(), completedAt, "an-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	result := engine.Result{OverallScore: 80, Classification: engine.ClassGoodFit}
	if err := repo.UpdateResult(context.Background(), "an-1", result, completedAt); err != nil {
		t.Fatalf("UpdateResult: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	completedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE analyses").
		WithArgs(StatusFailed, ErrorCodeExtraction, "could not extract text", completedAt, "an-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.UpdateFailure(context.Background(), "an-1", ErrorCodeExtraction, "could not extract text", completedAt); err != nil {
		t.Fatalf("UpdateFailure: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func analysisTestColumns() []string {
	return []string{
		"id", "document_id", "job_description", "status", "engine_version",
		"result", "error_code", "error_message", "started_at", "completed_at", "created_at",
	}
}
