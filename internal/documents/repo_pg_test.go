package documents

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:         "doc-1",
		FileName:   "resume.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  2048,
		Checksum:   "abc123",
		StorageKey: "ab/resume.pdf",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.FileName,
			doc.MimeType,
			doc.SizeBytes,
			doc.Checksum,
			"local", // default storage provider
			doc.StorageKey,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
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

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "file_name", "mime_type", "size_bytes", "checksum",
			"storage_provider", "storage_key", "extracted_text_key", "extracted_at", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "file_name", "mime_type", "size_bytes", "checksum",
		"storage_provider", "storage_key", "extracted_text_key", "extracted_at", "created_at",
	}).AddRow("doc-1", "resume.pdf", "application/pdf", int64(2048), "abc123", "local", "ab/resume.pdf", nil, nil, now)

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("doc-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	doc, err := repo.GetByID(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if doc.FileName != "resume.pdf" || doc.Checksum != "abc123" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.ExtractedTextKey != "" || doc.ExtractedAt != nil {
		t.Fatalf("expected empty extraction metadata, got %+v", doc)
	}
}

func TestPGRepoUpdateExtraction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	extractedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE documents").
		WithArgs("ab/resume.pdf.extracted.txt", extractedAt, "doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.UpdateExtraction(context.Background(), "doc-1", "ab/resume.pdf.extracted.txt", extractedAt); err != nil {
		t.Fatalf("UpdateExtraction: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
