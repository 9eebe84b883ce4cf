package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Store           object.ObjectStore
	Repo            Repo
	StorageProvider string
}

// Upload saves the file to object storage and records the document.
// The payload is buffered so its checksum can be recorded alongside.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}
	if !extract.IsSupported(fileName) {
		return Document{}, fmt.Errorf("%w: unsupported file format", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:              uuid.NewString(),
		FileName:        fileName,
		MimeType:        mimeType,
		SizeBytes:       size,
		Checksum:        util.Checksum(data),
		StorageProvider: s.StorageProvider,
		StorageKey:      storageKey,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	metrics.IncDocumentUploaded()
	telemetry.Info("document.uploaded", map[string]any{
		"document_id": doc.ID,
		"file_name":   doc.FileName,
		"mime_type":   doc.MimeType,
		"size_bytes":  doc.SizeBytes,
	})
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, documentID)
}

// List returns documents newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, limit, offset)
}
