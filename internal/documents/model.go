package documents

import "time"

// Document represents an uploaded resume file.
type Document struct {
	ID               string
	FileName         string
	MimeType         string
	SizeBytes        int64
	Checksum         string
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
