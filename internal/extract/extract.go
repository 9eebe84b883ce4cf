// Package extract turns uploaded resume files into plain text.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"ats-backend/internal/engine"
	"ats-backend/internal/shared/storage/object"
)

// Sentinel errors callers branch on; each maps to a distinct
// user-facing message and HTTP status in the handlers.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailure = errors.New("could not extract text from file")
	ErrEmptyContent      = errors.New("no text content found in file")
	ErrTooShort          = errors.New("extracted text too short to analyze")
)

// MinTextLength is the minimum number of characters a resume must
// yield before analysis is worthwhile.
const MinTextLength = 100

// FromObject reads a stored object, extracts its text, and caches a
// derived .extracted.txt copy next to it.
func FromObject(ctx context.Context, store object.ObjectStore, storageKey, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("extract key=%s: %w", storageKey, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract key=%s: read: %w", storageKey, err)
	}

	text, err := FromBytes(raw, fileName)
	if err != nil {
		return "", fmt.Errorf("extract key=%s: %w", storageKey, err)
	}

	extractedKey := storageKey + ".extracted.txt"
	if _, err := store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return "", fmt.Errorf("extract key=%s: cache text: %w", storageKey, err)
	}

	return text, nil
}

// IsSupported reports whether the file extension has a parser.
func IsSupported(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// FromBytes extracts text from an in-memory payload. The file
// extension decides the parser.
func FromBytes(data []byte, fileName string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err = fromPDF(data)
	case ".docx":
		text, err = fromDOCX(data)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}
	return validate(text)
}

func validate(text string) (string, error) {
	text = engine.NormalizeWhitespace(strings.TrimSpace(text))
	if text == "" {
		return "", ErrEmptyContent
	}
	if len(text) < MinTextLength {
		return "", fmt.Errorf("%w: %d chars", ErrTooShort, len(text))
	}
	return text, nil
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func fromDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocumentXML(doc.Editable().GetContent()), nil
}

// stripDocumentXML reduces word/document.xml markup to paragraph text.
// Paragraph and line-break ends become newlines so section headers keep
// their own lines; table cell text survives as character data.
func stripDocumentXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
