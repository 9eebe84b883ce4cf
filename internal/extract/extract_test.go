package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

var sampleText = strings.TrimSpace(`
Jane Doe
jane.doe@example.com
SKILLS
Python, SQL, Docker, Kubernetes, Terraform and several years of
experience building data pipelines and backend services.
`)

func TestFromBytesTxt(t *testing.T) {
	got, err := FromBytes([]byte(sampleText), "resume.txt")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") {
		t.Fatalf("expected text to survive extraction, got %q", got)
	}
}

func TestFromBytesUnsupportedFormat(t *testing.T) {
	_, err := FromBytes([]byte(sampleText), "resume.png")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFromBytesEmptyContent(t *testing.T) {
	_, err := FromBytes([]byte("   \n\t  "), "resume.txt")
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFromBytesTooShort(t *testing.T) {
	_, err := FromBytes([]byte("too little text"), "resume.txt")
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestFromBytesCorruptPDF(t *testing.T) {
	_, err := FromBytes([]byte("not a real pdf payload"), "resume.pdf")
	if !errors.Is(err, ErrExtractionFailure) {
		t.Fatalf("expected ErrExtractionFailure, got %v", err)
	}
}

func TestFromBytesCorruptDOCX(t *testing.T) {
	_, err := FromBytes([]byte("not a real docx payload"), "resume.docx")
	if !errors.Is(err, ErrExtractionFailure) {
		t.Fatalf("expected ErrExtractionFailure, got %v", err)
	}
}

func TestStripDocumentXML(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Python, SQL</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	got := stripDocumentXML(raw)
	want := "SKILLS\nPython, SQL"
	if got != want {
		t.Fatalf("stripDocumentXML = %q, want %q", got, want)
	}
}

type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	m.objects[fileName] = data
	return fileName, int64(len(data)), "application/octet-stream", nil
}

func (m *memStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := m.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) SaveWithKey(ctx context.Context, storageKey, contentType string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.objects[storageKey] = data
	return int64(len(data)), nil
}

func TestFromObjectCachesExtractedText(t *testing.T) {
	store := newMemStore()
	store.objects["ab/resume.txt"] = []byte(sampleText)

	text, err := FromObject(context.Background(), store, "ab/resume.txt", "resume.txt")
	if err != nil {
		t.Fatalf("FromObject: %v", err)
	}
	if !strings.Contains(text, "Python") {
		t.Fatalf("unexpected text: %q", text)
	}

	cached, ok := store.objects["ab/resume.txt.extracted.txt"]
	if !ok {
		t.Fatalf("expected cached extracted text")
	}
	if string(cached) != text {
		t.Fatalf("cached copy differs from returned text")
	}
}

func TestFromObjectMissingKey(t *testing.T) {
	_, err := FromObject(context.Background(), newMemStore(), "missing", "resume.txt")
	if err == nil {
		t.Fatalf("expected error for missing object")
	}
}
