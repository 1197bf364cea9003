package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore persists uploaded file bytes keyed by an opaque locator.
// Locators are unique per call even when callers suggest identical
// names, so concurrent uploads never collide.
type BlobStore struct {
	baseDir string
}

// NewBlobStore ensures the base directory exists and returns a handle.
func NewBlobStore(baseDir string) (*BlobStore, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &BlobStore{baseDir: baseDir}, nil
}

// Save writes data under a freshly generated locator derived from the
// suggested name and returns the locator.
func (s *BlobStore) Save(suggestedName string, data []byte) (string, error) {
	locator := s.newLocator(suggestedName)
	if err := os.WriteFile(s.resolve(locator), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return locator, nil
}

// SaveStream copies from reader into a freshly named blob file.
func (s *BlobStore) SaveStream(suggestedName string, r io.Reader) (string, error) {
	locator := s.newLocator(suggestedName)
	file, err := os.Create(s.resolve(locator))
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write blob stream: %w", err)
	}
	return locator, nil
}

// Open returns a read-only handle for the stored blob.
func (s *BlobStore) Open(locator string) (*os.File, error) {
	file, err := os.Open(s.resolve(locator))
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return file, nil
}

// Delete removes a stored blob if present.
func (s *BlobStore) Delete(locator string) error {
	if err := os.Remove(s.resolve(locator)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// Path exposes the underlying absolute path (useful for debugging).
func (s *BlobStore) Path(locator string) string {
	return s.resolve(locator)
}

func (s *BlobStore) newLocator(suggestedName string) string {
	base := filepath.Base(suggestedName)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "blob"
	}
	return uuid.NewString() + "_" + base
}

func (s *BlobStore) resolve(locator string) string {
	return filepath.Join(s.baseDir, filepath.Base(locator))
}
