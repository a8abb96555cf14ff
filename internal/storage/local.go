package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes blobs under a single uploads directory.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Save(_ context.Context, data []byte, originalName string, ts int64) (string, error) {
	filename := fmt.Sprintf("lego_%d.%s", ts, extOf(originalName))
	path := filepath.Join(s.baseDir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return filename, nil
}

func (s *LocalStore) Delete(_ context.Context, locator string) error {
	path := filepath.Join(s.baseDir, filepath.Base(locator))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Resolve(_ context.Context, locator string) (*Blob, error) {
	// Rows written while Cloudinary was configured carry full URLs.
	if strings.HasPrefix(locator, "http") {
		return &Blob{RedirectURL: locator}, nil
	}

	path := filepath.Join(s.baseDir, filepath.Base(locator))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("stat blob: %w", err)
	}
	return &Blob{Path: path}, nil
}

// extOf returns the lowercase extension of name without the dot,
// defaulting to jpg.
func extOf(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "jpg"
	}
	return strings.ToLower(ext)
}
