package storage

import (
	"context"
	"errors"
)

var ErrBlobNotFound = errors.New("blob not found")

// Blob is the result of resolving a locator: either a path on local disk or
// a URL the caller should redirect to.
type Blob struct {
	Path        string
	RedirectURL string
}

// BlobStore persists raw image bytes and hands back an opaque locator.
// The locator is either a bare filename (local mode) or an https URL
// (remote mode) and is the sole retrieval key for the blob.
type BlobStore interface {
	// Save writes the image and returns its locator. The timestamp names
	// the object (lego_<ts>) so the blob and its metadata row share it.
	Save(ctx context.Context, data []byte, originalName string, ts int64) (string, error)
	Delete(ctx context.Context, locator string) error
	Resolve(ctx context.Context, locator string) (*Blob, error)
}
