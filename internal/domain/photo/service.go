package photo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"legoworld/internal/storage"
	"legoworld/internal/vision"
)

// State is the payload the TV display polls for.
type State struct {
	LatestPhoto *Photo `json:"latest_photo"`
	TotalCount  int64  `json:"total_count"`
	Timestamp   int64  `json:"timestamp"`
}

// Service orchestrates ingestion: classify, store the blob, store the row.
// There is no transaction across the two writes; a failed metadata write
// compensates by deleting the blob it just stored.
type Service struct {
	repo       Repository
	blobs      storage.BlobStore
	identifier vision.Identifier
	now        func() time.Time
}

func NewService(repo Repository, blobs storage.BlobStore, identifier vision.Identifier) *Service {
	return &Service{
		repo:       repo,
		blobs:      blobs,
		identifier: identifier,
		now:        time.Now,
	}
}

// Ingest accepts an uploaded image and returns the created record.
// Classification runs first so a refused image costs no storage; its
// failure never blocks the upload.
func (s *Service) Ingest(ctx context.Context, data []byte, originalName, caption string) (*Photo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if originalName == "" {
		return nil, ErrEmptyFilename
	}

	ts := s.now().Unix()

	aiName := s.identifier.Identify(ctx, data)

	locator, err := s.blobs.Save(ctx, data, originalName, ts)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	p := &Photo{
		Filename:         locator,
		Caption:          caption,
		CreatedAt:        ts,
		AIIdentifiedName: aiName,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		// Roll back the blob so a metadata failure leaves no orphan.
		if derr := s.blobs.Delete(ctx, locator); derr != nil && !errors.Is(derr, storage.ErrBlobNotFound) {
			log.Printf("photo: orphan cleanup failed locator=%s error=%v", locator, derr)
		}
		return nil, fmt.Errorf("save photo record: %w", err)
	}

	log.Printf("photo: ingested id=%d locator=%s", p.ID, locator)
	return p, nil
}

// List returns all photos newest first.
func (s *Service) List(ctx context.Context) ([]*Photo, error) {
	return s.repo.List(ctx)
}

// State never fails on an empty collection: it reports a nil latest photo
// and a zero count.
func (s *Service) State(ctx context.Context) (*State, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest photo: %w", err)
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count photos: %w", err)
	}
	return &State{
		LatestPhoto: latest,
		TotalCount:  count,
		Timestamp:   s.now().Unix(),
	}, nil
}

// Delete removes the metadata row and then the blob. The blob delete is
// best effort: the row is already gone, so a failure is only logged.
func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete photo record: %w", err)
	}

	if err := s.blobs.Delete(ctx, p.Filename); err != nil && !errors.Is(err, storage.ErrBlobNotFound) {
		log.Printf("photo: blob delete failed locator=%s error=%v", p.Filename, err)
	}

	log.Printf("photo: deleted id=%d locator=%s", id, p.Filename)
	return nil
}

// ResolveBlob maps a locator to a local path or a redirect target.
func (s *Service) ResolveBlob(ctx context.Context, locator string) (*storage.Blob, error) {
	return s.blobs.Resolve(ctx, locator)
}
