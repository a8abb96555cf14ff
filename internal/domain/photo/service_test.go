package photo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"legoworld/internal/storage"
)

type stubIdentifier struct {
	label *string
}

func (s stubIdentifier) Identify(context.Context, []byte) *string { return s.label }

func setupTestService(t *testing.T, labels ...string) (*Service, *storage.LocalStore, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:photo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Photo{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	dir := t.TempDir()
	blobs, err := storage.NewLocalStore(dir)
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}

	var identifier stubIdentifier
	if len(labels) > 0 {
		identifier.label = &labels[0]
	}

	return NewService(NewRepository(db), blobs, identifier), blobs, dir
}

func fixClock(svc *Service, epoch int64) {
	svc.now = func() time.Time { return time.Unix(epoch, 0) }
}

func TestIngestCreatesRecord(t *testing.T) {
	svc, _, _ := setupTestService(t)
	fixClock(svc, 1000)

	p, err := svc.Ingest(context.Background(), []byte("image"), "A.jpg", "City set")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected id 1, got %d", p.ID)
	}
	if p.Filename != "lego_1000.jpg" {
		t.Fatalf("expected locator lego_1000.jpg, got %s", p.Filename)
	}
	if p.Caption != "City set" {
		t.Fatalf("expected caption, got %q", p.Caption)
	}
	if p.CreatedAt != 1000 {
		t.Fatalf("expected created_at 1000, got %d", p.CreatedAt)
	}
	if p.AIIdentifiedName != nil {
		t.Fatalf("expected no ai name, got %v", *p.AIIdentifiedName)
	}
}

func TestIngestRejectsBadRequests(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Ingest(ctx, nil, "a.jpg", ""); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
	if _, err := svc.Ingest(ctx, []byte("x"), "", ""); !errors.Is(err, ErrEmptyFilename) {
		t.Fatalf("expected ErrEmptyFilename, got %v", err)
	}

	photos, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected no records after rejected uploads, got %d", len(photos))
	}
}

func TestIngestSucceedsWithoutIdentification(t *testing.T) {
	svc, _, _ := setupTestService(t) // identifier always returns nil

	p, err := svc.Ingest(context.Background(), []byte("image"), "a.jpg", "")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if p.AIIdentifiedName != nil {
		t.Fatalf("expected nil ai name, got %q", *p.AIIdentifiedName)
	}
}

func TestIngestKeepsUnknownSentinelAsLabel(t *testing.T) {
	svc, _, _ := setupTestService(t, "Unknown LEGO Set")

	p, err := svc.Ingest(context.Background(), []byte("image"), "a.jpg", "")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if p.AIIdentifiedName == nil || *p.AIIdentifiedName != "Unknown LEGO Set" {
		t.Fatalf("expected literal sentinel label, got %v", p.AIIdentifiedName)
	}
}

type failingRepo struct {
	Repository
}

func (failingRepo) Create(context.Context, *Photo) error {
	return errors.New("db write failed")
}

func TestIngestCleansUpBlobOnMetadataFailure(t *testing.T) {
	svc, blobs, dir := setupTestService(t)
	fixClock(svc, 2000)
	svc.repo = failingRepo{Repository: svc.repo}

	_, err := svc.Ingest(context.Background(), []byte("image"), "a.jpg", "")
	if err == nil {
		t.Fatal("expected ingest to fail")
	}

	if _, err := blobs.Resolve(context.Background(), "lego_2000.jpg"); !errors.Is(err, storage.ErrBlobNotFound) {
		t.Fatalf("expected blob to be rolled back, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading uploads dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty uploads dir, found %d entries", len(entries))
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	fixClock(svc, 1000)
	first, err := svc.Ingest(ctx, []byte("one"), "a.jpg", "")
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	fixClock(svc, 2000)
	second, err := svc.Ingest(ctx, []byte("two"), "b.jpg", "")
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}

	photos, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].ID != second.ID || photos[1].ID != first.ID {
		t.Fatalf("expected newest first, got ids %d, %d", photos[0].ID, photos[1].ID)
	}
}

func TestCreatedAtMonotonic(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		fixClock(svc, 1000+int64(i))
		p, err := svc.Ingest(ctx, []byte("x"), fmt.Sprintf("s%d.jpg", i), "")
		if err != nil {
			t.Fatalf("ingest %d: %v", i, err)
		}
		if p.CreatedAt < last {
			t.Fatalf("created_at went backwards: %d after %d", p.CreatedAt, last)
		}
		last = p.CreatedAt
	}
}

func TestStateEmptyThenPopulated(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State on empty store returned error: %v", err)
	}
	if state.LatestPhoto != nil {
		t.Fatalf("expected nil latest photo, got %+v", state.LatestPhoto)
	}
	if state.TotalCount != 0 {
		t.Fatalf("expected count 0, got %d", state.TotalCount)
	}
	if state.Timestamp == 0 {
		t.Fatal("expected a server timestamp")
	}

	fixClock(svc, 1000)
	p, err := svc.Ingest(ctx, []byte("image"), "a.jpg", "hello")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	state, err = svc.State(ctx)
	if err != nil {
		t.Fatalf("State returned error: %v", err)
	}
	if state.LatestPhoto == nil || state.LatestPhoto.ID != p.ID {
		t.Fatalf("expected latest photo %d, got %+v", p.ID, state.LatestPhoto)
	}
	if state.TotalCount != 1 {
		t.Fatalf("expected count 1, got %d", state.TotalCount)
	}
}

func TestDeleteRemovesRowAndBlob(t *testing.T) {
	svc, blobs, _ := setupTestService(t)
	ctx := context.Background()

	fixClock(svc, 1000)
	p, err := svc.Ingest(ctx, []byte("image"), "a.jpg", "")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	photos, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(photos))
	}
	if _, err := blobs.Resolve(ctx, p.Filename); !errors.Is(err, storage.ErrBlobNotFound) {
		t.Fatalf("expected blob gone after delete, got %v", err)
	}

	if err := svc.Delete(ctx, p.ID); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound on second delete, got %v", err)
	}
}

func TestDeleteUnknownIDLeavesStateUntouched(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	fixClock(svc, 1000)
	if _, err := svc.Ingest(ctx, []byte("image"), "a.jpg", ""); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	if err := svc.Delete(ctx, 999); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}

	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State returned error: %v", err)
	}
	if state.TotalCount != 1 {
		t.Fatalf("expected count unchanged at 1, got %d", state.TotalCount)
	}
}
