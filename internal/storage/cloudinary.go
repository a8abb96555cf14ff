package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryFolder = "lego_photos"

// CloudinaryStore keeps blobs in a Cloudinary folder. Locators are the
// secure URLs returned on upload; the display client is redirected to them
// instead of streaming bytes through the backend.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, data []byte, _ string, ts int64) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   cloudinaryFolder,
		PublicID: fmt.Sprintf("lego_%d", ts),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return res.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, locator string) error {
	publicID := PublicIDFromURL(locator)
	if publicID == "" {
		return ErrBlobNotFound
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Result == "not found" {
		return ErrBlobNotFound
	}
	return nil
}

func (s *CloudinaryStore) Resolve(_ context.Context, locator string) (*Blob, error) {
	return &Blob{RedirectURL: locator}, nil
}

// PublicIDFromURL recovers the folder-qualified public id from a stored
// secure URL: the last path segment minus its extension, under the uploads
// folder. Returns "" for anything that is not a Cloudinary URL.
func PublicIDFromURL(url string) string {
	if !strings.Contains(url, "cloudinary.com") {
		return ""
	}
	segment := url[strings.LastIndex(url, "/")+1:]
	if i := strings.LastIndex(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" {
		return ""
	}
	return cloudinaryFolder + "/" + segment
}
