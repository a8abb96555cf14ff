package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"legoworld/internal/domain/photo"
)

// Client is the typed API client shared by the upload and display
// binaries.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload posts an image with an optional caption and returns the created
// record.
func (c *Client) Upload(ctx context.Context, filename string, data []byte, caption string) (*photo.Photo, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if caption != "" {
		if err := mw.WriteField("caption", caption); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/photos", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var p photo.Photo
	if err := c.do(req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List fetches all photos, newest first.
func (c *Client) List(ctx context.Context) ([]*photo.Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/photos", nil)
	if err != nil {
		return nil, err
	}
	var photos []*photo.Photo
	if err := c.do(req, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// State fetches the polling payload.
func (c *Client) State(ctx context.Context) (*photo.State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/state", nil)
	if err != nil {
		return nil, err
	}
	var s photo.State
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a photo by id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/photos/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// PhotoURL returns the address a browser can load the image from.
func (c *Client) PhotoURL(p *photo.Photo) string {
	if strings.HasPrefix(p.Filename, "http") {
		return p.Filename
	}
	return c.baseURL + "/api/photos/" + p.Filename
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
