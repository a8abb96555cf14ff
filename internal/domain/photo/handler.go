package photo

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legoworld/internal/pkg/response"
	"legoworld/internal/storage"
)

const serviceName = "LegoWorld V3 Backend"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all photos, newest first.
func (h *Handler) List(c *gin.Context) {
	photos, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("photo: list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "failed to fetch photos")
		return
	}
	if photos == nil {
		photos = []*Photo{}
	}
	c.JSON(http.StatusOK, photos)
}

// Upload ingests a multipart photo with an optional caption.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Filename == "" {
		response.Error(c, http.StatusBadRequest, "Empty filename")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("photo: reading upload failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "upload failed")
		return
	}

	caption := c.PostForm("caption")

	p, err := h.service.Ingest(c.Request.Context(), data, fileHeader.Filename, caption)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrEmptyFilename):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("photo: ingestion failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete removes a photo row and its blob.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Photo not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, "Photo not found")
			return
		}
		log.Printf("photo: delete failed id=%d: %v", id, err)
		response.Error(c, http.StatusInternalServerError, "delete failed")
		return
	}

	response.Success(c, http.StatusOK)
}

// Serve streams a locally stored photo or redirects to its remote URL.
func (h *Handler) Serve(c *gin.Context) {
	blob, err := h.service.ResolveBlob(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			response.Error(c, http.StatusNotFound, "File not found")
			return
		}
		log.Printf("photo: resolve failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "failed to serve photo")
		return
	}

	if blob.RedirectURL != "" {
		c.Redirect(http.StatusFound, blob.RedirectURL)
		return
	}
	c.File(blob.Path)
}

// State serves the polling payload for the TV display.
func (h *Handler) State(c *gin.Context) {
	state, err := h.service.State(c.Request.Context())
	if err != nil {
		log.Printf("photo: state failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "failed to get state")
		return
	}
	c.JSON(http.StatusOK, state)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}
