package photo

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the photo API. Serve lives under GET /api/photos/
// with a single path segment: local locators never contain slashes, and
// remote locators are full URLs the clients use directly.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/photos", h.List)
		api.POST("/photos", h.Upload)
		api.GET("/photos/:filename", h.Serve)
		api.DELETE("/photos/:id", h.Delete)
		api.GET("/state", h.State)
	}

	r.GET("/health", h.Health)
}
