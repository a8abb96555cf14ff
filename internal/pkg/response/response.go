package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body both clients expect.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Success writes a bare {"success": true} acknowledgment.
func Success(c *gin.Context, statusCode int) {
	c.JSON(statusCode, gin.H{"success": true})
}
