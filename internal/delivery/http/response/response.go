package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The response bodies are part of the public contract with the frontend and
// must not grow extra fields; request correlation goes in the X-Request-ID
// header instead.

// Success sends the fixed success body.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ValidationErrors sends the ordered list of rule violations.
func ValidationErrors(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
}

// Error sends a failure body with the given status and user-facing message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
