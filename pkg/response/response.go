package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers shaping the public wire contract: successful calls return the
// payload directly, failures return {"error": "<message>"}.

// OK sends a 200 response with the payload as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 response with an error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// InternalError sends a 500 response with an error message. Detail
// belongs in the server log, never in this body.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// TooManyRequests sends a 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, please try again later"})
}
