package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard wrapper around successful API payloads.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorBody is the body paired with every failure status code.
type ErrorBody struct {
	Message string `json:"message"`
}

// Success writes data wrapped in the success envelope.
func Success[T any](c *gin.Context, status int, data T) {
	c.JSON(status, Envelope[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error writes the error envelope and aborts the handler chain.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
