package middleware

import (
	"net/http"

	"oyunfor-gateway/pkg/apperror"
	"oyunfor-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize returns middleware that limits the request body size.
// A declared Content-Length over the limit is rejected up front; otherwise
// the reader fails once the limit is exceeded.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.PayloadTooLarge(maxBytes))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
