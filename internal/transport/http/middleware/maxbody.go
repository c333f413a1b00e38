package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-user-service/internal/transport/http/response"
)

// MaxBodyBytes caps the request body size.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				resp.Error(resp.CodeBadRequest, "request body too large"))
		}
	}
}
