package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the inbound/outbound header and the gin context key
// the correlation id travels under.
const KeyRequestID = "X-Request-ID"

// RequestID tags every request with a correlation id so log lines and error
// envelopes can be tied back together. An id supplied by the caller is
// honored, otherwise a fresh UUID is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
