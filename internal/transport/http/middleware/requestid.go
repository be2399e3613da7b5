package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resp "user-service/internal/transport/http/response"
)

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(resp.KeyRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(resp.KeyRequestID, rid)
		c.Set(resp.KeyRequestID, rid)
		c.Next()
	}
}
