package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "user-service/internal/transport/http/response"
)

// MaxBodyBytes limits the request body. Binders report the overflow as 413.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			abortTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

func abortTooLarge(c *gin.Context) {
	resp.Abort(c, http.StatusRequestEntityTooLarge, resp.CodeBodyTooLarge, "Request body is too large.")
}
