package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"user-service/internal/core/auth"
	"user-service/internal/domain"
	resp "user-service/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT requires a bearer token. An empty requireRole accepts any role.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Fail(c, domain.ErrAuthMissingToken)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			_ = c.Error(err)
			resp.Fail(c, domain.ErrAuthInvalidToken)
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Fail(c, domain.ErrAuthInsufficientRole)
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}

