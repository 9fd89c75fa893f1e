package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/gin-gonic/gin"
)

// CallerAuth verifies that a request may act as the address it claims.
// Callers present their address in X-Caller-Address and prove control of it
// with the address's bearer token in the Authorization header. On success
// the verified address is placed in the request context for the
// authorization oracle; on failure the request proceeds unverified and the
// oracle rejects any mutating operation.
func CallerAuth(callerTokens map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetHeader("X-Caller-Address")
		token := bearerToken(c.GetHeader("Authorization"))

		if address != "" && token != "" {
			expected, ok := callerTokens[address]
			if ok && subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1 {
				ctx := auth.WithVerifiedCaller(c.Request.Context(), address)
				c.Request = c.Request.WithContext(ctx)
			}
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
