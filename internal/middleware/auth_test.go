package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func callerAuthRouter(tokens map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CallerAuth(tokens))
	router.GET("/whoami", func(c *gin.Context) {
		address, ok := auth.VerifiedCaller(c.Request.Context())
		if !ok {
			c.JSON(http.StatusOK, gin.H{"verified": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"verified": true, "address": address})
	})
	return router
}

func TestCallerAuth(t *testing.T) {
	tokens := map[string]string{"addr1": "secret1"}

	t.Run("Valid token verifies the caller", func(t *testing.T) {
		router := callerAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Caller-Address", "addr1")
		req.Header.Set("Authorization", "Bearer secret1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"verified":true`)
		assert.Contains(t, w.Body.String(), `"address":"addr1"`)
	})

	t.Run("Wrong token leaves the request unverified", func(t *testing.T) {
		router := callerAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Caller-Address", "addr1")
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"verified":false`)
	})

	t.Run("Token for another address does not transfer", func(t *testing.T) {
		router := callerAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Caller-Address", "addr2")
		req.Header.Set("Authorization", "Bearer secret1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"verified":false`)
	})

	t.Run("Missing headers leave the request unverified", func(t *testing.T) {
		router := callerAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"verified":false`)
	})
}
