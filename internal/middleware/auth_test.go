package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret, subject string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", NewAuthMiddleware("secret").RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token abc", http.StatusUnauthorized, ""},
		{"bad signature", "Bearer " + signed(t, "other", "7", time.Now().Add(time.Hour)), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signed(t, "secret", "7", time.Now().Add(-time.Hour)), http.StatusUnauthorized, ""},
		{"valid", "Bearer " + signed(t, "secret", "7", time.Now().Add(time.Hour)), http.StatusOK, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
