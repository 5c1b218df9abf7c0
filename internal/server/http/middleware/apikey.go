package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyHeader carries the admin key.
const APIKeyHeader = "X-API-KEY"

// RequireAPIKey rejects requests whose X-API-KEY does not match. A non-empty
// bcrypt hash is checked instead of the plain key. With neither configured
// the group is locked entirely.
func RequireAPIKey(key, hash string) gin.HandlerFunc {
	match := func(got string) bool {
		switch {
		case hash != "":
			return got != "" && bcrypt.CompareHashAndPassword([]byte(hash), []byte(got)) == nil
		case key != "":
			return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1
		}
		return false
	}
	return func(c *gin.Context) {
		if !match(c.GetHeader(APIKeyHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}
		c.Next()
	}
}
