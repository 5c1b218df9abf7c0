package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// SessionIDContextKey is a gin context key for the visitor session id.
	SessionIDContextKey = "sessionID"
	sessionCookieName   = "storefront_session"
)

// SessionIssuer mints and verifies signed session tokens.
type SessionIssuer interface {
	NewSessionID() string
	Issue(sessionID string) (string, error)
	Parse(token string) (string, error)
	TTL() time.Duration
}

// Session assigns every visitor a session id carried in a signed cookie.
// A missing, expired or tampered cookie is replaced with a fresh session.
func Session(issuer SessionIssuer, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
			if sessionID, err := issuer.Parse(token); err == nil {
				c.Set(SessionIDContextKey, sessionID)
				c.Next()
				return
			}
		}

		sessionID := issuer.NewSessionID()
		token, err := issuer.Issue(sessionID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		SetSessionCookie(c, token, issuer.TTL(), secure)
		c.Set(SessionIDContextKey, sessionID)
		c.Next()
	}
}

// SetSessionCookie writes the session token cookie to response.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(ttl/time.Second), "/", "", secure, true)
}
