package middleware

import (
	"net/http"
	"strings"

	"lumiere/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	SessionCookie = "lumiere_session"
	SessionHeader = "X-Session-Token"

	// SessionKey is where the session id lives in the gin context.
	SessionKey = "sessionID"
)

// Session resolves the caller's session from the cookie or header and
// starts a new one when the token is missing, invalid or expired. The
// refreshed token is always sent back.
func Session(store *session.Store, tokens *session.Tokens, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SessionHeader)
		if raw == "" {
			raw, _ = c.Cookie(SessionCookie)
		}
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		id := ""
		if raw != "" {
			if parsed, err := tokens.Parse(raw); err == nil && store.Exists(parsed) {
				id = parsed
			}
		}
		if id == "" {
			id = store.Create()
			log.WithField("session", id).Debug("session started")
		}

		token, err := tokens.Issue(id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not issue session"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, token, int(tokens.TTL().Seconds()), "/", "", false, true)
		c.Header(SessionHeader, token)

		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the id stored by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
