package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "tos_session"
	SessionHeader = "X-Session-Id"

	sessionKey       = "session_id"
	maxSessionIDLen  = 128
	sessionCookieAge = 7 * 24 * 60 * 60
)

// SessionMiddleware resolves the browsing session from the X-Session-Id header or
// the tos_session cookie, issuing a new id when neither is present.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" || len(id) > maxSessionIDLen {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionCookieAge, "/", "", false, true)
		}

		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
